package services

import (
	"testing"
	"time"

	"Attic/internal/apperrors"
	"Attic/internal/models"
	"Attic/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDocuments() repository.DocumentRepository {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		panic(err)
	}
	return repository.NewDocumentRepository(db)
}

func TestItemService_RegisterAndGet(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	owner := "erik"
	registered, err := service.Register(models.Item{Name: "Spoke", Description: "replacement spoke for my bike", Owner: &owner})
	assert.NoError(t, err)
	assert.Len(t, registered.ID, 24)
	_, err = time.Parse(time.RFC3339, registered.Created)
	assert.NoError(t, err)

	found, err := service.Get(registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
	assert.Equal(t, "Spoke", found.Name)
	assert.Equal(t, "replacement spoke for my bike", found.Description)
	assert.Equal(t, "erik", *found.Owner)
	assert.Equal(t, registered.Created, found.Created)
}

func TestItemService_GetFailsNotFound(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	for _, id := range []string{"not-a-valid-id", "", "5f8d0d55b54764421b7156c3"} {
		_, err := service.Get(id)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	}
}

func TestItemService_GetOrRegister(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	existing, err := service.Register(models.Item{Name: "Cog"})
	assert.NoError(t, err)

	byRef, err := service.GetOrRegister(models.RefByID(existing.ID))
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, byRef.ID)

	byPayload, err := service.GetOrRegister(models.RefByPayload(models.Item{Name: "Chain"}))
	assert.NoError(t, err)
	assert.Equal(t, "Chain", byPayload.Name)
	assert.NotEqual(t, existing.ID, byPayload.ID)

	_, err = service.GetOrRegister(models.RefByID("5f8d0d55b54764421b7156c3"))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestItemService_GetManyDropsUnmatched(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	first, _ := service.Register(models.Item{Name: "one"})
	second, _ := service.Register(models.Item{Name: "two"})

	items, err := service.GetMany([]string{
		first.ID,
		"not-a-valid-id",
		"5f8d0d55b54764421b7156c3",
		second.ID,
	})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)
}

func TestItemService_GetManyDropsDuplicates(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	first, _ := service.Register(models.Item{Name: "one"})
	second, _ := service.Register(models.Item{Name: "two"})

	items, err := service.GetMany([]string{first.ID, first.ID, second.ID})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)
}

func TestItemService_Update(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	registered, _ := service.Register(models.Item{Name: "Spoke", Description: "rear wheel"})

	quantity := float64(4)
	updated, err := service.Update(registered.ID, models.ItemPatch{Quantity: &quantity})
	assert.NoError(t, err)
	assert.Equal(t, "Spoke", updated.Name)
	assert.Equal(t, "rear wheel", updated.Description)
	assert.Equal(t, float64(4), *updated.Quantity)
	// Register-time fields survive any update.
	assert.Equal(t, registered.ID, updated.ID)
	assert.Equal(t, registered.Created, updated.Created)

	_, err = service.Update("5f8d0d55b54764421b7156c3", models.ItemPatch{Quantity: &quantity})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestItemService_Search(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	_, _ = service.Register(models.Item{Name: "Spoke", Description: "replacement spoke for my bike"})
	_, _ = service.Register(models.Item{Name: "Hammer", Description: "claw hammer"})

	items, err := service.Search("bike")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Spoke", items[0].Name)

	items, err = service.Search("HAMMER")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = service.Search("tent")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_RemoveMany(t *testing.T) {
	service := NewItemService(setupTestDocuments())

	first, _ := service.Register(models.Item{Name: "one"})
	second, _ := service.Register(models.Item{Name: "two"})

	err := service.RemoveMany([]string{first.ID, "not-a-valid-id"})
	assert.NoError(t, err)

	_, err = service.Get(first.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = service.Get(second.ID)
	assert.NoError(t, err)
}
