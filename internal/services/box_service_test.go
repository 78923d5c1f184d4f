package services

import (
	"strings"
	"testing"
	"time"

	"Attic/internal/apperrors"
	"Attic/internal/models"
	"Attic/internal/repository"

	"github.com/stretchr/testify/assert"
)

func setupBoxService() (BoxService, ItemService) {
	docs := setupTestDocuments()
	itemService := NewItemService(docs)
	return NewBoxService(docs, itemService), itemService
}

func TestBoxService_RegisterRoundTrip(t *testing.T) {
	boxService, _ := setupBoxService()

	registered, err := boxService.Register(models.Box{Label: "A1", Location: "Home Storage"})
	assert.NoError(t, err)
	assert.Len(t, registered.ID, 24)

	box, err := boxService.Get(registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, "A1", box.Label)
	assert.Equal(t, "Home Storage", box.Location)
	assert.Empty(t, box.Items)
	assert.Empty(t, box.Updated)
	_, err = time.Parse(time.RFC3339, box.Created)
	assert.NoError(t, err)
}

func TestBoxService_GetFailsNotFound(t *testing.T) {
	boxService, _ := setupBoxService()

	for _, id := range []string{"not-a-valid-id", "", "5f8d0d55b54764421b7156c3"} {
		_, err := boxService.Get(id)
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	}
}

func TestBoxService_AddItemsAppendsInOrder(t *testing.T) {
	boxService, itemService := setupBoxService()

	registered, _ := boxService.Register(models.Box{Label: "G1", Location: "Garage"})
	tire, _ := itemService.Register(models.Item{Name: "spare tire"})

	box, err := boxService.AddItems(registered.ID, []models.RegisteredItem{*tire})
	assert.NoError(t, err)
	assert.Len(t, box.Items, 1)
	assert.Equal(t, "spare tire", box.Items[0].Name)
	assert.Len(t, box.Updated, 1)

	jack, _ := itemService.Register(models.Item{Name: "car jack"})
	box, err = boxService.AddItems(registered.ID, []models.RegisteredItem{*jack})
	assert.NoError(t, err)
	assert.Len(t, box.Items, 2)
	assert.Equal(t, "spare tire", box.Items[0].Name)
	assert.Equal(t, "car jack", box.Items[1].Name)
	assert.Len(t, box.Updated, 2)
}

func TestBoxService_AddItemsMissingBox(t *testing.T) {
	boxService, itemService := setupBoxService()
	tire, _ := itemService.Register(models.Item{Name: "spare tire"})

	_, err := boxService.AddItems("not-a-valid-id", []models.RegisteredItem{*tire})
	assert.True(t, apperrors.IsNotFound(err))

	// Valid identifier with no matching record surfaces as a storage
	// failure, not a not-found.
	_, err = boxService.AddItems("5f8d0d55b54764421b7156c3", []models.RegisteredItem{*tire})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestBoxService_RemoveItemsDeletesItemRecords(t *testing.T) {
	boxService, itemService := setupBoxService()

	registered, _ := boxService.Register(models.Box{Label: "G1", Location: "Garage"})
	tire, _ := itemService.Register(models.Item{Name: "spare tire"})
	jack, _ := itemService.Register(models.Item{Name: "car jack"})
	_, err := boxService.AddItems(registered.ID, []models.RegisteredItem{*tire, *jack})
	assert.NoError(t, err)

	box, err := boxService.RemoveItems(registered.ID, []string{tire.ID})
	assert.NoError(t, err)
	assert.Len(t, box.Items, 1)
	assert.Equal(t, "car jack", box.Items[0].Name)

	_, err = itemService.Get(tire.ID)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = itemService.Get(jack.ID)
	assert.NoError(t, err)
}

func TestBoxService_RemoveItemsIgnoresUnmatched(t *testing.T) {
	boxService, itemService := setupBoxService()

	registered, _ := boxService.Register(models.Box{Label: "G1", Location: "Garage"})
	tire, _ := itemService.Register(models.Item{Name: "spare tire"})
	_, err := boxService.AddItems(registered.ID, []models.RegisteredItem{*tire})
	assert.NoError(t, err)

	box, err := boxService.RemoveItems(registered.ID, []string{"5f8d0d55b54764421b7156c3"})
	assert.NoError(t, err)
	assert.Len(t, box.Items, 1)
}

func TestBoxService_RemoveItemsNormalizesIdentifiers(t *testing.T) {
	docs := setupTestDocuments()
	itemService := NewItemService(docs)
	boxService := NewBoxService(docs, itemService)

	registered, _ := boxService.Register(models.Box{Label: "G1", Location: "Garage"})
	tire, _ := itemService.Register(models.Item{Name: "spare tire"})
	_, err := boxService.AddItems(registered.ID, []models.RegisteredItem{*tire})
	assert.NoError(t, err)

	// Uppercase hex decodes to the same identifier and must pull the
	// stored lowercase form from the box's item list.
	box, err := boxService.RemoveItems(registered.ID, []string{strings.ToUpper(tire.ID)})
	assert.NoError(t, err)
	assert.Empty(t, box.Items)

	doc, err := docs.FindOne("boxes", repository.Filter{ID: registered.ID})
	assert.NoError(t, err)
	assert.Empty(t, doc.Body["items"])

	_, err = itemService.Get(tire.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBoxService_Update(t *testing.T) {
	boxService, _ := setupBoxService()

	registered, _ := boxService.Register(models.Box{Label: "G1", Location: "Garage"})

	location := "Basement"
	box, err := boxService.Update(registered.ID, models.BoxPatch{Location: &location})
	assert.NoError(t, err)
	assert.Equal(t, "G1", box.Label)
	assert.Equal(t, "Basement", box.Location)
	assert.Equal(t, registered.Created, box.Created)
	assert.Len(t, box.Updated, 1)
}

func TestBoxService_UpdateMissingBox(t *testing.T) {
	boxService, _ := setupBoxService()

	label := "X"
	_, err := boxService.Update("5f8d0d55b54764421b7156c3", models.BoxPatch{Label: &label})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBoxService_Search(t *testing.T) {
	boxService, _ := setupBoxService()

	_, _ = boxService.Register(models.Box{Label: "G1", Location: "Garage"})
	_, _ = boxService.Register(models.Box{Label: "A1", Location: "Home Storage"})

	boxes, err := boxService.Search("garage")
	assert.NoError(t, err)
	assert.Len(t, boxes, 1)
	assert.Equal(t, "G1", boxes[0].Label)

	boxes, err = boxService.Search("a1")
	assert.NoError(t, err)
	assert.Len(t, boxes, 1)

	boxes, err = boxService.Search("attic")
	assert.NoError(t, err)
	assert.Empty(t, boxes)
}
