package validation

import (
	"errors"
	"testing"

	"Attic/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var appErr *apperrors.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, field, appErr.Field)
}

func TestItemBase_Valid(t *testing.T) {
	item, err := ItemBase(map[string]any{
		"name":        "Spoke",
		"description": "replacement spoke for my bike",
		"owner":       "erik",
		"quantity":    float64(4),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Spoke", item.Name)
	assert.Equal(t, "replacement spoke for my bike", item.Description)
	assert.Equal(t, "erik", *item.Owner)
	assert.Equal(t, float64(4), *item.Quantity)
}

func TestItemBase_OnlyNameRequired(t *testing.T) {
	item, err := ItemBase(map[string]any{"name": "Spoke"})
	assert.NoError(t, err)
	assert.Equal(t, "Spoke", item.Name)
	assert.Empty(t, item.Description)
	assert.Nil(t, item.Owner)
	assert.Nil(t, item.Quantity)
}

func TestItemBase_EmptyDescriptionAllowed(t *testing.T) {
	item, err := ItemBase(map[string]any{"name": "Spoke", "description": ""})
	assert.NoError(t, err)
	assert.Empty(t, item.Description)
}

func TestItemBase_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"missing name", map[string]any{"description": "x"}, "name"},
		{"empty name", map[string]any{"name": ""}, "name"},
		{"name wrong type", map[string]any{"name": float64(1)}, "name"},
		{"empty owner", map[string]any{"name": "Spoke", "owner": ""}, "owner"},
		{"negative quantity", map[string]any{"name": "Spoke", "quantity": float64(-1)}, "quantity"},
		{"quantity wrong type", map[string]any{"name": "Spoke", "quantity": "4"}, "quantity"},
		{"unrecognized field", map[string]any{"name": "Spoke", "color": "red"}, "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ItemBase(tt.payload)
			assertValidationError(t, err, tt.field)
		})
	}
}

func TestItemBase_DoesNotMutateInput(t *testing.T) {
	payload := map[string]any{"name": "Spoke", "quantity": float64(2)}
	_, err := ItemBase(payload)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Spoke", "quantity": float64(2)}, payload)
}

func TestItemPartial_EmptyIsValid(t *testing.T) {
	patch, err := ItemPartial(map[string]any{})
	assert.NoError(t, err)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Owner)
	assert.Nil(t, patch.Quantity)
}

func TestItemPartial_FieldRules(t *testing.T) {
	patch, err := ItemPartial(map[string]any{"name": "Cog"})
	assert.NoError(t, err)
	assert.Equal(t, "Cog", *patch.Name)

	_, err = ItemPartial(map[string]any{"name": ""})
	assertValidationError(t, err, "name")

	_, err = ItemPartial(map[string]any{"extra": true})
	assertValidationError(t, err, "extra")
}

func TestItemRegistered_Valid(t *testing.T) {
	registered, err := ItemRegistered(map[string]any{
		"name":    "Spoke",
		"id":      "5f8d0d55b54764421b7156c3",
		"created": "2023-04-01T10:00:00Z",
	})
	assert.NoError(t, err)
	assert.Equal(t, "5f8d0d55b54764421b7156c3", registered.ID)
	assert.Equal(t, "2023-04-01T10:00:00Z", registered.Created)
}

func TestItemRegistered_Invalid(t *testing.T) {
	_, err := ItemRegistered(map[string]any{"name": "Spoke", "created": "2023-04-01T10:00:00Z"})
	assertValidationError(t, err, "id")

	_, err = ItemRegistered(map[string]any{"name": "Spoke", "id": "short", "created": "2023-04-01T10:00:00Z"})
	assertValidationError(t, err, "id")

	_, err = ItemRegistered(map[string]any{"name": "Spoke", "id": "5f8d0d55b54764421b7156c3"})
	assertValidationError(t, err, "created")

	_, err = ItemRegistered(map[string]any{"name": "Spoke", "id": "5f8d0d55b54764421b7156c3", "created": "yesterday"})
	assertValidationError(t, err, "created")
}

func TestItemRefs_Mixed(t *testing.T) {
	refs, err := ItemRefs([]any{
		"5f8d0d55b54764421b7156c3",
		map[string]any{"name": "spare tire"},
	})
	assert.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, "5f8d0d55b54764421b7156c3", refs[0].ID)
	assert.Nil(t, refs[0].New)
	assert.Equal(t, "spare tire", refs[1].New.Name)
}

func TestItemRefs_Invalid(t *testing.T) {
	_, err := ItemRefs([]any{""})
	assertValidationError(t, err, "items")

	_, err = ItemRefs([]any{float64(7)})
	assertValidationError(t, err, "items")

	_, err = ItemRefs([]any{map[string]any{"name": ""}})
	assertValidationError(t, err, "name")
}
