package validation

import (
	"Attic/internal/apperrors"
	"Attic/internal/models"
)

var itemBaseFields = map[string]bool{
	"name":        true,
	"description": true,
	"owner":       true,
	"quantity":    true,
}

var itemRegisteredFields = map[string]bool{
	"name":        true,
	"description": true,
	"owner":       true,
	"quantity":    true,
	"id":          true,
	"created":     true,
}

// ItemBase validates a new-item payload.
func ItemBase(payload map[string]any) (models.Item, error) {
	var item models.Item
	if err := rejectUnknown(payload, itemBaseFields); err != nil {
		return item, err
	}
	name, err := requiredString(payload, "name")
	if err != nil {
		return item, err
	}
	description, err := optionalString(payload, "description")
	if err != nil {
		return item, err
	}
	owner, err := optionalNonEmptyString(payload, "owner")
	if err != nil {
		return item, err
	}
	quantity, err := optionalNonNegativeNumber(payload, "quantity")
	if err != nil {
		return item, err
	}
	item.Name = name
	if description != nil {
		item.Description = *description
	}
	item.Owner = owner
	item.Quantity = quantity
	return item, nil
}

// ItemPartial validates a partial item update. Every field is optional
// and the empty payload is a valid no-op.
func ItemPartial(payload map[string]any) (models.ItemPatch, error) {
	var patch models.ItemPatch
	if err := rejectUnknown(payload, itemBaseFields); err != nil {
		return patch, err
	}
	if _, ok := payload["name"]; ok {
		name, err := requiredString(payload, "name")
		if err != nil {
			return patch, err
		}
		patch.Name = &name
	}
	description, err := optionalString(payload, "description")
	if err != nil {
		return patch, err
	}
	patch.Description = description
	owner, err := optionalNonEmptyString(payload, "owner")
	if err != nil {
		return patch, err
	}
	patch.Owner = owner
	quantity, err := optionalNonNegativeNumber(payload, "quantity")
	if err != nil {
		return patch, err
	}
	patch.Quantity = quantity
	return patch, nil
}

// ItemRegistered validates an item read back from the store, base rules
// plus the register-time fields.
func ItemRegistered(payload map[string]any) (models.RegisteredItem, error) {
	var registered models.RegisteredItem
	if err := rejectUnknown(payload, itemRegisteredFields); err != nil {
		return registered, err
	}
	base := make(map[string]any, len(payload))
	for field, value := range payload {
		if field != "id" && field != "created" {
			base[field] = value
		}
	}
	item, err := ItemBase(base)
	if err != nil {
		return registered, err
	}
	id, err := requiredIdentifier(payload, "id")
	if err != nil {
		return registered, err
	}
	created, err := requiredTimestamp(payload, "created")
	if err != nil {
		return registered, err
	}
	registered.Item = item
	registered.ID = id
	registered.Created = created
	return registered, nil
}

// ItemRefs validates a mixed list of item references: each element is
// either an identifier string or an inline new-item payload.
func ItemRefs(raw []any) ([]models.ItemRef, error) {
	refs := make([]models.ItemRef, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if v == "" {
				return nil, apperrors.NewValidation("items", "must not contain empty identifiers")
			}
			refs = append(refs, models.RefByID(v))
		case map[string]any:
			item, err := ItemBase(v)
			if err != nil {
				return nil, err
			}
			refs = append(refs, models.RefByPayload(item))
		default:
			return nil, apperrors.NewValidation("items", "must contain identifiers or item payloads")
		}
	}
	return refs, nil
}
