package validation

import (
	"Attic/internal/apperrors"
	"Attic/internal/models"
)

var boxBaseFields = map[string]bool{
	"label":       true,
	"location":    true,
	"description": true,
}

var boxRegisteredFields = map[string]bool{
	"label":       true,
	"location":    true,
	"description": true,
	"id":          true,
	"created":     true,
	"updated":     true,
	"items":       true,
}

// BoxBase validates a new-box payload.
func BoxBase(payload map[string]any) (models.Box, error) {
	var box models.Box
	if err := rejectUnknown(payload, boxBaseFields); err != nil {
		return box, err
	}
	label, err := requiredString(payload, "label")
	if err != nil {
		return box, err
	}
	location, err := requiredString(payload, "location")
	if err != nil {
		return box, err
	}
	description, err := optionalNonEmptyString(payload, "description")
	if err != nil {
		return box, err
	}
	box.Label = label
	box.Location = location
	box.Description = description
	return box, nil
}

// BoxPartial validates a partial box update. Every field is optional and
// the empty payload is a valid no-op.
func BoxPartial(payload map[string]any) (models.BoxPatch, error) {
	var patch models.BoxPatch
	if err := rejectUnknown(payload, boxBaseFields); err != nil {
		return patch, err
	}
	if _, ok := payload["label"]; ok {
		label, err := requiredString(payload, "label")
		if err != nil {
			return patch, err
		}
		patch.Label = &label
	}
	if _, ok := payload["location"]; ok {
		location, err := requiredString(payload, "location")
		if err != nil {
			return patch, err
		}
		patch.Location = &location
	}
	description, err := optionalNonEmptyString(payload, "description")
	if err != nil {
		return patch, err
	}
	patch.Description = description
	return patch, nil
}

// BoxRegistered validates a box read back from the store. Item
// references stay unexpanded identifier strings at this point.
func BoxRegistered(payload map[string]any) (models.StoredBox, error) {
	var stored models.StoredBox
	if err := rejectUnknown(payload, boxRegisteredFields); err != nil {
		return stored, err
	}
	base := make(map[string]any, len(payload))
	for field, value := range payload {
		if boxBaseFields[field] {
			base[field] = value
		}
	}
	box, err := BoxBase(base)
	if err != nil {
		return stored, err
	}
	id, err := requiredIdentifier(payload, "id")
	if err != nil {
		return stored, err
	}
	created, err := requiredTimestamp(payload, "created")
	if err != nil {
		return stored, err
	}
	rawUpdated, ok := payload["updated"].([]any)
	if !ok {
		return stored, apperrors.NewValidation("updated", "must be a sequence of timestamps")
	}
	updated := make([]string, 0, len(rawUpdated))
	for _, entry := range rawUpdated {
		ts, err := requiredTimestamp(map[string]any{"updated": entry}, "updated")
		if err != nil {
			return stored, err
		}
		updated = append(updated, ts)
	}
	rawItems, ok := payload["items"].([]any)
	if !ok {
		return stored, apperrors.NewValidation("items", "must be a sequence")
	}
	itemIDs := make([]string, 0, len(rawItems))
	for _, entry := range rawItems {
		id, ok := entry.(string)
		if !ok {
			return stored, apperrors.NewValidation("items", "must contain identifiers")
		}
		itemIDs = append(itemIDs, id)
	}
	stored.Box = box
	stored.ID = id
	stored.Created = created
	stored.Updated = updated
	stored.ItemIDs = itemIDs
	return stored, nil
}
