package services

import (
	"Attic/internal/apperrors"
	"Attic/internal/models"
	"Attic/internal/validation"
)

// SearchResult groups a text search over both entity types.
type SearchResult struct {
	Boxes []models.RegisteredBox  `json:"boxes"`
	Items []models.RegisteredItem `json:"items"`
}

// StorageService is the operation set the request layer consumes.
type StorageService interface {
	RegisterBox(payload map[string]any) (*models.RegisteredBox, error)
	GetBox(id string) (*models.RegisteredBox, error)
	UpdateBox(id string, payload map[string]any) (*models.RegisteredBox, error)
	AddBoxItems(boxID string, rawItems []any) (*models.RegisteredBox, error)
	RemoveBoxItems(boxID string, itemIDs []string) (*models.RegisteredBox, error)
	GetItem(id string) (*models.RegisteredItem, error)
	UpdateItem(id string, payload map[string]any) (*models.RegisteredItem, error)
	Search(term string) (*SearchResult, error)
}

type storageServiceImpl struct {
	boxService  BoxService
	itemService ItemService
}

func NewStorageService(boxService BoxService, itemService ItemService) StorageService {
	return &storageServiceImpl{boxService: boxService, itemService: itemService}
}

// RegisterBox accepts an optional mixed item list: existing identifiers
// attach as-is, inline payloads register on the fly. Validation happens
// before anything is written.
func (s *storageServiceImpl) RegisterBox(payload map[string]any) (*models.RegisteredBox, error) {
	fields := make(map[string]any, len(payload))
	var rawItems []any
	for field, value := range payload {
		if field == "items" {
			var ok bool
			rawItems, ok = value.([]any)
			if !ok {
				return nil, apperrors.NewValidation("items", "must be a sequence")
			}
			continue
		}
		fields[field] = value
	}
	box, err := validation.BoxBase(fields)
	if err != nil {
		return nil, err
	}
	refs, err := validation.ItemRefs(rawItems)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveRefs(refs)
	if err != nil {
		return nil, err
	}
	registered, err := s.boxService.Register(box)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return registered, nil
	}
	return s.boxService.AddItems(registered.ID, items)
}

func (s *storageServiceImpl) GetBox(id string) (*models.RegisteredBox, error) {
	return s.boxService.Get(id)
}

func (s *storageServiceImpl) UpdateBox(id string, payload map[string]any) (*models.RegisteredBox, error) {
	patch, err := validation.BoxPartial(payload)
	if err != nil {
		return nil, err
	}
	return s.boxService.Update(id, patch)
}

func (s *storageServiceImpl) AddBoxItems(boxID string, rawItems []any) (*models.RegisteredBox, error) {
	refs, err := validation.ItemRefs(rawItems)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveRefs(refs)
	if err != nil {
		return nil, err
	}
	return s.boxService.AddItems(boxID, items)
}

func (s *storageServiceImpl) RemoveBoxItems(boxID string, itemIDs []string) (*models.RegisteredBox, error) {
	return s.boxService.RemoveItems(boxID, itemIDs)
}

func (s *storageServiceImpl) GetItem(id string) (*models.RegisteredItem, error) {
	return s.itemService.Get(id)
}

func (s *storageServiceImpl) UpdateItem(id string, payload map[string]any) (*models.RegisteredItem, error) {
	patch, err := validation.ItemPartial(payload)
	if err != nil {
		return nil, err
	}
	return s.itemService.Update(id, patch)
}

func (s *storageServiceImpl) Search(term string) (*SearchResult, error) {
	boxes, err := s.boxService.Search(term)
	if err != nil {
		return nil, err
	}
	items, err := s.itemService.Search(term)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Boxes: boxes, Items: items}, nil
}

func (s *storageServiceImpl) resolveRefs(refs []models.ItemRef) ([]models.RegisteredItem, error) {
	items := make([]models.RegisteredItem, 0, len(refs))
	for _, ref := range refs {
		item, err := s.itemService.GetOrRegister(ref)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
