package services

import (
	"Attic/internal/apperrors"
	"Attic/internal/identifier"
	"Attic/internal/models"
	"Attic/internal/repository"
	"Attic/internal/validation"
)

const itemCollection = "items"

type ItemService interface {
	Register(item models.Item) (*models.RegisteredItem, error)
	Get(id string) (*models.RegisteredItem, error)
	GetOrRegister(ref models.ItemRef) (*models.RegisteredItem, error)
	GetMany(ids []string) ([]models.RegisteredItem, error)
	Update(id string, patch models.ItemPatch) (*models.RegisteredItem, error)
	Search(term string) ([]models.RegisteredItem, error)
	RemoveMany(ids []string) error
}

type itemServiceImpl struct {
	docs repository.DocumentRepository
}

func NewItemService(docs repository.DocumentRepository) ItemService {
	return &itemServiceImpl{docs: docs}
}

func (s *itemServiceImpl) Register(item models.Item) (*models.RegisteredItem, error) {
	now := models.NowMillis()
	body := itemBody(item)
	body["created"] = now
	id, err := s.docs.InsertOne(itemCollection, body)
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	return &models.RegisteredItem{
		Item:    item,
		ID:      id,
		Created: models.MillisToISO(now),
	}, nil
}

func (s *itemServiceImpl) Get(id string) (*models.RegisteredItem, error) {
	oid, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.FindOne(itemCollection, repository.Filter{ID: oid.Hex()})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if doc == nil {
		return nil, apperrors.NewNotFound(id)
	}
	return itemFromDocument(*doc)
}

func (s *itemServiceImpl) GetOrRegister(ref models.ItemRef) (*models.RegisteredItem, error) {
	if ref.New != nil {
		return s.Register(*ref.New)
	}
	return s.Get(ref.ID)
}

// GetMany is best-effort: malformed and unmatched ids are dropped, not
// errored, and results come back in the order the ids were given.
func (s *itemServiceImpl) GetMany(ids []string) ([]models.RegisteredItem, error) {
	hexIDs := decodeAll(ids)
	items := make([]models.RegisteredItem, 0, len(hexIDs))
	if len(hexIDs) == 0 {
		return items, nil
	}
	docs, err := s.docs.Find(itemCollection, repository.Filter{IDs: hexIDs})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	byID := make(map[string]models.RegisteredItem, len(docs))
	for _, doc := range docs {
		item, err := itemFromDocument(doc)
		if err != nil {
			return nil, err
		}
		byID[item.ID] = *item
	}
	for _, id := range hexIDs {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *itemServiceImpl) Update(id string, patch models.ItemPatch) (*models.RegisteredItem, error) {
	oid, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Owner != nil {
		set["owner"] = *patch.Owner
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	modified, err := s.docs.UpdateOne(itemCollection, oid.Hex(), repository.Mutation{Set: set})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if modified == 0 {
		return nil, apperrors.NewNotFound(id)
	}
	return s.Get(id)
}

func (s *itemServiceImpl) Search(term string) ([]models.RegisteredItem, error) {
	docs, err := s.docs.Find(itemCollection, repository.Filter{
		AnyContains: map[string]string{"name": term, "description": term},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	items := make([]models.RegisteredItem, 0, len(docs))
	for _, doc := range docs {
		item, err := itemFromDocument(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *itemServiceImpl) RemoveMany(ids []string) error {
	hexIDs := decodeAll(ids)
	if len(hexIDs) == 0 {
		return nil
	}
	if err := s.docs.Remove(itemCollection, hexIDs); err != nil {
		return apperrors.WrapStorage(err)
	}
	return nil
}

func itemBody(item models.Item) map[string]any {
	body := map[string]any{
		"name":        item.Name,
		"description": item.Description,
	}
	if item.Owner != nil {
		body["owner"] = *item.Owner
	}
	if item.Quantity != nil {
		body["quantity"] = *item.Quantity
	}
	return body
}

// itemFromDocument validates a stored item on the way out. A document
// that no longer passes registered validation means storage corruption.
func itemFromDocument(doc repository.StoredDocument) (*models.RegisteredItem, error) {
	payload := make(map[string]any, len(doc.Body)+1)
	for field, value := range doc.Body {
		payload[field] = value
	}
	payload["id"] = doc.ID
	if created, ok := models.CanonicalTime(payload["created"]); ok {
		payload["created"] = created
	}
	item, err := validation.ItemRegistered(payload)
	if err != nil {
		return nil, apperrors.NewStorage("corrupt item document " + doc.ID + ": " + err.Error())
	}
	return &item, nil
}

// decodeAll normalizes ids to canonical hex, dropping malformed entries
// and duplicates.
func decodeAll(ids []string) []string {
	hexIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		oid, err := identifier.Decode(id)
		if err != nil || seen[oid.Hex()] {
			continue
		}
		seen[oid.Hex()] = true
		hexIDs = append(hexIDs, oid.Hex())
	}
	return hexIDs
}
