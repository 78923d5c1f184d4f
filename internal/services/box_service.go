package services

import (
	"Attic/internal/apperrors"
	"Attic/internal/identifier"
	"Attic/internal/models"
	"Attic/internal/repository"
	"Attic/internal/validation"
)

const boxCollection = "boxes"

type BoxService interface {
	Register(box models.Box) (*models.RegisteredBox, error)
	Get(id string) (*models.RegisteredBox, error)
	AddItems(boxID string, items []models.RegisteredItem) (*models.RegisteredBox, error)
	RemoveItems(boxID string, itemIDs []string) (*models.RegisteredBox, error)
	Update(id string, patch models.BoxPatch) (*models.RegisteredBox, error)
	Search(term string) ([]models.RegisteredBox, error)
}

type boxServiceImpl struct {
	docs        repository.DocumentRepository
	itemService ItemService
}

func NewBoxService(docs repository.DocumentRepository, itemService ItemService) BoxService {
	return &boxServiceImpl{docs: docs, itemService: itemService}
}

func (s *boxServiceImpl) Register(box models.Box) (*models.RegisteredBox, error) {
	now := models.NowMillis()
	body := map[string]any{
		"label":    box.Label,
		"location": box.Location,
		"created":  now,
		"updated":  []any{},
		"items":    []any{},
	}
	if box.Description != nil {
		body["description"] = *box.Description
	}
	id, err := s.docs.InsertOne(boxCollection, body)
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	return &models.RegisteredBox{
		Box:     box,
		ID:      id,
		Created: models.MillisToISO(now),
		Updated: []string{},
		Items:   []models.RegisteredItem{},
	}, nil
}

func (s *boxServiceImpl) Get(id string) (*models.RegisteredBox, error) {
	oid, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.FindOne(boxCollection, repository.Filter{ID: oid.Hex()})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if doc == nil {
		return nil, apperrors.NewNotFound(id)
	}
	return s.boxFromDocument(*doc)
}

// AddItems appends the items' identifiers and one updated timestamp in a
// single store mutation. Zero modified documents means the box record
// vanished between decode and update.
func (s *boxServiceImpl) AddItems(boxID string, items []models.RegisteredItem) (*models.RegisteredBox, error) {
	oid, err := identifier.Decode(boxID)
	if err != nil {
		return nil, err
	}
	ids := make([]any, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	modified, err := s.docs.UpdateOne(boxCollection, oid.Hex(), repository.Mutation{
		Push: map[string][]any{
			"items":   ids,
			"updated": {models.NowMillis()},
		},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if modified == 0 {
		return nil, apperrors.NewStorage("no boxes updated")
	}
	return s.Get(boxID)
}

// RemoveItems detaches the identifiers from the box, then deletes the
// item records. The two steps are not atomic: a crash in between can
// leave item records without an owning box.
func (s *boxServiceImpl) RemoveItems(boxID string, itemIDs []string) (*models.RegisteredBox, error) {
	oid, err := identifier.Decode(boxID)
	if err != nil {
		return nil, err
	}
	// The document's items array holds canonical hex identifiers, so the
	// incoming ids are normalized once and reused for both the pull and
	// the item delete. Anything that fails to decode is ignored.
	hexIDs := decodeAll(itemIDs)
	pulled := make([]any, 0, len(hexIDs))
	for _, id := range hexIDs {
		pulled = append(pulled, id)
	}
	modified, err := s.docs.UpdateOne(boxCollection, oid.Hex(), repository.Mutation{
		Push: map[string][]any{"updated": {models.NowMillis()}},
		Pull: map[string][]any{"items": pulled},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if modified == 0 {
		return nil, apperrors.NewStorage("no boxes updated")
	}
	if err := s.itemService.RemoveMany(hexIDs); err != nil {
		return nil, err
	}
	return s.Get(boxID)
}

func (s *boxServiceImpl) Update(id string, patch models.BoxPatch) (*models.RegisteredBox, error) {
	oid, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}
	set := map[string]any{}
	if patch.Label != nil {
		set["label"] = *patch.Label
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	modified, err := s.docs.UpdateOne(boxCollection, oid.Hex(), repository.Mutation{
		Set:  set,
		Push: map[string][]any{"updated": {models.NowMillis()}},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	if modified == 0 {
		return nil, apperrors.NewNotFound(id)
	}
	return s.Get(id)
}

func (s *boxServiceImpl) Search(term string) ([]models.RegisteredBox, error) {
	docs, err := s.docs.Find(boxCollection, repository.Filter{
		AnyContains: map[string]string{"label": term, "location": term},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	boxes := make([]models.RegisteredBox, 0, len(docs))
	for _, doc := range docs {
		box, err := s.boxFromDocument(doc)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, *box)
	}
	return boxes, nil
}

// boxFromDocument normalizes stored timestamps, validates the document
// on the way out and expands item references into full item records.
func (s *boxServiceImpl) boxFromDocument(doc repository.StoredDocument) (*models.RegisteredBox, error) {
	payload := make(map[string]any, len(doc.Body)+1)
	for field, value := range doc.Body {
		payload[field] = value
	}
	payload["id"] = doc.ID
	if created, ok := models.CanonicalTime(payload["created"]); ok {
		payload["created"] = created
	}
	if rawUpdated, ok := payload["updated"].([]any); ok {
		updated := make([]any, 0, len(rawUpdated))
		for _, entry := range rawUpdated {
			if ts, ok := models.CanonicalTime(entry); ok {
				updated = append(updated, ts)
			} else {
				updated = append(updated, entry)
			}
		}
		payload["updated"] = updated
	}
	stored, err := validation.BoxRegistered(payload)
	if err != nil {
		return nil, apperrors.NewStorage("corrupt box document " + doc.ID + ": " + err.Error())
	}
	items, err := s.itemService.GetMany(stored.ItemIDs)
	if err != nil {
		return nil, err
	}
	return &models.RegisteredBox{
		Box:     stored.Box,
		ID:      stored.ID,
		Created: stored.Created,
		Updated: stored.Updated,
		Items:   items,
	}, nil
}
