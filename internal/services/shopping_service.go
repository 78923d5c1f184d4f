package services

import (
	"time"

	"Attic/internal/apperrors"
	"Attic/internal/identifier"
	"Attic/internal/models"
	"Attic/internal/repository"
)

const shoppingCollection = "shopping"

// ShoppingService is a plain append/mark log: entries go on the list,
// get marked purchased or deleted, and purged deleted entries are
// eventually cleaned up by the janitor.
type ShoppingService interface {
	List() ([]models.RegisteredShoppingEntry, error)
	Add(entries []models.ShoppingEntry) ([]models.RegisteredShoppingEntry, error)
	Purchased(id string) error
	Unpurchased(id string) error
	Deleted(id string) error
	PurgeDeleted(olderThan time.Duration) (int, error)
}

type shoppingServiceImpl struct {
	docs repository.DocumentRepository
}

func NewShoppingService(docs repository.DocumentRepository) ShoppingService {
	return &shoppingServiceImpl{docs: docs}
}

func (s *shoppingServiceImpl) List() ([]models.RegisteredShoppingEntry, error) {
	docs, err := s.docs.Find(shoppingCollection, repository.Filter{
		Equals: map[string]any{"onList": true},
	})
	if err != nil {
		return nil, apperrors.WrapStorage(err)
	}
	entries := make([]models.RegisteredShoppingEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, shoppingFromDocument(doc))
	}
	return entries, nil
}

func (s *shoppingServiceImpl) Add(entries []models.ShoppingEntry) ([]models.RegisteredShoppingEntry, error) {
	registered := make([]models.RegisteredShoppingEntry, 0, len(entries))
	for _, entry := range entries {
		now := models.NowMillis()
		body := map[string]any{
			"name":        entry.Name,
			"description": entry.Description,
			"quantity":    entry.Quantity,
			"measure":     entry.Measure,
			"onList":      true,
			"created":     now,
		}
		id, err := s.docs.InsertOne(shoppingCollection, body)
		if err != nil {
			return nil, apperrors.WrapStorage(err)
		}
		registered = append(registered, models.RegisteredShoppingEntry{
			ShoppingEntry: entry,
			ID:            id,
			OnList:        true,
			Created:       models.MillisToISO(now),
		})
	}
	return registered, nil
}

func (s *shoppingServiceImpl) Purchased(id string) error {
	return s.mark(id, map[string]any{
		"purchased": models.NowMillis(),
		"onList":    false,
	})
}

func (s *shoppingServiceImpl) Unpurchased(id string) error {
	return s.mark(id, map[string]any{"onList": true})
}

func (s *shoppingServiceImpl) Deleted(id string) error {
	return s.mark(id, map[string]any{
		"deleted": models.NowMillis(),
		"onList":  false,
	})
}

// PurgeDeleted hard-removes entries whose deleted mark is older than the
// retention window and reports how many were removed.
func (s *shoppingServiceImpl) PurgeDeleted(olderThan time.Duration) (int, error) {
	docs, err := s.docs.Find(shoppingCollection, repository.Filter{})
	if err != nil {
		return 0, apperrors.WrapStorage(err)
	}
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	var expired []string
	for _, doc := range docs {
		deleted, ok := doc.Body["deleted"].(float64)
		if ok && int64(deleted) < cutoff {
			expired = append(expired, doc.ID)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}
	if err := s.docs.Remove(shoppingCollection, expired); err != nil {
		return 0, apperrors.WrapStorage(err)
	}
	return len(expired), nil
}

func (s *shoppingServiceImpl) mark(id string, set map[string]any) error {
	oid, err := identifier.Decode(id)
	if err != nil {
		return err
	}
	modified, err := s.docs.UpdateOne(shoppingCollection, oid.Hex(), repository.Mutation{Set: set})
	if err != nil {
		return apperrors.WrapStorage(err)
	}
	if modified == 0 {
		return apperrors.NewNotFound(id)
	}
	return nil
}

func shoppingFromDocument(doc repository.StoredDocument) models.RegisteredShoppingEntry {
	entry := models.RegisteredShoppingEntry{ID: doc.ID}
	entry.Name, _ = doc.Body["name"].(string)
	entry.Description, _ = doc.Body["description"].(string)
	entry.Quantity, _ = doc.Body["quantity"].(float64)
	entry.Measure, _ = doc.Body["measure"].(string)
	entry.OnList, _ = doc.Body["onList"].(bool)
	if created, ok := models.CanonicalTime(doc.Body["created"]); ok {
		entry.Created = created
	}
	if purchased, ok := doc.Body["purchased"]; ok {
		entry.Purchased, _ = models.CanonicalTime(purchased)
	}
	if deleted, ok := doc.Body["deleted"]; ok {
		entry.Deleted, _ = models.CanonicalTime(deleted)
	}
	return entry
}
