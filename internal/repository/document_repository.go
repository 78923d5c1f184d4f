package repository

import (
	"encoding/json"
	"errors"
	"strings"

	"Attic/internal/identifier"
	"Attic/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) InsertOne(collection string, body map[string]any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	id := identifier.New().Hex()
	doc := models.Document{Collection: collection, ID: id, Body: raw}
	if err := r.db.Create(&doc).Error; err != nil {
		return "", err
	}
	return id, nil
}

func (r *DocumentRepositoryImpl) FindOne(collection string, filter Filter) (*StoredDocument, error) {
	docs, err := r.Find(collection, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (r *DocumentRepositoryImpl) Find(collection string, filter Filter) ([]StoredDocument, error) {
	query := r.db.Where("collection = ?", collection)
	if filter.ID != "" {
		query = query.Where("id = ?", filter.ID)
	}
	if filter.IDs != nil {
		query = query.Where("id IN ?", filter.IDs)
	}
	var rows []models.Document
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]StoredDocument, 0, len(rows))
	for i := range rows {
		body, err := decodeBody(rows[i].Body)
		if err != nil {
			return nil, err
		}
		if !matches(body, filter) {
			continue
		}
		docs = append(docs, StoredDocument{ID: rows[i].ID, Body: body})
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) UpdateOne(collection string, id string, mutation Mutation) (int64, error) {
	var modified int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row models.Document
		// Lock the row for the read-modify-write so concurrent updates to
		// the same document serialize instead of overwriting each other.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collection = ? AND id = ?", collection, id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		body, err := decodeBody(row.Body)
		if err != nil {
			return err
		}
		applyMutation(body, mutation)
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		row.Body = raw
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		modified = 1
		return nil
	})
	return modified, err
}

func (r *DocumentRepositoryImpl) Remove(collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("collection = ? AND id IN ?", collection, ids).Delete(&models.Document{}).Error
}

func decodeBody(raw json.RawMessage) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func matches(body map[string]any, filter Filter) bool {
	for field, want := range filter.Equals {
		if body[field] != want {
			return false
		}
	}
	if len(filter.AnyContains) > 0 {
		found := false
		for field, term := range filter.AnyContains {
			s, ok := body[field].(string)
			if ok && strings.Contains(strings.ToLower(s), strings.ToLower(term)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func applyMutation(body map[string]any, mutation Mutation) {
	for field, value := range mutation.Set {
		body[field] = value
	}
	for field, values := range mutation.Push {
		current, _ := body[field].([]any)
		body[field] = append(current, values...)
	}
	for field, values := range mutation.Pull {
		current, _ := body[field].([]any)
		kept := make([]any, 0, len(current))
		for _, element := range current {
			if !containsValue(values, element) {
				kept = append(kept, element)
			}
		}
		body[field] = kept
	}
}

func containsValue(values []any, element any) bool {
	for _, v := range values {
		if v == element {
			return true
		}
	}
	return false
}
