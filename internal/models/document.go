package models

import (
	"encoding/json"
)

// Document is a stored row of the generic document store: one JSON body
// keyed by collection name and a 24-hex identifier.
type Document struct {
	Collection string          `gorm:"primaryKey;type:varchar(64)" json:"collection"`
	ID         string          `gorm:"primaryKey;type:char(24)" json:"id"`
	Body       json.RawMessage `gorm:"type:jsonb" json:"body"`
}
