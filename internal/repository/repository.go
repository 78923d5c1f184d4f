package repository

// Filter selects documents within a collection. Zero-value fields are
// ignored; AnyContains matches when any named field contains the given
// substring case-insensitively.
type Filter struct {
	ID          string
	IDs         []string
	Equals      map[string]any
	AnyContains map[string]string
}

// Mutation describes a single-document update: Set merges fields, Push
// appends to array fields, Pull removes matching elements from array
// fields. All parts of one Mutation apply atomically.
type Mutation struct {
	Set  map[string]any
	Push map[string][]any
	Pull map[string][]any
}

// StoredDocument is a decoded document together with its identifier.
type StoredDocument struct {
	ID   string
	Body map[string]any
}

type DocumentRepository interface {
	// InsertOne persists a new document and returns its generated id.
	InsertOne(collection string, body map[string]any) (string, error)
	// FindOne returns the first matching document, or nil if none match.
	FindOne(collection string, filter Filter) (*StoredDocument, error)
	Find(collection string, filter Filter) ([]StoredDocument, error)
	// UpdateOne applies the mutation to the document with the given id
	// and reports how many documents were modified (0 or 1).
	UpdateOne(collection string, id string, mutation Mutation) (int64, error)
	// Remove hard-deletes the documents with the given ids.
	Remove(collection string, ids []string) error
}
