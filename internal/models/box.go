package models

// Box is a physical storage container as supplied by a client.
type Box struct {
	Label       string  `json:"label"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

// RegisteredBox is a persisted box with its item references expanded
// into full item records. Items order reflects insertion order; Updated
// gains one timestamp per mutation.
type RegisteredBox struct {
	Box
	ID      string           `json:"id"`
	Created string           `json:"created"`
	Updated []string         `json:"updated"`
	Items   []RegisteredItem `json:"items"`
}

// StoredBox is a persisted box as read back from the store, before its
// item identifiers are expanded.
type StoredBox struct {
	Box
	ID      string
	Created string
	Updated []string
	ItemIDs []string
}

// BoxPatch holds the fields of a partial box update; nil means "leave
// unchanged".
type BoxPatch struct {
	Label       *string
	Location    *string
	Description *string
}
