package models

// Item is a tracked physical object as supplied by a client.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Owner       *string  `json:"owner,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
}

// RegisteredItem is an Item that has been persisted. ID and Created are
// assigned at registration and never change.
type RegisteredItem struct {
	Item
	ID      string `json:"id"`
	Created string `json:"created"`
}

// ItemPatch holds the fields of a partial item update; nil means "leave
// unchanged".
type ItemPatch struct {
	Name        *string
	Description *string
	Owner       *string
	Quantity    *float64
}

// ItemRef is either a reference to an existing item or an inline payload
// to register on the fly. Exactly one of the two is set.
type ItemRef struct {
	ID  string
	New *Item
}

func RefByID(id string) ItemRef {
	return ItemRef{ID: id}
}

func RefByPayload(item Item) ItemRef {
	return ItemRef{New: &item}
}
