package models

// ShoppingEntry is something to buy.
type ShoppingEntry struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Measure     string  `json:"measure,omitempty"`
}

// RegisteredShoppingEntry is a persisted shopping entry. OnList is true
// until the entry is purchased or deleted; Purchased and Deleted record
// when either happened.
type RegisteredShoppingEntry struct {
	ShoppingEntry
	ID        string `json:"id"`
	OnList    bool   `json:"onList"`
	Created   string `json:"created"`
	Purchased string `json:"purchased,omitempty"`
	Deleted   string `json:"deleted,omitempty"`
}
