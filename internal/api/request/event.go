package request

// CreateEventRequest is the payload for appending a transaction event to a
// security's ledger. Kind defaults to "none" when omitted; quantity and
// price are required for buy/sell and forbidden for plain annotations.
type CreateEventRequest struct {
	SecurityID string   `json:"securityId"`
	Date       string   `json:"date"`
	Content    string   `json:"content"`
	Kind       string   `json:"kind,omitempty"`
	Quantity   *int64   `json:"quantity,omitempty"`
	Price      *float64 `json:"price,omitempty"`
}

// UpdateEventRequest is the payload for editing an event. An edit replaces
// the event wholesale (a new ledger snapshot); all fields are required and
// follow the same constraints as creation.
type UpdateEventRequest struct {
	Date     string   `json:"date"`
	Content  string   `json:"content"`
	Kind     string   `json:"kind,omitempty"`
	Quantity *int64   `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}
