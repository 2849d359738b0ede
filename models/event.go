package models

// InboundEvent is the normalized shape the transport hands to the ingest
// layer. Exactly one of Text / PhotoPath is meaningful, selected by Kind.
// For photos the transport has already persisted the payload to a
// retrievable file before constructing the event.
type InboundEvent struct {
	UserID    int64     `json:"user_id"`
	Kind      EntryKind `json:"kind"`
	Text      string    `json:"text,omitempty"`
	PhotoPath string    `json:"photo_path,omitempty"`
	Caption   string    `json:"caption,omitempty"`
}
