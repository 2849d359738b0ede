package models

// EntryKind discriminates the two inbound event shapes.
type EntryKind string

const (
	EntryText  EntryKind = "text"
	EntryPhoto EntryKind = "photo"
)

// Entry is one logged activity item for a user on a day.
// DisplayText is the string shown in the report: the raw message text
// (prefixed by the normalizer), or the caption/placeholder for photos.
type Entry struct {
	Kind        EntryKind `json:"kind"`
	DisplayText string    `json:"display_text"`
}

// PhotoRef points at a stored image file the collage compositor and
// document assembler can open. Files live for the process lifetime and
// beyond; nothing deletes them.
type PhotoRef struct {
	Path string `json:"path"`
}

// DayBucket aggregates one user's activity for one calendar day.
// Entries preserve arrival order; Photos is the photo subset, so
// len(Photos) <= len(Entries) always holds.
type DayBucket struct {
	Entries []Entry    `json:"entries"`
	Photos  []PhotoRef `json:"photos"`
}

// Empty reports whether the bucket holds no activity at all.
func (b DayBucket) Empty() bool {
	return len(b.Entries) == 0 && len(b.Photos) == 0
}
