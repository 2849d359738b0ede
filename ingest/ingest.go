package ingest

import (
	"daily-report/models"
	"daily-report/store"
)

// Display-text decorations applied during normalization.
const (
	TextPrefix       = "💬 "
	PhotoPlaceholder = "📷 Photo"
)

// Ingestor turns inbound transport events into canonical entries and
// appends them to the day store. Every event becomes exactly one entry;
// nothing is validated or dropped, empty text included.
type Ingestor struct {
	store *store.DayStore
}

func New(s *store.DayStore) *Ingestor {
	return &Ingestor{store: s}
}

// Record normalizes one inbound event. Photo events must carry a path the
// transport already persisted.
func (i *Ingestor) Record(ev models.InboundEvent) models.Entry {
	if ev.Kind == models.EntryPhoto {
		return i.RecordPhoto(ev.UserID, ev.PhotoPath, ev.Caption)
	}
	return i.RecordText(ev.UserID, ev.Text)
}

// RecordText appends a text entry for the user's current day.
func (i *Ingestor) RecordText(userID int64, text string) models.Entry {
	e := models.Entry{
		Kind:        models.EntryText,
		DisplayText: TextPrefix + text,
	}
	i.store.Append(userID, e)
	return e
}

// RecordPhoto appends a photo entry plus its file reference. The caption
// becomes the display text; without one a fixed placeholder is used.
func (i *Ingestor) RecordPhoto(userID int64, path, caption string) models.Entry {
	display := caption
	if display == "" {
		display = PhotoPlaceholder
	}
	e := models.Entry{
		Kind:        models.EntryPhoto,
		DisplayText: display,
	}
	i.store.Append(userID, e)
	i.store.AppendPhoto(userID, models.PhotoRef{Path: path})
	return e
}
