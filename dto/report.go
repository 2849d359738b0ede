package dto

import (
	"path/filepath"
	"time"

	"daily-report/models"
)

// EntryDTO exposes one activity item to API consumers.
type EntryDTO struct {
	Kind        string `json:"kind"`
	DisplayText string `json:"display_text"`
}

// DayDTO is the read view of a user's current-day bucket.
type DayDTO struct {
	Entries    []EntryDTO `json:"entries"`
	PhotoCount int        `json:"photo_count"`
}

// ReportDTO flattens a generated report. Document carries only the file
// name; the file itself is served by the document endpoint.
type ReportDTO struct {
	Summary     string    `json:"summary"`
	Fallback    bool      `json:"fallback"`
	Document    string    `json:"document"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewDayDTO constructs DayDTO from a bucket snapshot.
func NewDayDTO(b models.DayBucket) DayDTO {
	entries := make([]EntryDTO, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, EntryDTO{
			Kind:        string(e.Kind),
			DisplayText: e.DisplayText,
		})
	}
	return DayDTO{
		Entries:    entries,
		PhotoCount: len(b.Photos),
	}
}

// NewReportDTO constructs ReportDTO from a report.
func NewReportDTO(r models.Report) ReportDTO {
	return ReportDTO{
		Summary:     r.SummaryText,
		Fallback:    r.Fallback,
		Document:    filepath.Base(r.DocumentPath),
		GeneratedAt: r.GeneratedAt,
	}
}
