package models

import "time"

// Report is the ephemeral output of one generation cycle. It is handed to
// the transport once and never persisted; repeated requests recompute it.
type Report struct {
	SummaryText  string    `json:"summary_text"`
	DocumentPath string    `json:"document_path"`
	Fallback     bool      `json:"fallback"`
	GeneratedAt  time.Time `json:"generated_at"`
}
