package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"daily-report/collage"
	"daily-report/document"
	"daily-report/internal/logger"
	"daily-report/models"
	"daily-report/store"
	"daily-report/summarizer"
)

// DateLabelFormat is the dd-mm-yyyy label used in the prompt, the PDF
// title and the document filename.
const DateLabelFormat = "02-01-2006"

// ErrNoData is the terminal no-activity outcome. It is not a failure:
// the transport answers with an informational message and stops.
var ErrNoData = errors.New("no activity recorded today")

// Summarizer lets tests substitute the LLM-backed client.
type Summarizer interface {
	Summarize(ctx context.Context, dayLabel string, entries []models.Entry) summarizer.Result
}

// ReportService runs one on-demand report cycle: read today's bucket,
// summarize, compose the collage if photos exist, assemble the document.
// Only summarization failures are absorbed (as the fallback text); a
// collage or document failure fails the whole call.
type ReportService struct {
	store      *store.DayStore
	summarizer Summarizer
	assembler  *document.Assembler
	dataDir    string

	now func() time.Time
}

func NewReportService(st *store.DayStore, sum Summarizer, asm *document.Assembler, dataDir string) *ReportService {
	return &ReportService{
		store:      st,
		summarizer: sum,
		assembler:  asm,
		dataDir:    dataDir,
		now:        time.Now,
	}
}

// DocumentPath is the deterministic address of today's document for the
// user, whether or not it has been generated yet.
func (s *ReportService) DocumentPath(userID int64) string {
	return filepath.Join(s.dataDir, document.Filename(userID, s.now().Format(DateLabelFormat)))
}

// Generate produces the report for the user's current day, or ErrNoData
// when the bucket is empty. The report is owned by the caller for one
// handoff and never cached; repeated calls recompute everything and
// overwrite the same document file.
func (s *ReportService) Generate(ctx context.Context, userID int64) (*models.Report, error) {
	bucket := s.store.Today(userID)
	if bucket.Empty() {
		return nil, ErrNoData
	}

	dayLabel := s.now().Format(DateLabelFormat)

	res := s.summarizer.Summarize(ctx, dayLabel, bucket.Entries)
	if res.Fallback {
		logger.WarnWithFields("summary degraded to fallback", logger.Fields{
			"user_id": userID,
			"error":   fmt.Sprint(res.Err),
		})
	}

	var collagePath string
	if len(bucket.Photos) > 0 {
		paths := make([]string, 0, len(bucket.Photos))
		for _, p := range bucket.Photos {
			paths = append(paths, p.Path)
		}
		collagePath = filepath.Join(s.dataDir, fmt.Sprintf("collage_%d.jpg", userID))
		if err := collage.ComposeFile(paths, collagePath); err != nil {
			return nil, fmt.Errorf("compose collage: %w", err)
		}
	}

	docPath, err := s.assembler.Assemble(userID, dayLabel, bucket.Entries, collagePath)
	if err != nil {
		return nil, fmt.Errorf("assemble document: %w", err)
	}

	return &models.Report{
		SummaryText:  res.Text,
		DocumentPath: docPath,
		Fallback:     res.Fallback,
		GeneratedAt:  s.now(),
	}, nil
}
