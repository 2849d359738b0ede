package store

import (
	"sync"
	"time"

	"daily-report/models"
)

// DayKey returns the calendar-day bucket key for a point in time.
// Keeping this a pure function of the clock means day rollover needs no
// timer: writes and reads straddling midnight land in different buckets
// on their own.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type bucketKey struct {
	UserID int64
	Day    string
}

// DayStore holds every user's per-day activity for the process lifetime.
// It is the only state shared between the Telegram poller and the HTTP
// API, hence the mutex. Buckets for past days stay reachable by key but
// the reporting flow only ever reads "today". Nothing is persisted; a
// restart loses all unsent-report data (accepted limitation).
type DayStore struct {
	mu      sync.Mutex
	buckets map[bucketKey]*models.DayBucket

	now func() time.Time
}

// New returns an empty store using the wall clock.
func New() *DayStore {
	return NewWithClock(time.Now)
}

// NewWithClock injects the clock used for bucket keying. Tests use this
// to simulate day boundaries.
func NewWithClock(now func() time.Time) *DayStore {
	return &DayStore{
		buckets: make(map[bucketKey]*models.DayBucket),
		now:     now,
	}
}

func (s *DayStore) bucket(userID int64) *models.DayBucket {
	key := bucketKey{UserID: userID, Day: DayKey(s.now())}
	b, ok := s.buckets[key]
	if !ok {
		b = &models.DayBucket{}
		s.buckets[key] = b
	}
	return b
}

// Append adds one entry to the user's bucket for the current day.
func (s *DayStore) Append(userID int64, e models.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bucket(userID)
	b.Entries = append(b.Entries, e)
}

// AppendPhoto adds one photo reference to the user's bucket for the
// current day.
func (s *DayStore) AppendPhoto(userID int64, p models.PhotoRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bucket(userID)
	b.Photos = append(b.Photos, p)
}

// Today returns a snapshot of the user's bucket for the current day.
// A user with no activity gets an empty bucket, not an error.
func (s *DayStore) Today(userID int64) models.DayBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bucketKey{UserID: userID, Day: DayKey(s.now())}
	b, ok := s.buckets[key]
	if !ok {
		return models.DayBucket{}
	}

	out := models.DayBucket{
		Entries: make([]models.Entry, len(b.Entries)),
		Photos:  make([]models.PhotoRef, len(b.Photos)),
	}
	copy(out.Entries, b.Entries)
	copy(out.Photos, b.Photos)
	return out
}
