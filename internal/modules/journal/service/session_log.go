package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"

	"gentlemind/internal/modules/journal/domain"
	journalout "gentlemind/internal/modules/journal/port/out"
	"gentlemind/internal/platform/logging"
)

// HistoryKey is the storage key of the persisted record list.
const HistoryKey = "mindful_sessions"

// SessionLog is the append-only history of completed sessions. It owns the
// in-memory copy and writes the whole list through on every append.
type SessionLog struct {
	store  journalout.KVStore
	logger logging.Logger

	mu      sync.Mutex
	records []domain.Record
}

func NewSessionLog(store journalout.KVStore, logger logging.Logger) *SessionLog {
	return &SessionLog{store: store, logger: logger, records: []domain.Record{}}
}

// Load restores persisted records. Missing, unreadable or corrupt history
// yields an empty log; the failure is only logged.
func (s *SessionLog) Load(ctx context.Context) []domain.Record {
	records := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return clone(s.records)
}

func (s *SessionLog) read(ctx context.Context) []domain.Record {
	raw, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		s.logger.Warnf(logging.TypeStorage, "Session history unreadable, starting empty: %s", err)
		return []domain.Record{}
	}
	if !ok {
		return []domain.Record{}
	}
	var records []domain.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warnf(logging.TypeStorage, "Session history corrupt, starting empty: %s", err)
		return []domain.Record{}
	}
	if records == nil {
		records = []domain.Record{}
	}
	s.logger.Infof(logging.TypeStorage, "Restored %d sessions", len(records))
	return records
}

// Append adds the record and persists the full list before returning it. If
// persisting fails the record stays in memory and the error is returned.
func (s *SessionLog) Append(ctx context.Context, record domain.Record) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	out := clone(s.records)

	payload, err := json.Marshal(s.records)
	if err != nil {
		return out, fmt.Errorf("encode session history: %w", err)
	}
	if err := s.store.Set(ctx, HistoryKey, string(payload)); err != nil {
		return out, fmt.Errorf("persist session history: %w", err)
	}
	return out, nil
}

// Merge appends the records whose ID is not in the log yet, keeping their
// order, and persists once. It returns how many were added.
func (s *SessionLog) Merge(ctx context.Context, records []domain.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.records)+len(records))
	for _, r := range s.records {
		seen[r.ID] = struct{}{}
	}
	added := 0
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		s.records = append(s.records, r)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(s.records)
	if err != nil {
		return added, fmt.Errorf("encode session history: %w", err)
	}
	if err := s.store.Set(ctx, HistoryKey, string(payload)); err != nil {
		return added, fmt.Errorf("persist session history: %w", err)
	}
	s.logger.Infof(logging.TypeStorage, "Imported %d sessions", added)
	return added, nil
}

// LatestID is the largest numeric record ID in the log, or 0 when there is
// none. Non-numeric IDs are ignored.
func (s *SessionLog) LatestID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest int64
	for _, r := range s.records {
		n, err := strconv.ParseInt(r.ID, 10, 64)
		if err == nil && n > latest {
			latest = n
		}
	}
	return latest
}

// Records returns a copy of the log in insertion order.
func (s *SessionLog) Records() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.records)
}

func clone(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)
	return out
}
