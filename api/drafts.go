package api

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/google/uuid"
)

const DefaultDraftTTL = 30 * time.Minute

type draftEntry struct {
	machine   *registration.Machine
	expiresAt time.Time
}

// DraftStore holds in-progress signups. A draft lives for ttl after it was
// last touched.
type DraftStore struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	drafts map[uuid.UUID]*draftEntry
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[uuid.UUID]*draftEntry),
	}
}

func (s *DraftStore) Create(machine *registration.Machine) (uuid.UUID, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	expiresAt := s.now().Add(s.ttl)
	s.drafts[id] = &draftEntry{machine: machine, expiresAt: expiresAt}

	return id, expiresAt
}

// Get returns the draft and extends its lifetime.
func (s *DraftStore) Get(id uuid.UUID) (*registration.Machine, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drafts[id]
	if !ok {
		return nil, time.Time{}, false
	}

	now := s.now()
	if now.After(entry.expiresAt) {
		delete(s.drafts, id)
		return nil, time.Time{}, false
	}

	entry.expiresAt = now.Add(s.ttl)
	return entry.machine, entry.expiresAt, true
}

func (s *DraftStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.drafts[id]
	delete(s.drafts, id)
	return ok
}

func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.drafts)
}

// Sweep drops expired drafts and returns how many were removed.
func (s *DraftStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.drafts {
		if now.After(entry.expiresAt) {
			delete(s.drafts, id)
			removed++
		}
	}

	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *DraftStore) RunSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.Sweep()
			if removed > 0 {
				logger.Info("Swept expired signup drafts", slog.Int("removed", removed), slog.Int("remaining", s.Len()))
			}
		}
	}
}
