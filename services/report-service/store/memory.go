package store

import (
	"context"
	"sort"
	"sync"

	"civicwatch-system/pkg/security"
	"civicwatch-system/services/report-service/models"
)

// MemoryStore keeps reports in process memory behind a mutex. It backs the
// lifecycle tests and local development runs without a MongoDB instance.
type MemoryStore struct {
	mu      sync.Mutex
	reports map[string]models.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]models.Report)}
}

func (s *MemoryStore) Insert(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.reports[report.ID]; ok {
		// Token is append-once: a re-insert never replaces it.
		report.AuthorityToken = existing.AuthorityToken
		s.reports[report.ID] = *report
		return nil
	}

	if report.AuthorityToken == "" {
		token, err := security.NewAuthorityToken()
		if err != nil {
			return err
		}
		report.AuthorityToken = token
	}
	if report.Votes.Yes == nil {
		report.Votes.Yes = []string{}
	}
	if report.Votes.No == nil {
		report.Votes.No = []string{}
	}

	s.reports[report.ID] = *report
	return nil
}

func (s *MemoryStore) GetAll(ctx context.Context) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryStore) Update(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[report.ID]; !ok {
		return ErrNotFound
	}
	s.reports[report.ID] = *report
	return nil
}
