package trust

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Ledger adjusts a user's trust score by a signed delta. Implementations
// clamp the result to [0, 100] and treat unknown user ids as a no-op; the
// ledger never fails the caller over a missing profile.
type Ledger interface {
	ApplyDelta(ctx context.Context, userID string, delta int) error
}

// HTTPLedger forwards deltas to the auth service, which owns the user
// registry and the clamping rule.
type HTTPLedger struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPLedger(baseURL string) *HTTPLedger {
	return &HTTPLedger{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type deltaRequest struct {
	UserID string `json:"user_id"`
	Delta  int    `json:"delta"`
}

func (l *HTTPLedger) ApplyDelta(ctx context.Context, userID string, delta int) error {
	body, err := json.Marshal(deltaRequest{UserID: userID, Delta: delta})
	if err != nil {
		return fmt.Errorf("failed to marshal trust delta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.BaseURL+"/internal/trust", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach trust ledger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("trust ledger returned status %d", resp.StatusCode)
	}
	return nil
}

// MemoryLedger implements the same clamping contract in process memory. It
// backs the lifecycle tests and local runs without an auth service.
type MemoryLedger struct {
	scores map[string]int
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{scores: make(map[string]int)}
}

// Seed registers a user with a starting score. Deltas for unregistered
// users are ignored, matching the ledger contract.
func (l *MemoryLedger) Seed(userID string, score int) {
	l.scores[userID] = score
}

func (l *MemoryLedger) ApplyDelta(ctx context.Context, userID string, delta int) error {
	current, ok := l.scores[userID]
	if !ok {
		return nil
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}
	l.scores[userID] = next
	return nil
}

// Score returns the current score and whether the user is known.
func (l *MemoryLedger) Score(userID string) (int, bool) {
	s, ok := l.scores[userID]
	return s, ok
}
