package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPAdapter calls the AI gateway service over JSON. The gateway wraps the
// actual model API and keeps the API key out of this codebase.
type HTTPAdapter struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPAdapter(baseURL string) *HTTPAdapter {
	return &HTTPAdapter{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *HTTPAdapter) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AI request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("AI service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("AI service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed AI response: %w", err)
	}
	return nil
}

func (a *HTTPAdapter) ClassifyHazard(ctx context.Context, imageB64 string) (Classification, error) {
	var result Classification
	payload := map[string]string{"image": imageB64}
	if err := a.post(ctx, "/classify", payload, &result); err != nil {
		return Classification{}, err
	}
	return result, nil
}

func (a *HTTPAdapter) ReInspectHazard(ctx context.Context, beforeB64, afterB64 string) (ReInspection, error) {
	var result ReInspection
	payload := map[string]string{"before": beforeB64, "after": afterB64}
	if err := a.post(ctx, "/reinspect", payload, &result); err != nil {
		return ReInspection{}, err
	}
	return result, nil
}

func (a *HTTPAdapter) ComposeAuthorityEmail(ctx context.Context, req EmailRequest) (string, error) {
	var result struct {
		Body string `json:"body"`
	}
	if err := a.post(ctx, "/compose-email", req, &result); err != nil {
		return "", err
	}
	return result.Body, nil
}
