package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/modules/suggestion/dto"
)

// RemoteClient calls the external generative-suggestion service.
type RemoteClient interface {
	GenerateSuggestion(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestionResult, error)
}

type remoteClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRemoteClient(cfg config.SuggestionConfig) RemoteClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &remoteClient{
		baseURL:    strings.TrimSuffix(cfg.ServiceURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// remoteResponse is the service's envelope: a single text field expected to
// hold a markdown-fenced JSON blob in the SuggestionResult shape.
type remoteResponse struct {
	Suggestions string `json:"suggestions"`
}

// GenerateSuggestion posts the volunteer/event payload and decodes the
// fenced JSON body. Any transport error, non-2xx status or shape mismatch is
// returned as an error so the caller can fall back to the local pipeline.
// A single attempt is made; there is no retry.
func (c *remoteClient) GenerateSuggestion(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestionResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("suggestion service URL not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggestion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate-suggestions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("suggestion service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion response: %w", err)
	}

	var envelope remoteResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion envelope: %w", err)
	}

	var result dto.SuggestionResult
	if err := json.Unmarshal([]byte(stripCodeFences(envelope.Suggestions)), &result); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion body: %w", err)
	}

	if err := validateResult(&result); err != nil {
		return nil, fmt.Errorf("suggestion response failed validation: %w", err)
	}

	return &result, nil
}

// stripCodeFences removes the markdown code-fence markers the generative
// service wraps its JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// validateResult enforces the SuggestionResult shape at the service
// boundary; any mismatch is treated as a parse failure.
func validateResult(r *dto.SuggestionResult) error {
	if r.RecommendedTimeSlot == "" {
		return fmt.Errorf("missing recommendedTimeSlot")
	}
	if r.Duration == "" {
		return fmt.Errorf("missing duration")
	}
	if r.MatchingVolunteerTypes == nil {
		return fmt.Errorf("missing matchingVolunteerTypes")
	}
	if r.Reasoning == "" {
		return fmt.Errorf("missing reasoning")
	}
	for name, score := range map[string]string{
		"compatibilityScore": r.CompatibilityScore,
		"timeOverlapScore":   r.TimeOverlapScore,
		"proximityScore":     r.ProximityScore,
		"skillMatchScore":    r.SkillMatchScore,
	} {
		if _, err := strconv.Atoi(score); err != nil {
			return fmt.Errorf("%s is not an integer string: %q", name, score)
		}
	}
	return nil
}
