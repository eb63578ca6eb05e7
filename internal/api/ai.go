package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

// AIClient talks to the AI mentor endpoints. These calls are advisory: the
// wizard treats their failures as non-fatal.
type AIClient struct {
	c *Client
}

func NewAIClient(c *Client) *AIClient { return &AIClient{c: c} }

type hintRequest struct {
	Fact         string             `json:"fact"`
	RootThought  string             `json:"rootThought"`
	ResourceType model.ResourceType `json:"resourceType"`
}

// Hint asks the mentor for advice on converting the recorded fact into one
// resource category. Fact and root thought must already be captured.
func (a *AIClient) Hint(ctx context.Context, fact, rootThought string, resource model.ResourceType) (string, error) {
	fact = strings.TrimSpace(fact)
	rootThought = strings.TrimSpace(rootThought)
	if fact == "" || rootThought == "" {
		return "", fmt.Errorf("%w: complete the fact and thought-pattern steps before asking for a hint", apperr.ErrValidation)
	}

	resp, err := a.c.do(ctx, http.MethodPost, "/api/ai/reframing", "", hintRequest{
		Fact:         fact,
		RootThought:  rootThought,
		ResourceType: resource,
	})
	if err != nil {
		return "", fmt.Errorf("requesting hint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("server error: %d - %s", resp.StatusCode, serverMessage(resp, "unknown error"))
	}
	var body struct {
		Advice string `json:"advice"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return "", fmt.Errorf("decoding hint response: %w", err)
	}
	return body.Advice, nil
}

// Summary generates the closing narrative for a finished reframing record.
func (a *AIClient) Summary(ctx context.Context, rec model.Record) (string, error) {
	resp, err := a.c.do(ctx, http.MethodPost, "/api/ai/finish", "", map[string]model.Record{"record": rec})
	if err != nil {
		return "", fmt.Errorf("requesting summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("server error: %d - %s", resp.StatusCode, serverMessage(resp, "unknown error"))
	}
	var body struct {
		Summary string `json:"summary"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return "", fmt.Errorf("decoding summary response: %w", err)
	}
	if strings.TrimSpace(body.Summary) == "" {
		return "", errors.New("summary response was empty")
	}
	return body.Summary, nil
}
