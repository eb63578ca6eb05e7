package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

// TokenStore is the session view the record client needs: read the bearer
// token, and drop it when the server says it is stale.
type TokenStore interface {
	Token() string
	Clear() error
}

// RecordClient performs CRUD against {base}/api/records. Every operation
// except List requires an active session and fails locally without one.
type RecordClient struct {
	c       *Client
	session TokenStore
}

func NewRecordClient(c *Client, session TokenStore) *RecordClient {
	return &RecordClient{c: c, session: session}
}

// Save posts a new record and returns the server-assigned id.
func (rc *RecordClient) Save(ctx context.Context, rec model.Record) (string, error) {
	token := rc.session.Token()
	if token == "" {
		return "", apperr.ErrNoSession
	}
	resp, err := rc.c.do(ctx, http.MethodPost, "/api/records/save", token, rec)
	if err != nil {
		return "", fmt.Errorf("saving record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(serverMessage(resp, "saving the record failed"))
	}
	var saved struct {
		ID model.ID `json:"id"`
	}
	if err := decodeJSON(resp, &saved); err != nil {
		return "", fmt.Errorf("decoding save response: %w", err)
	}
	if saved.ID == "" {
		return "", errors.New("save response carried no id")
	}
	return string(saved.ID), nil
}

// List fetches all records for the session. Failures are swallowed at this
// boundary: no token, transport errors and malformed payloads all yield an
// empty slice (logged, not returned). The single exception is a 401, which
// clears the stored token and reports apperr.ErrSessionExpired so the caller
// can navigate back to login; the slice is still empty, never nil semantics
// beyond that.
func (rc *RecordClient) List(ctx context.Context) ([]model.Record, error) {
	token := rc.session.Token()
	if token == "" {
		return []model.Record{}, nil
	}
	resp, err := rc.c.do(ctx, http.MethodGet, "/api/records/get", token, nil)
	if err != nil {
		rc.c.log.Warn("listing records failed", slog.String("error", err.Error()))
		return []model.Record{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_ = rc.session.Clear()
		return []model.Record{}, apperr.ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rc.c.log.Warn("listing records failed", slog.String("status", resp.Status))
		return []model.Record{}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		rc.c.log.Warn("reading records response failed", slog.String("error", err.Error()))
		return []model.Record{}, nil
	}
	records, err := normalizeListPayload(body)
	if err != nil {
		rc.c.log.Warn("unexpected records response shape", slog.String("error", err.Error()))
		return []model.Record{}, nil
	}
	return records, nil
}

// normalizeListPayload accepts both shapes the backend has shipped:
// a bare array, or an object wrapping a `records` array.
func normalizeListPayload(body []byte) ([]model.Record, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var records []model.Record
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var wrapped struct {
		Records []model.Record `json:"records"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Records == nil {
		return nil, errors.New("response is neither an array nor a records object")
	}
	return wrapped.Records, nil
}

// Update replaces a persisted record. The record must carry a server id.
func (rc *RecordClient) Update(ctx context.Context, rec model.Record) error {
	token := rc.session.Token()
	if token == "" {
		return apperr.ErrNoSession
	}
	id := rec.Key()
	if id == "" {
		return apperr.ErrMissingID
	}
	resp, err := rc.c.do(ctx, http.MethodPut, "/api/records/"+url.PathEscape(id), token, rec)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(serverMessage(resp, "updating the record failed"))
	}
	return nil
}

// Remove deletes one record by server id.
func (rc *RecordClient) Remove(ctx context.Context, id string) error {
	token := rc.session.Token()
	if token == "" {
		return apperr.ErrNoSession
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.ErrMissingID
	}
	resp, err := rc.c.do(ctx, http.MethodDelete, "/api/records/"+url.PathEscape(id), token, nil)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(serverMessage(resp, "deleting the record failed"))
	}
	return nil
}

// ClearAll bulk-deletes every record for the session and returns the count.
func (rc *RecordClient) ClearAll(ctx context.Context) (int, error) {
	token := rc.session.Token()
	if token == "" {
		return 0, apperr.ErrNoSession
	}
	resp, err := rc.c.do(ctx, http.MethodDelete, "/api/records/clear-all", token, nil)
	if err != nil {
		return 0, fmt.Errorf("clearing records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, errors.New(serverMessage(resp, "clearing all records failed"))
	}
	var cleared struct {
		DeletedCount int `json:"deletedCount"`
	}
	if err := decodeJSON(resp, &cleared); err != nil {
		return 0, fmt.Errorf("decoding clear-all response: %w", err)
	}
	return cleared.DeletedCount, nil
}
