package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
)

const remoteService = "nexus-api"

// RemoteStore talks to the Nexus HTTP API. One attempt per call, bounded only
// by the caller's context.
type RemoteStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewRemoteStore uses http.DefaultClient when client is nil.
func NewRemoteStore(baseURL, token string, client *http.Client) *RemoteStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

func (s *RemoteStore) List(ctx context.Context) ([]domain.Asset, error) {
	var assets []domain.Asset
	if err := s.do(ctx, "list", http.MethodGet, "/api/assets", nil, &assets); err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

func (s *RemoteStore) Upsert(ctx context.Context, asset domain.Asset) error {
	body, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("failed to encode asset: %w", err)
	}
	return s.do(ctx, "upsert", http.MethodPost, "/api/assets", body, nil)
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	return s.do(ctx, "delete", http.MethodDelete, "/api/assets/"+url.PathEscape(id), nil, nil)
}

func (s *RemoteStore) do(ctx context.Context, operation, method, path string, body []byte, out any) error {
	logger.ExternalServiceCall(remoteService, operation, "method", method, "path", path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult(remoteService, operation, err)
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("%w: %s %s returned %d: %s", domain.ErrRemoteUnavailable, method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
		logger.ExternalServiceResult(remoteService, operation, err)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			err = fmt.Errorf("%w: invalid response body: %v", domain.ErrRemoteUnavailable, err)
			logger.ExternalServiceResult(remoteService, operation, err)
			return err
		}
	}
	logger.ExternalServiceResult(remoteService, operation, nil, "status", resp.StatusCode)
	return nil
}
