package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"linkhub/internal/models"
)

const masterKeyHeader = "X-Master-Key"

// BinStore talks to a jsonbin-style hosted key-value endpoint. The whole
// user mapping lives in one bin; reads hit the "latest" view and writes
// replace the bin body outright.
type BinStore struct {
	endpoint string
	bin      string
	key      string
	client   *http.Client
}

func NewBinStore(endpoint, bin, key string) *BinStore {
	return &BinStore{
		endpoint: strings.TrimRight(endpoint, "/"),
		bin:      bin,
		key:      key,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type binEnvelope struct {
	Record map[string]*models.User `json:"record"`
}

func (s *BinStore) Load(ctx context.Context) map[string]*models.User {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.latestURL(), nil)
	if err != nil {
		slog.Warn("document load failed", "error", err)
		return map[string]*models.User{}
	}
	req.Header.Set(masterKeyHeader, s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("document load failed", "error", err)
		return map[string]*models.User{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("document load failed", "status", resp.StatusCode)
		return map[string]*models.User{}
	}

	var envelope binEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		slog.Warn("document load failed", "error", err)
		return map[string]*models.User{}
	}
	if envelope.Record == nil {
		return map[string]*models.User{}
	}
	return envelope.Record
}

func (s *BinStore) Save(ctx context.Context, users map[string]*models.User) error {
	body, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.binURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building document write: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(masterKeyHeader, s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: write rejected with status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (s *BinStore) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.latestURL(), nil)
	if err != nil {
		return fmt.Errorf("building ping: %w", err)
	}
	req.Header.Set(masterKeyHeader, s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (s *BinStore) latestURL() string {
	return fmt.Sprintf("%s/b/%s/latest", s.endpoint, s.bin)
}

func (s *BinStore) binURL() string {
	return fmt.Sprintf("%s/b/%s", s.endpoint, s.bin)
}
