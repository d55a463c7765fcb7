package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contractpad/internal/common"
)

const defaultTimeout = 12 * time.Second

// HTTPStore implements Store against a PostgREST-style REST backend: one
// resource per table, upsert-by-id via POST with merge-duplicates, and
// column filters in the query string.
type HTTPStore struct {
	baseURL     string
	apiKey      string
	accessToken string
	client      *http.Client
}

// NewHTTPStore creates a client for the given base URL (scheme://host) and
// service api key.
func NewHTTPStore(baseURL, apiKey string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// SetAccessToken installs the bearer token used on subsequent requests.
// Without a token the api key alone is sent.
func (s *HTTPStore) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *HTTPStore) resourceURL(resource, rawQuery string) string {
	u := s.baseURL + "/rest/v1/" + resource
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (s *HTTPStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	token := s.accessToken
	if token == "" {
		token = s.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
}

// upsert POSTs a single-row payload with merge-duplicates resolution, which
// makes the write an upsert keyed by the resource's primary key.
func (s *HTTPStore) upsert(ctx context.Context, resource string, row any) error {
	body, err := json.Marshal([]any{row})
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", resource, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.resourceURL(resource, ""), bytes.NewReader(body))
	if err != nil {
		return err
	}
	s.setHeaders(req)
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s upsert: %w: %w", resource, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return s.checkStatus(resource, resp)
}

func (s *HTTPStore) query(ctx context.Context, resource, rawQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.resourceURL(resource, rawQuery), nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s query: %w: %w", resource, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := s.checkStatus(resource, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}
	return nil
}

func (s *HTTPStore) checkStatus(resource string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%s: status %d: %s: %w", resource, resp.StatusCode, msg, common.ErrUnavailable)
	}
	return fmt.Errorf("%s: status %d: %s", resource, resp.StatusCode, msg)
}

// UpsertDocument implements Store.
func (s *HTTPStore) UpsertDocument(ctx context.Context, doc WireDocument) error {
	return s.upsert(ctx, "documents", doc)
}

// UpsertVersion implements Store.
func (s *HTTPStore) UpsertVersion(ctx context.Context, v WireVersion) error {
	return s.upsert(ctx, "contract_versions", v)
}

// DocumentsByUser implements Store.
func (s *HTTPStore) DocumentsByUser(ctx context.Context, userID string) ([]WireDocument, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+userID)

	var docs []WireDocument
	if err := s.query(ctx, "documents", q.Encode(), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// VersionsByDocuments implements Store.
func (s *HTTPStore) VersionsByDocuments(ctx context.Context, documentIDs []string) ([]WireVersion, error) {
	if len(documentIDs) == 0 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("contract_id", "in.("+strings.Join(documentIDs, ",")+")")

	var vs []WireVersion
	if err := s.query(ctx, "contract_versions", q.Encode(), &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// Ping probes backend reachability. Used by the connectivity watcher to
// decide online/offline transitions.
func (s *HTTPStore) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping: %w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("ping: status %d: %w", resp.StatusCode, common.ErrUnavailable)
	}
	return nil
}
