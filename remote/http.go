package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/strata-app/strata/types"
)

const (
	defaultTable   = "documents"
	defaultTimeout = 15 * time.Second

	// noRowsCode is the store-reported code for "zero rows matched a
	// single-object request". It distinguishes the new-user branch
	// from genuine failures.
	noRowsCode = "PGRST116"
)

// HTTPOptions configures an HTTPStore.
type HTTPOptions struct {
	// BaseURL is the root of the hosted store, e.g. https://db.example.com.
	BaseURL string
	// APIKey is sent on every request as the apikey header.
	APIKey string
	// Token is the bearer token proving the user's identity.
	Token string
	// Table overrides the document table name. Defaults to "documents".
	Table string
	// Timeout bounds each request. Defaults to 15s.
	Timeout time.Duration
}

// HTTPStore talks to a PostgREST-style hosted document store. Rows are
// keyed by user_id; reads and upserts always move the whole document.
type HTTPStore struct {
	baseURL string
	apiKey  string
	token   string
	table   string
	client  *http.Client
}

// NewHTTPStore creates a hosted-store client.
func NewHTTPStore(opts HTTPOptions) *HTTPStore {
	table := opts.Table
	if table == "" {
		table = defaultTable
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPStore{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		token:   opts.Token,
		table:   table,
		client:  &http.Client{Timeout: timeout},
	}
}

// row matches the wire shape of one document row.
type row struct {
	UserID    string         `json:"user_id"`
	Document  types.Document `json:"document"`
	UpdatedAt string         `json:"updated_at"`
}

// storeError is the error body the store returns on failure.
type storeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Load fetches the single row for userID.
func (s *HTTPStore) Load(ctx context.Context, userID string) (types.Document, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=user_id,document,updated_at&user_id=eq.%s",
		s.baseURL, s.table, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to build load request: %w", err)
	}
	s.setHeaders(req)
	// Ask for a single object instead of an array; zero rows then
	// surface as a coded error rather than an empty list.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return types.Document{}, fmt.Errorf("load request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read load response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var se storeError
		if json.Unmarshal(body, &se) == nil && se.Code == noRowsCode {
			return types.Document{}, ErrNotFound
		}
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable {
			return types.Document{}, ErrNotFound
		}
		if se.Message != "" {
			return types.Document{}, fmt.Errorf("load failed: %s (status %d)", se.Message, resp.StatusCode)
		}
		return types.Document{}, fmt.Errorf("load failed with status %d", resp.StatusCode)
	}

	var r row
	if err := json.Unmarshal(body, &r); err != nil {
		return types.Document{}, fmt.Errorf("failed to parse remote document: %w", err)
	}
	return r.Document, nil
}

// Save upserts the full document for userID, keyed on user_id.
func (s *HTTPStore) Save(ctx context.Context, userID string, doc types.Document) error {
	payload, err := json.Marshal([]row{{
		UserID:    userID,
		Document:  doc,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}})
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?on_conflict=user_id", s.baseURL, s.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build save request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("save request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var se storeError
		if json.Unmarshal(body, &se) == nil && se.Message != "" {
			return fmt.Errorf("save failed: %s (status %d)", se.Message, resp.StatusCode)
		}
		return fmt.Errorf("save failed with status %d", resp.StatusCode)
	}
	return nil
}

func (s *HTTPStore) setHeaders(req *http.Request) {
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}
