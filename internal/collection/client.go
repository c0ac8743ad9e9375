// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection talks to the external museum collection API: the
// department list, keyword search, and single-object lookup. Departments and
// search replies are handed back as raw JSON so the proxy can forward them
// verbatim; objects are decoded into a types.ObjectRecord for enrichment.
package collection

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pdiddy/art-explorer/internal/httputil"
	"github.com/pdiddy/art-explorer/internal/metrics"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Client queries the collection API. The zero value is not usable; set at
// least Client.
type Client struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewClient builds a Client from cfg.
func NewClient(cfg types.CollectionConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		Client:    &http.Client{Timeout: cfg.Timeout},
		BaseURL:   strings.TrimRight(base, "/"),
		UserAgent: cfg.UserAgent,
	}
}

// Departments returns the upstream "departments" array exactly as sent.
func (c *Client) Departments(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "departments", c.BaseURL+"/departments")
	if err != nil {
		return nil, err
	}

	var dr departmentsResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("parsing departments response: %w", err)
	}
	if len(dr.Departments) == 0 || bytes.Equal(dr.Departments, []byte("null")) {
		return nil, fmt.Errorf("departments response has no departments array")
	}
	return dr.Departments, nil
}

// Search forwards f to the search endpoint and returns the reply verbatim.
// Results are always constrained to objects with images.
func (c *Client) Search(ctx context.Context, f types.Filters) (json.RawMessage, error) {
	body, err := c.get(ctx, "search", c.BaseURL+"/search?"+SearchParams(f).Encode())
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("search response is not valid JSON")
	}
	return json.RawMessage(body), nil
}

// Object fetches a single object record by identifier. The identifier is
// path-escaped and otherwise passed through unchecked.
func (c *Client) Object(ctx context.Context, id string) (types.ObjectRecord, error) {
	body, err := c.get(ctx, "object", c.BaseURL+"/objects/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var record types.ObjectRecord
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("parsing object %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("object %s: empty response", id)
	}
	return record, nil
}

// SearchParams builds the upstream query for f. Filter values are encoded for
// transport and not otherwise validated.
func SearchParams(f types.Filters) url.Values {
	params := url.Values{
		"hasImages": {"true"},
		"q":         {f.KeywordOrDefault()},
	}
	if f.Department != "" {
		params.Set("departmentId", f.Department)
	}
	if f.Location != "" {
		params.Set("geoLocation", f.Location)
	}
	return params
}

func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	body, err := httputil.Get(ctx, c.Client, rawURL, c.UserAgent)
	metrics.RecordUpstream(endpoint, err)
	if err != nil {
		return nil, fmt.Errorf("collection API %s request: %w", endpoint, err)
	}
	return body, nil
}

type departmentsResponse struct {
	Departments json.RawMessage `json:"departments"`
}
