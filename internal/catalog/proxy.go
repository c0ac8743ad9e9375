// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pdiddy/art-explorer/internal/httputil"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// Proxy is the internal API the catalog talks to.
type Proxy interface {
	Departments(ctx context.Context) ([]types.Department, error)
	Search(ctx context.Context, f types.Filters) (types.SearchResult, error)
	Object(ctx context.Context, id int) (types.ObjectRecord, error)
}

// HTTPProxy calls a running enrichment proxy over HTTP.
type HTTPProxy struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewHTTPProxy builds an HTTPProxy from cfg.
func NewHTTPProxy(cfg types.BrowseConfig) *HTTPProxy {
	return &HTTPProxy{
		Client:    &http.Client{Timeout: cfg.Timeout},
		BaseURL:   strings.TrimRight(cfg.ProxyURL, "/"),
		UserAgent: cfg.UserAgent,
	}
}

// Departments fetches the department list.
func (p *HTTPProxy) Departments(ctx context.Context) ([]types.Department, error) {
	body, err := httputil.Get(ctx, p.Client, p.BaseURL+"/departments", p.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching departments: %w", err)
	}
	var departments []types.Department
	if err := json.Unmarshal(body, &departments); err != nil {
		return nil, fmt.Errorf("parsing departments: %w", err)
	}
	return departments, nil
}

// Search runs a filtered search. A blank keyword searches for the default.
func (p *HTTPProxy) Search(ctx context.Context, f types.Filters) (types.SearchResult, error) {
	q := url.Values{
		"department": {f.Department},
		"keyword":    {f.KeywordOrDefault()},
		"location":   {f.Location},
	}
	var result types.SearchResult
	body, err := httputil.Get(ctx, p.Client, p.BaseURL+"/search?"+q.Encode(), p.UserAgent)
	if err != nil {
		return result, fmt.Errorf("searching: %w", err)
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("parsing search result: %w", err)
	}
	return result, nil
}

// Object fetches one enriched record.
func (p *HTTPProxy) Object(ctx context.Context, id int) (types.ObjectRecord, error) {
	body, err := httputil.Get(ctx, p.Client, p.BaseURL+"/object/"+strconv.Itoa(id), p.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching object %d: %w", id, err)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var rec types.ObjectRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("parsing object %d: %w", id, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("object %d: empty record", id)
	}
	return rec, nil
}
