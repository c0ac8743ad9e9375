// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for art-explorer: the records
// exchanged with the external collection API, the search filters the catalog
// client sends through the proxy, and the application configuration.
package types

import "strings"

// DefaultKeyword is searched when the user leaves the keyword blank.
const DefaultKeyword = "flowers"

// Department is one entry of the collection's department list. It only lives
// long enough to populate a selection control.
type Department struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

// SearchResult is the identifier list produced by one search. A new search
// supersedes it wholesale.
type SearchResult struct {
	// Total is the count reported by the collection API.
	Total int `json:"total"`

	// ObjectIDs lists matching objects in upstream order. The collection API
	// sends null when nothing matched.
	ObjectIDs []int `json:"objectIDs"`
}

// Filters holds the user-selected search parameters. Department and Location
// are optional; an empty Keyword means DefaultKeyword.
type Filters struct {
	Department string
	Keyword    string
	Location   string
}

// KeywordOrDefault returns the keyword to search for.
func (f Filters) KeywordOrDefault() string {
	if strings.TrimSpace(f.Keyword) == "" {
		return DefaultKeyword
	}
	return f.Keyword
}
