package search

import "github.com/strata-app/strata/types"

// Options configures search behavior.
type Options struct {
	// Query is the search term to look for.
	Query string

	// Fields specifies which task fields to search in.
	// Supported values: "title", "description", "labels", "contextTags".
	// Empty slice searches all fields.
	Fields []string

	// CaseSensitive controls whether the search is case-sensitive.
	CaseSensitive bool

	// ExactMatch requires the entire field to match the query.
	// When false, performs substring matching.
	ExactMatch bool

	// MaxResults limits the number of results. nil means no limit.
	MaxResults *int
}

// Result is one matched task with ranking metadata.
type Result struct {
	// Task is the matched task.
	Task types.Task

	// Location addresses the container holding the task.
	Location types.TaskLocation

	// Path is the human-readable container path, for example
	// "Engineering / Storage rewrite / Build".
	Path string

	// Score represents match relevance (0.0 to 1.0, higher is better).
	Score float64

	// MatchType describes where the best match was found.
	MatchType MatchType

	// MatchedFields lists all fields that contained matches.
	MatchedFields []string
}

// MatchType indicates the kind of match found.
type MatchType string

const (
	MatchExactTitle   MatchType = "exact_title"
	MatchPartialTitle MatchType = "partial_title"
	MatchDescription  MatchType = "description"
	MatchLabel        MatchType = "label"
	MatchContextTag   MatchType = "context_tag"
)
