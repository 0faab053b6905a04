// Package search finds tasks across every container of a document and
// ranks the matches. The walk order is the document order (inbox, then
// areas, then their project trees), so equally scored results keep a
// stable position.
package search

import (
	"sort"
	"strings"

	"github.com/strata-app/strata/types"
)

// allFields is the default field set when Options.Fields is empty.
var allFields = []string{"title", "description", "labels", "contextTags"}

// Tasks searches the document and returns matching tasks ranked by
// relevance, highest score first.
func Tasks(doc types.Document, opts Options) []Result {
	if opts.Query == "" {
		return []Result{}
	}

	var results []Result
	walk(doc, func(t types.Task, loc types.TaskLocation, path string) {
		if r := matchTask(t, loc, path, opts); r != nil {
			results = append(results, *r)
		}
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.MaxResults != nil && *opts.MaxResults > 0 && len(results) > *opts.MaxResults {
		results = results[:*opts.MaxResults]
	}
	return results
}

// walk visits every task in the document together with its location and
// container path.
func walk(doc types.Document, fn func(types.Task, types.TaskLocation, string)) {
	for _, t := range doc.Inbox {
		fn(t, types.InboxLocation(), "Inbox")
	}
	for _, a := range doc.Areas {
		for _, t := range a.Tasks {
			fn(t, types.AreaLocation(a.ID), a.Title)
		}
		for _, p := range a.Projects {
			projectPath := a.Title + " / " + p.Title
			for _, t := range p.Tasks {
				fn(t, types.ProjectLocation(p.ID), projectPath)
			}
			for _, ph := range p.Phases {
				phasePath := projectPath + " / " + ph.Title
				for _, t := range ph.Tasks {
					fn(t, types.PhaseLocation(ph.ID), phasePath)
				}
			}
		}
	}
}

// matchTask searches a single task and returns a result if it matches.
func matchTask(t types.Task, loc types.TaskLocation, path string, opts Options) *Result {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = allFields
	}

	var matchedFields []string
	var bestScore float64
	var bestType MatchType

	for _, field := range fields {
		score, matchType, ok := matchField(t, field, opts)
		if !ok {
			continue
		}
		matchedFields = append(matchedFields, field)
		if score > bestScore {
			bestScore = score
			bestType = matchType
		}
	}

	if len(matchedFields) == 0 {
		return nil
	}
	return &Result{
		Task:          t,
		Location:      loc,
		Path:          path,
		Score:         bestScore,
		MatchType:     bestType,
		MatchedFields: matchedFields,
	}
}

// matchField searches one named field of the task.
func matchField(t types.Task, field string, opts Options) (float64, MatchType, bool) {
	switch field {
	case "title":
		score, exact, ok := matchText(t.Title, "title", opts)
		if !ok {
			return 0, "", false
		}
		if exact {
			return score, MatchExactTitle, true
		}
		return score, MatchPartialTitle, true
	case "description":
		score, _, ok := matchText(t.Description, field, opts)
		return score, MatchDescription, ok
	case "labels":
		return matchList(t.Labels, MatchLabel, opts)
	case "contextTags":
		return matchList(t.ContextTags, MatchContextTag, opts)
	default:
		return 0, "", false
	}
}

// matchText reports whether the query occurs in value, the match score,
// and whether the whole field matched.
func matchText(value, field string, opts Options) (score float64, exact bool, ok bool) {
	if value == "" {
		return 0, false, false
	}
	haystack, needle := value, opts.Query
	if !opts.CaseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}

	if opts.ExactMatch {
		if haystack != needle {
			return 0, false, false
		}
		return calculateScore(haystack, needle, field), true, true
	}
	if !strings.Contains(haystack, needle) {
		return 0, false, false
	}
	return calculateScore(haystack, needle, field), haystack == needle, true
}

// matchList matches the query against each entry of a string list.
func matchList(values []string, matchType MatchType, opts Options) (float64, MatchType, bool) {
	best := 0.0
	found := false
	for _, v := range values {
		if score, _, ok := matchText(v, "", opts); ok {
			found = true
			if score > best {
				best = score
			}
		}
	}
	return best, matchType, found
}

// calculateScore computes a relevance score for a match.
func calculateScore(fieldValue, query, fieldName string) float64 {
	baseScore := 0.5

	// Boost score for title matches.
	if fieldName == "title" {
		baseScore = 0.8
	}

	// Boost if the match is at the beginning.
	if strings.HasPrefix(fieldValue, query) {
		baseScore += 0.1
	}

	// Boost if the query takes up a large portion of the field.
	if len(fieldValue) > 0 {
		coverage := float64(len(query)) / float64(len(fieldValue))
		if coverage > 0.5 {
			baseScore += 0.1
		}
	}

	if baseScore > 1.0 {
		baseScore = 1.0
	}
	return baseScore
}
