package commands

import (
	"context"
	"sort"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// SearchResult is a matching note with a relevance score
type SearchResult struct {
	Note  domain.Note
	Score int
}

// SearchNotesCommand searches note titles and descriptions with fuzzy
// matching and note bodies by substring
type SearchNotesCommand struct {
	ws    *application.Workspace
	Query string
}

// NewSearchNotesCommand creates a new SearchNotesCommand
func NewSearchNotesCommand(ws *application.Workspace, query string) *SearchNotesCommand {
	return &SearchNotesCommand{
		ws:    ws,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchNotesCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}
	return FuzzySort(c.ws.Notes.List(), query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // word boundary
			}
			score++
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// bodyMatchScore ranks a content hit below any title hit
const bodyMatchScore = 20

// FuzzySort scores notes against query, drops non-matches and sorts by
// score. Ties keep list order.
func FuzzySort(notes []domain.Note, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(notes))
	lowerQuery := strings.ToLower(query)

	for _, n := range notes {
		best := max(FuzzyScore(n.Title, query), FuzzyScore(n.Description, query))
		if best == 0 && strings.Contains(strings.ToLower(n.Content), lowerQuery) {
			best = bodyMatchScore
		}
		if best > 0 {
			scored = append(scored, SearchResult{Note: n, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
