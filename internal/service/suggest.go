package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/folio-cms/folio/internal/cache"
	"github.com/folio-cms/folio/internal/telemetry"
)

const (
	maxQuerySuggestions   = 5
	maxDefaultSuggestions = 10
	maxPopularSearches    = 10

	// Below two characters autocomplete refuses to touch the
	// repositories at all.
	autocompleteMinChars = 2

	autocompleteTagLimit     = 5
	autocompleteProjectLimit = 3
	autocompleteSkillLimit   = 3
	autocompletePopularLimit = 3
	autocompleteTotal        = 10

	popularSearchesCacheKey = "folio:popular-searches"
)

// TagDirectory reads tag names for suggestion lists.
type TagDirectory interface {
	NameMatches(ctx context.Context, query string, limit int) ([]string, error)
	FeaturedNames(ctx context.Context, limit int) ([]string, error)
}

// ProjectTitleIndex reads project titles for autocomplete.
type ProjectTitleIndex interface {
	TitleMatches(ctx context.Context, query string, limit int) ([]string, error)
}

// SkillNameIndex reads skill names for autocomplete.
type SkillNameIndex interface {
	NameMatches(ctx context.Context, query string, limit int) ([]string, error)
}

// SuggestionService derives suggestion, autocomplete, and popularity
// lists from the tag directory and the search query log. Every method
// degrades to an empty list on storage failure; suggestions are
// decoration, never worth failing a request over.
type SuggestionService struct {
	tags       TagDirectory
	projects   ProjectTitleIndex
	skills     SkillNameIndex
	popularity PopularityStore
	cache      *cache.Cache
}

func NewSuggestionService(tags TagDirectory, projects ProjectTitleIndex, skills SkillNameIndex, popularity PopularityStore, c *cache.Cache) *SuggestionService {
	return &SuggestionService{
		tags:       tags,
		projects:   projects,
		skills:     skills,
		popularity: popularity,
		cache:      c,
	}
}

// Suggestions returns tag names for the search page. With a query it
// returns up to 5 tag names containing it; without one it returns up
// to 10 featured tag names by descending usage.
func (s *SuggestionService) Suggestions(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)

	var names []string
	var err error
	if query != "" {
		names, err = s.tags.NameMatches(ctx, query, maxQuerySuggestions)
	} else {
		names, err = s.tags.FeaturedNames(ctx, maxDefaultSuggestions)
	}
	if err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("tag suggestions: %w", err))
		return []string{}
	}
	if names == nil {
		names = []string{}
	}
	return names
}

// PopularSearches returns the top queries by exact-text frequency over
// the whole log.
func (s *SuggestionService) PopularSearches(ctx context.Context) []PopularSearch {
	var cached []PopularSearch
	if s.cache.GetJSON(ctx, popularSearchesCacheKey, &cached) {
		return cached
	}

	rows, err := s.popularity.Popular(ctx, maxPopularSearches)
	if err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("popular searches: %w", err))
		return []PopularSearch{}
	}

	popular := make([]PopularSearch, 0, len(rows))
	for _, row := range rows {
		popular = append(popular, PopularSearch{Query: row.Query, Count: row.Count})
	}
	s.cache.SetJSON(ctx, popularSearchesCacheKey, popular)
	return popular
}

// Autocomplete returns live-typing suggestions gathered from tags,
// project titles, skill names, and previously logged queries, in that
// order, deduplicated and capped at 10. Queries shorter than 2
// characters return nothing without touching storage.
func (s *SuggestionService) Autocomplete(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < autocompleteMinChars {
		return []string{}
	}

	gather := func(label string, fetch func(context.Context) ([]string, error)) []string {
		names, err := fetch(ctx)
		if err != nil {
			telemetry.CaptureError(ctx, fmt.Errorf("autocomplete %s: %w", label, err))
			return nil
		}
		return names
	}

	var gathered []string
	gathered = append(gathered, gather("tags", func(ctx context.Context) ([]string, error) {
		return s.tags.NameMatches(ctx, query, autocompleteTagLimit)
	})...)
	gathered = append(gathered, gather("projects", func(ctx context.Context) ([]string, error) {
		return s.projects.TitleMatches(ctx, query, autocompleteProjectLimit)
	})...)
	gathered = append(gathered, gather("skills", func(ctx context.Context) ([]string, error) {
		return s.skills.NameMatches(ctx, query, autocompleteSkillLimit)
	})...)
	gathered = append(gathered, gather("popular queries", func(ctx context.Context) ([]string, error) {
		return s.popularity.PopularMatches(ctx, query, autocompletePopularLimit)
	})...)

	seen := make(map[string]struct{}, len(gathered))
	suggestions := make([]string, 0, autocompleteTotal)
	for _, name := range gathered {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		suggestions = append(suggestions, name)
		if len(suggestions) == autocompleteTotal {
			break
		}
	}
	return suggestions
}
