package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/folio-cms/folio/internal/cache"
	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/telemetry"
)

const (
	maxTagCloudEntries = 50
	tagCloudCacheKey   = "folio:tag-cloud"
)

// tagPalette colors raw technology strings that have no tag row.
var tagPalette = []string{
	"#007bff", "#28a745", "#dc3545", "#ffc107", "#17a2b8", "#6f42c1",
}

// TagCloudEntry is one weighted label in the tag cloud.
type TagCloudEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
	URL   string `json:"url"`
}

// TagStore reads and recounts the tag directory.
type TagStore interface {
	All(ctx context.Context) ([]*domain.Tag, error)
	SetUsageCount(ctx context.Context, id int64, count int) error
}

// TechnologyLister exposes the raw technologies field of every project.
type TechnologyLister interface {
	AllTechnologies(ctx context.Context) ([]string, error)
}

// BlogTagLister exposes the raw tags field of every published post.
type BlogTagLister interface {
	AllPublishedTags(ctx context.Context) ([]string, error)
}

// TagCloudService computes tag weights from text membership in the
// comma-separated technology and tag fields. The counts are heuristic:
// there is no relational join behind them.
type TagCloudService struct {
	tags     TagStore
	projects TechnologyLister
	blog     BlogTagLister
	cache    *cache.Cache
}

func NewTagCloudService(tags TagStore, projects TechnologyLister, blog BlogTagLister, c *cache.Cache) *TagCloudService {
	return &TagCloudService{
		tags:     tags,
		projects: projects,
		blog:     blog,
		cache:    c,
	}
}

// TagCloud returns labels with count > 0, heaviest first, capped at 50.
// Stored tag colors win; raw technology strings without a tag row cycle
// through a fixed palette. Storage failures degrade to an empty cloud.
func (s *TagCloudService) TagCloud(ctx context.Context) []TagCloudEntry {
	var cached []TagCloudEntry
	if s.cache.GetJSON(ctx, tagCloudCacheKey, &cached) {
		return cached
	}

	counts, names, err := s.membershipCounts(ctx)
	if err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("tag cloud: %w", err))
		return []TagCloudEntry{}
	}

	colorByName := make(map[string]string)
	if tags, err := s.tags.All(ctx); err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("tag cloud directory: %w", err))
	} else {
		for _, t := range tags {
			colorByName[strings.ToLower(t.Name)] = t.Color
		}
	}

	entries := make([]TagCloudEntry, 0, len(counts))
	for key, count := range counts {
		name := names[key]
		entries = append(entries, TagCloudEntry{
			Name:  name,
			Count: count,
			Color: colorByName[key],
			URL:   "/search/?q=" + url.QueryEscape(name),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > maxTagCloudEntries {
		entries = entries[:maxTagCloudEntries]
	}

	palette := 0
	for i := range entries {
		if entries[i].Color == "" {
			entries[i].Color = tagPalette[palette%len(tagPalette)]
			palette++
		}
	}

	s.cache.SetJSON(ctx, tagCloudCacheKey, entries)
	return entries
}

// RecountUsage recomputes the stored usage counter of every tag from
// current text membership. Run periodically by the jobs worker.
func (s *TagCloudService) RecountUsage(ctx context.Context) error {
	counts, _, err := s.membershipCounts(ctx)
	if err != nil {
		return fmt.Errorf("recount tag usage: %w", err)
	}

	tags, err := s.tags.All(ctx)
	if err != nil {
		return fmt.Errorf("recount tag usage: %w", err)
	}

	for _, t := range tags {
		count := counts[strings.ToLower(t.Name)]
		if count == t.UsageCount {
			continue
		}
		if err := s.tags.SetUsageCount(ctx, t.ID, count); err != nil {
			return fmt.Errorf("recount tag %q: %w", t.Name, err)
		}
	}
	return nil
}

// membershipCounts tallies how many projects and published posts
// mention each label, keyed by lowercased name. The names map keeps the
// first-seen casing for display.
func (s *TagCloudService) membershipCounts(ctx context.Context) (map[string]int, map[string]string, error) {
	technologies, err := s.projects.AllTechnologies(ctx)
	if err != nil {
		return nil, nil, err
	}
	blogTags, err := s.blog.AllPublishedTags(ctx)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	tally := func(raw string) {
		for _, item := range domain.SplitList(raw) {
			key := strings.ToLower(item)
			counts[key]++
			if _, ok := names[key]; !ok {
				names[key] = item
			}
		}
	}
	for _, raw := range technologies {
		tally(raw)
	}
	for _, raw := range blogTags {
		tally(raw)
	}
	return counts, names, nil
}
