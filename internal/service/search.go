package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

const snippetMaxChars = 200

// SourceType identifies which entity catalog a search hit came from.
// The values double as the category filter enumeration.
type SourceType string

const (
	SourceProjects       SourceType = "projects"
	SourceExperiences    SourceType = "experiences"
	SourceSkills         SourceType = "skills"
	SourceBlog           SourceType = "blog"
	SourceCertifications SourceType = "certifications"
	SourceTestimonials   SourceType = "testimonials"
	SourceFAQ            SourceType = "faq"
	SourceResources      SourceType = "resources"
)

// normalizeCategory maps a raw category parameter onto the filter
// enumeration. Anything unrecognized, including "all" and the empty
// string, means no filter.
func normalizeCategory(category string) SourceType {
	switch SourceType(strings.ToLower(strings.TrimSpace(category))) {
	case SourceProjects:
		return SourceProjects
	case SourceExperiences:
		return SourceExperiences
	case SourceSkills:
		return SourceSkills
	case SourceBlog:
		return SourceBlog
	case SourceCertifications:
		return SourceCertifications
	case SourceTestimonials:
		return SourceTestimonials
	case SourceFAQ:
		return SourceFAQ
	case SourceResources:
		return SourceResources
	default:
		return ""
	}
}

// SearchResult is the uniform shape every entity hit is projected into.
type SearchResult struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SourceType  SourceType `json:"source_type"`
	URL         string     `json:"url"`
	Date        *time.Time `json:"date,omitempty"`
	Tags        []string   `json:"tags"`
	Image       string     `json:"image,omitempty"`
}

// PopularSearch is one row of the popular-search list.
type PopularSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// SearchResponse is the full payload of a universal search.
type SearchResponse struct {
	Query           string                        `json:"query"`
	Category        string                        `json:"category"`
	Results         map[SourceType][]SearchResult `json:"results"`
	TotalResults    int                           `json:"total_results"`
	Suggestions     []string                      `json:"suggestions"`
	PopularSearches []PopularSearch               `json:"popular_searches"`
}

// SearchInput bundles the parameters of one search invocation.
type SearchInput struct {
	Query    string
	Category string
	Request  RequestContext
}

// Per-source lookup interfaces. Repositories implement these; each one
// applies its own visibility pre-filter and field surface.
type ProjectSource interface {
	Search(ctx context.Context, query string) ([]*domain.Project, error)
}

type ExperienceSource interface {
	Search(ctx context.Context, query string) ([]*domain.Experience, error)
}

type SkillSource interface {
	Search(ctx context.Context, query string) ([]*domain.Skill, error)
}

type BlogSource interface {
	Search(ctx context.Context, query string) ([]*domain.BlogPost, error)
}

type CertificationSource interface {
	Search(ctx context.Context, query string) ([]*domain.Certification, error)
}

type TestimonialSource interface {
	Search(ctx context.Context, query string) ([]*domain.Testimonial, error)
}

type FAQSource interface {
	Search(ctx context.Context, query string) ([]*domain.FAQ, error)
}

type ResourceSource interface {
	Search(ctx context.Context, query string) ([]*domain.Resource, error)
}

// Sources bundles the per-entity lookups the search engine fans out to.
type Sources struct {
	Projects       ProjectSource
	Experiences    ExperienceSource
	Skills         SkillSource
	BlogPosts      BlogSource
	Certifications CertificationSource
	Testimonials   TestimonialSource
	FAQs           FAQSource
	Resources      ResourceSource
}

// Suggester provides the suggestion and popularity lists attached to
// search responses.
type Suggester interface {
	Suggestions(ctx context.Context, query string) []string
	PopularSearches(ctx context.Context) []PopularSearch
}

// UniversalSearchService fans a free-text query out across all entity
// catalogs, groups the normalized hits by source type, and appends one
// entry per non-empty search to the query log.
type UniversalSearchService struct {
	sources Sources
	log     SearchLogStore
	suggest Suggester
}

func NewUniversalSearchService(sources Sources, log SearchLogStore, suggest Suggester) *UniversalSearchService {
	return &UniversalSearchService{
		sources: sources,
		log:     log,
		suggest: suggest,
	}
}

// Search runs one universal search. It never fails: a source that
// errors contributes an empty group, a failed log append is swallowed,
// and an unknown category falls back to searching everything. All
// failures are captured to telemetry.
func (s *UniversalSearchService) Search(ctx context.Context, input SearchInput) *SearchResponse {
	query := strings.TrimSpace(input.Query)
	category := normalizeCategory(input.Category)

	resp := &SearchResponse{
		Query:           query,
		Category:        "all",
		Results:         map[SourceType][]SearchResult{},
		Suggestions:     []string{},
		PopularSearches: []PopularSearch{},
	}
	if category != "" {
		resp.Category = string(category)
	}

	if query == "" {
		resp.Suggestions = s.suggest.Suggestions(ctx, "")
		resp.PopularSearches = s.suggest.PopularSearches(ctx)
		return resp
	}

	ctx, span := telemetry.StartSpan(ctx, "service.search", telemetry.SpanAttributes{
		Query:     query,
		Operation: "universal_search",
	})
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	run := func(st SourceType, fetch func(context.Context) ([]SearchResult, error)) {
		if category != "" && category != st {
			return
		}
		g.Go(func() error {
			results, err := fetch(gctx)
			if err != nil {
				telemetry.CaptureError(gctx, fmt.Errorf("search source %s: %w", st, err))
				results = nil
			}
			if results == nil {
				results = []SearchResult{}
			}
			mu.Lock()
			resp.Results[st] = results
			mu.Unlock()
			return nil
		})
	}

	run(SourceProjects, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Projects.Search(ctx, query)
		return projectResults(records), err
	})
	run(SourceExperiences, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Experiences.Search(ctx, query)
		return experienceResults(records), err
	})
	run(SourceSkills, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Skills.Search(ctx, query)
		return skillResults(records), err
	})
	run(SourceBlog, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.BlogPosts.Search(ctx, query)
		return blogResults(records), err
	})
	run(SourceCertifications, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Certifications.Search(ctx, query)
		return certificationResults(records), err
	})
	run(SourceTestimonials, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Testimonials.Search(ctx, query)
		return testimonialResults(records), err
	})
	run(SourceFAQ, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.FAQs.Search(ctx, query)
		return faqResults(records), err
	})
	run(SourceResources, func(ctx context.Context) ([]SearchResult, error) {
		records, err := s.sources.Resources.Search(ctx, query)
		return resourceResults(records), err
	})

	// Fetch closures never return an error; failures degrade in place.
	_ = g.Wait()

	for _, group := range resp.Results {
		resp.TotalResults += len(group)
	}

	entry := &domain.SearchQuery{
		Query:        query,
		ResultsCount: resp.TotalResults,
		IPAddress:    input.Request.IPAddress,
		UserAgent:    input.Request.UserAgent,
	}
	if err := s.log.Create(ctx, entry); err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("search log append: %w", err))
	}

	if resp.TotalResults == 0 {
		resp.Suggestions = s.suggest.Suggestions(ctx, query)
		// A query that matches no tag name still gets the featured
		// list, so a miss page always offers somewhere to go next.
		if len(resp.Suggestions) == 0 {
			resp.Suggestions = s.suggest.Suggestions(ctx, "")
		}
	}
	resp.PopularSearches = s.suggest.PopularSearches(ctx)

	return resp
}

// RecordClick stores the result URL followed from a logged search.
// Unlike Search this is a direct write surface, so errors propagate.
func (s *UniversalSearchService) RecordClick(ctx context.Context, queryID int64, resultURL string) error {
	if strings.TrimSpace(resultURL) == "" {
		return domain.ErrMissingRequiredField
	}
	return s.log.RecordClick(ctx, queryID, resultURL)
}

func projectResults(projects []*domain.Project) []SearchResult {
	results := make([]SearchResult, 0, len(projects))
	for _, p := range projects {
		date := p.StartDate
		results = append(results, SearchResult{
			Title:       p.Title,
			Description: makeSnippet(p.Description),
			SourceType:  SourceProjects,
			URL:         p.DetailURL(),
			Date:        &date,
			Tags:        p.TechnologyList(),
			Image:       p.ImageURL,
		})
	}
	return results
}

func experienceResults(experiences []*domain.Experience) []SearchResult {
	results := make([]SearchResult, 0, len(experiences))
	for _, e := range experiences {
		date := e.StartDate
		results = append(results, SearchResult{
			Title:       e.DisplayTitle(),
			Description: makeSnippet(e.Description),
			SourceType:  SourceExperiences,
			URL:         "/experience/",
			Date:        &date,
			Tags:        e.TechnologyList(),
		})
	}
	return results
}

func skillResults(skills []*domain.Skill) []SearchResult {
	results := make([]SearchResult, 0, len(skills))
	for _, sk := range skills {
		results = append(results, SearchResult{
			Title:       sk.Name,
			Description: fmt.Sprintf("%s skill at %s level", sk.CategoryLabel(), sk.ProficiencyLabel()),
			SourceType:  SourceSkills,
			URL:         "/academic/",
			Tags:        []string{sk.CategoryLabel(), sk.ProficiencyLabel()},
		})
	}
	return results
}

func blogResults(posts []*domain.BlogPost) []SearchResult {
	results := make([]SearchResult, 0, len(posts))
	for _, b := range posts {
		results = append(results, SearchResult{
			Title:       b.Title,
			Description: makeSnippet(b.Summary()),
			SourceType:  SourceBlog,
			URL:         b.DetailURL(),
			Date:        b.PublishedAt,
			Tags:        b.TagList(),
			Image:       b.FeaturedImageURL,
		})
	}
	return results
}

func certificationResults(certs []*domain.Certification) []SearchResult {
	results := make([]SearchResult, 0, len(certs))
	for _, c := range certs {
		date := c.IssueDate
		results = append(results, SearchResult{
			Title:       c.Name,
			Description: makeSnippet("Issued by " + c.IssuingOrganization),
			SourceType:  SourceCertifications,
			URL:         "/certifications/",
			Date:        &date,
			Tags:        []string{c.IssuingOrganization},
		})
	}
	return results
}

func testimonialResults(testimonials []*domain.Testimonial) []SearchResult {
	results := make([]SearchResult, 0, len(testimonials))
	for _, t := range testimonials {
		date := t.CreatedAt
		var tags []string
		if t.Company != "" {
			tags = []string{t.Company}
		}
		results = append(results, SearchResult{
			Title:       t.DisplayName(),
			Description: makeSnippet(t.Content),
			SourceType:  SourceTestimonials,
			URL:         "/testimonials/",
			Date:        &date,
			Tags:        tags,
		})
	}
	return results
}

func faqResults(faqs []*domain.FAQ) []SearchResult {
	results := make([]SearchResult, 0, len(faqs))
	for _, f := range faqs {
		results = append(results, SearchResult{
			Title:       f.Question,
			Description: makeSnippet(f.Answer),
			SourceType:  SourceFAQ,
			URL:         "/faq/",
			Tags:        []string{f.CategoryLabel()},
		})
	}
	return results
}

func resourceResults(resources []*domain.Resource) []SearchResult {
	results := make([]SearchResult, 0, len(resources))
	for _, r := range resources {
		date := r.CreatedAt
		results = append(results, SearchResult{
			Title:       r.Title,
			Description: makeSnippet(r.Description),
			SourceType:  SourceResources,
			URL:         r.DetailURL(),
			Date:        &date,
			Tags:        []string{r.CategoryLabel(), r.FileTypeLabel()},
		})
	}
	return results
}

// makeSnippet collapses whitespace and truncates long text for the
// result description field.
func makeSnippet(content string) string {
	if content == "" {
		return ""
	}
	clean := strings.Join(strings.Fields(content), " ")
	if len(clean) <= snippetMaxChars {
		return clean
	}
	cut := snippetMaxChars - 3
	for cut > 0 && !utf8.RuneStart(clean[cut]) {
		cut--
	}
	return clean[:cut] + "..."
}
