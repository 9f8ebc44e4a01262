package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/folio-cms/folio/internal/config"
	"github.com/folio-cms/folio/internal/domain"
	"github.com/folio-cms/folio/internal/repository"
	"github.com/folio-cms/folio/internal/service"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample content into the database",
		Long:  "Load sample portfolio content for local development and demos",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedTags(ctx, repository.NewTagRepository(pool)); err != nil {
		return err
	}
	if err := seedProjects(ctx, repository.NewProjectRepository(pool)); err != nil {
		return err
	}
	if err := seedExperiences(ctx, repository.NewExperienceRepository(pool)); err != nil {
		return err
	}
	if err := seedSkills(ctx, repository.NewSkillRepository(pool)); err != nil {
		return err
	}
	if err := seedBlogPosts(ctx, repository.NewBlogPostRepository(pool)); err != nil {
		return err
	}
	if err := seedCertifications(ctx, repository.NewCertificationRepository(pool)); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, repository.NewTestimonialRepository(pool)); err != nil {
		return err
	}
	if err := seedFAQs(ctx, repository.NewFAQRepository(pool)); err != nil {
		return err
	}
	if err := seedResources(ctx, repository.NewResourceRepository(pool)); err != nil {
		return err
	}
	if err := seedSearchLog(ctx, repository.NewSearchQueryRepository(pool)); err != nil {
		return err
	}

	tagRepo := repository.NewTagRepository(pool)
	tagCloud := service.NewTagCloudService(
		tagRepo,
		repository.NewProjectRepository(pool),
		repository.NewBlogPostRepository(pool),
		nil,
	)
	if err := tagCloud.RecountUsage(ctx); err != nil {
		return fmt.Errorf("failed to recount tag usage: %w", err)
	}

	log.Println("seed: done")
	return nil
}

func seedTags(ctx context.Context, repo *repository.TagRepository) error {
	tags := []*domain.Tag{
		{Name: "Python", Color: "#3776ab", IsFeatured: true},
		{Name: "Django", Color: "#092e20", IsFeatured: true},
		{Name: "Go", Color: "#00add8", IsFeatured: true},
		{Name: "PostgreSQL", Color: "#336791", IsFeatured: true},
		{Name: "Docker", Color: "#2496ed"},
		{Name: "React", Color: "#61dafb"},
		{Name: "Bootstrap", Color: "#7952b3"},
		{Name: "Redis", Color: "#dc382d"},
	}
	for _, t := range tags {
		if err := repo.Create(ctx, t); err != nil {
			if errors.Is(err, domain.ErrTagAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to seed tag %q: %w", t.Name, err)
		}
	}
	log.Printf("seed: %d tags", len(tags))
	return nil
}

func seedProjects(ctx context.Context, repo *repository.ProjectRepository) error {
	projects := []*domain.Project{
		{
			Title:               "Portfolio CMS",
			Description:         "Personal portfolio site with a universal search across all content types.",
			DetailedDescription: "Full content management for projects, blog posts, skills and downloadable resources, with search analytics and a weighted tag cloud.",
			Technologies:        "Python, Django, PostgreSQL, Bootstrap",
			Status:              domain.ProjectStatusCompleted,
			Type:                domain.ProjectTypeWeb,
			StartDate:           date(2024, 2, 1),
			IsFeatured:          true,
			Client:              "Self",
			ChallengesFaced:     "Keeping multi-source search fast without a dedicated search engine.",
			LessonsLearned:      "ILIKE over a handful of indexed columns goes a long way.",
		},
		{
			Title:        "Inventory API",
			Description:  "REST API for warehouse inventory tracking with barcode lookups.",
			Technologies: "Go, PostgreSQL, Docker, Redis",
			Status:       domain.ProjectStatusCompleted,
			Type:         domain.ProjectTypeAPI,
			StartDate:    date(2023, 6, 1),
			Client:       "Acme Logistics",
		},
		{
			Title:        "Habit Tracker",
			Description:  "Mobile-first habit tracking app with streak statistics.",
			Technologies: "React, Django, PostgreSQL",
			Status:       domain.ProjectStatusInProgress,
			Type:         domain.ProjectTypeMobile,
			StartDate:    date(2025, 1, 10),
		},
	}
	for _, p := range projects {
		if err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", p.Title, err)
		}
	}
	log.Printf("seed: %d projects", len(projects))
	return nil
}

func seedExperiences(ctx context.Context, repo *repository.ExperienceRepository) error {
	experiences := []*domain.Experience{
		{
			Title:        "Backend Developer",
			Company:      "Northwind Software",
			Location:     "Remote",
			JobType:      domain.JobTypeFullTime,
			StartDate:    date(2022, 3, 1),
			IsCurrent:    true,
			Description:  "Building and operating Go services behind a public REST API.",
			Achievements: "Cut p99 search latency from 800ms to 120ms.",
			Technologies: "Go, PostgreSQL, Redis, Docker",
		},
		{
			Title:        "Web Developer",
			Company:      "Freelance",
			JobType:      domain.JobTypeFreelance,
			StartDate:    date(2020, 6, 1),
			EndDate:      datePtr(2022, 2, 28),
			Description:  "Django sites and small business tooling for a handful of clients.",
			Technologies: "Python, Django, Bootstrap",
		},
	}
	for _, e := range experiences {
		if err := repo.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed experience %q: %w", e.Title, err)
		}
	}
	log.Printf("seed: %d experiences", len(experiences))
	return nil
}

func seedSkills(ctx context.Context, repo *repository.SkillRepository) error {
	skills := []*domain.Skill{
		{Name: "Python", Category: domain.SkillCategoryTechnical, Proficiency: domain.SkillProficiencyExpert, YearsOfExperience: 7, IsFeatured: true},
		{Name: "Django", Category: domain.SkillCategoryTechnical, Proficiency: domain.SkillProficiencyAdvanced, YearsOfExperience: 5, IsFeatured: true},
		{Name: "Go", Category: domain.SkillCategoryTechnical, Proficiency: domain.SkillProficiencyAdvanced, YearsOfExperience: 3},
		{Name: "PostgreSQL", Category: domain.SkillCategoryTool, Proficiency: domain.SkillProficiencyAdvanced, YearsOfExperience: 6},
		{Name: "Spanish", Category: domain.SkillCategoryLanguage, Proficiency: domain.SkillProficiencyIntermediate, YearsOfExperience: 4, CertificationLevel: "DELE B2"},
		{Name: "Technical Writing", Category: domain.SkillCategorySoft, Proficiency: domain.SkillProficiencyAdvanced, YearsOfExperience: 5},
	}
	for _, s := range skills {
		if err := repo.Create(ctx, s); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", s.Name, err)
		}
	}
	log.Printf("seed: %d skills", len(skills))
	return nil
}

func seedBlogPosts(ctx context.Context, repo *repository.BlogPostRepository) error {
	posts := []*domain.BlogPost{
		{
			Title:       "Searching Everything at Once",
			Slug:        "searching-everything-at-once",
			Content:     "How this site fans a single query out across eight content types and merges the results without a search engine.",
			Excerpt:     "Fan-out search over plain SQL.",
			Tags:        "Django, PostgreSQL, Search",
			IsPublished: true,
			IsFeatured:  true,
			PublishedAt: datePtr(2025, 3, 12),
		},
		{
			Title:       "Tag Clouds Without Joins",
			Slug:        "tag-clouds-without-joins",
			Content:     "Counting tag membership across comma-separated fields and caching the weighted result.",
			Tags:        "Django, Redis",
			IsPublished: true,
			PublishedAt: datePtr(2025, 5, 2),
		},
		{
			Title:   "Draft: Benchmarking ILIKE",
			Slug:    "benchmarking-ilike",
			Content: "Unfinished notes on trigram indexes.",
			Tags:    "PostgreSQL",
		},
	}
	for _, p := range posts {
		if err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed blog post %q: %w", p.Slug, err)
		}
	}
	log.Printf("seed: %d blog posts", len(posts))
	return nil
}

func seedCertifications(ctx context.Context, repo *repository.CertificationRepository) error {
	certs := []*domain.Certification{
		{
			Name:                "AWS Certified Solutions Architect",
			IssuingOrganization: "Amazon Web Services",
			IssueDate:           date(2023, 9, 15),
			ExpirationDate:      datePtr(2026, 9, 15),
			CredentialID:        "AWS-SAA-001122",
		},
		{
			Name:                "Professional Scrum Master I",
			IssuingOrganization: "Scrum.org",
			IssueDate:           date(2022, 4, 2),
			CredentialID:        "PSM-445566",
		},
	}
	for _, c := range certs {
		if err := repo.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed certification %q: %w", c.Name, err)
		}
	}
	log.Printf("seed: %d certifications", len(certs))
	return nil
}

func seedTestimonials(ctx context.Context, repo *repository.TestimonialRepository) error {
	testimonials := []*domain.Testimonial{
		{
			Name:       "Maria Lopez",
			Company:    "Acme Logistics",
			Position:   "CTO",
			Content:    "Delivered the inventory API ahead of schedule and it has run untouched for a year.",
			Rating:     5,
			IsApproved: true,
			IsFeatured: true,
		},
		{
			Name:        "Sam Carter",
			Content:     "Great communicator, clean code, honest estimates.",
			Rating:      5,
			IsAnonymous: true,
			IsApproved:  true,
		},
		{
			Name:    "Pending Reviewer",
			Content: "Awaiting moderation, should not appear in search.",
			Rating:  4,
		},
	}
	for _, tm := range testimonials {
		if err := repo.Create(ctx, tm); err != nil {
			return fmt.Errorf("failed to seed testimonial from %q: %w", tm.Name, err)
		}
	}
	log.Printf("seed: %d testimonials", len(testimonials))
	return nil
}

func seedFAQs(ctx context.Context, repo *repository.FAQRepository) error {
	faqs := []*domain.FAQ{
		{
			Question:  "Do you take on freelance projects?",
			Answer:    "Yes, for scopes under three months. Use the contact form with a short brief.",
			Category:  domain.FAQCategoryServices,
			SortOrder: 1,
			IsActive:  true,
		},
		{
			Question:  "What is your typical stack?",
			Answer:    "Go or Django on the backend, PostgreSQL for storage, Redis when caching earns its keep.",
			Category:  domain.FAQCategoryTechnical,
			SortOrder: 2,
			IsActive:  true,
		},
		{
			Question: "Retired question",
			Answer:   "Kept for history, hidden from the site.",
			Category: domain.FAQCategoryOther,
		},
	}
	for _, f := range faqs {
		if err := repo.Create(ctx, f); err != nil {
			return fmt.Errorf("failed to seed faq %q: %w", f.Question, err)
		}
	}
	log.Printf("seed: %d faqs", len(faqs))
	return nil
}

func seedResources(ctx context.Context, repo *repository.ResourceRepository) error {
	resources := []*domain.Resource{
		{
			Title:       "Django Project Checklist",
			Description: "Pre-launch checklist covering settings, security headers and backups.",
			Category:    domain.ResourceCategoryGuide,
			FileType:    domain.ResourceFileTypePDF,
			FileURL:     "/files/django-checklist.pdf",
			IsPublic:    true,
		},
		{
			Title:       "Invoice Template",
			Description: "Freelance invoice template with hourly and fixed-bid variants.",
			Category:    domain.ResourceCategoryTemplate,
			FileType:    domain.ResourceFileTypeDoc,
			FileURL:     "/files/invoice-template.docx",
			IsPublic:    true,
		},
		{
			Title:       "Client Notes",
			Description: "Private working notes.",
			Category:    domain.ResourceCategoryOther,
			FileType:    domain.ResourceFileTypeOther,
			FileURL:     "/files/client-notes.zip",
		},
	}
	for _, res := range resources {
		if err := repo.Create(ctx, res); err != nil {
			return fmt.Errorf("failed to seed resource %q: %w", res.Title, err)
		}
	}
	log.Printf("seed: %d resources", len(resources))
	return nil
}

func seedSearchLog(ctx context.Context, repo *repository.SearchQueryRepository) error {
	queries := []struct {
		query   string
		results int
		times   int
	}{
		{"django", 5, 6},
		{"python", 4, 4},
		{"docker", 2, 3},
		{"kubernetes", 0, 2},
		{"postgres", 3, 1},
	}
	total := 0
	for _, q := range queries {
		for i := 0; i < q.times; i++ {
			entry := &domain.SearchQuery{
				Query:        q.query,
				ResultsCount: q.results,
				IPAddress:    "127.0.0.1",
				UserAgent:    "seed",
			}
			if err := repo.Create(ctx, entry); err != nil {
				return fmt.Errorf("failed to seed search log: %w", err)
			}
			total++
		}
	}
	log.Printf("seed: %d search log entries", total)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
