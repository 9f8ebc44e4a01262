package domain

import "time"

// BlogPost is a blog article. Unpublished posts are invisible to every
// public read path, including search.
type BlogPost struct {
	ID               int64
	Title            string
	Slug             string
	Content          string
	Excerpt          string
	Tags             string // comma-separated
	FeaturedImageURL string
	IsPublished      bool
	IsFeatured       bool
	PublishedAt      *time.Time
	ViewsCount       int
	CreatedAt        time.Time
}

// DetailURL returns the canonical detail page path for the post.
func (b *BlogPost) DetailURL() string {
	return "/blog/" + b.Slug + "/"
}

// Summary returns the excerpt, falling back to the content body.
func (b *BlogPost) Summary() string {
	if b.Excerpt != "" {
		return b.Excerpt
	}
	return b.Content
}

// TagList returns the tags field split into individual tags.
func (b *BlogPost) TagList() []string {
	return SplitList(b.Tags)
}
