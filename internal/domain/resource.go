package domain

import (
	"fmt"
	"time"
)

// ResourceCategory classifies downloadable resources.
type ResourceCategory string

const (
	ResourceCategoryTemplate ResourceCategory = "template"
	ResourceCategoryGuide    ResourceCategory = "guide"
	ResourceCategoryTool     ResourceCategory = "tool"
	ResourceCategoryDataset  ResourceCategory = "dataset"
	ResourceCategoryOther    ResourceCategory = "other"
)

// ResourceFileType is the file format of a resource.
type ResourceFileType string

const (
	ResourceFileTypePDF   ResourceFileType = "pdf"
	ResourceFileTypeZip   ResourceFileType = "zip"
	ResourceFileTypeDoc   ResourceFileType = "doc"
	ResourceFileTypeImage ResourceFileType = "image"
	ResourceFileTypeOther ResourceFileType = "other"
)

// Resource is a downloadable asset. Only public resources are visible
// to read paths, including search.
type Resource struct {
	ID            int64
	Title         string
	Description   string
	Category      ResourceCategory
	FileType      ResourceFileType
	FileURL       string
	FileSize      int64
	DownloadCount int
	IsPublic      bool
	CreatedAt     time.Time
}

// DetailURL returns the canonical detail page path for the resource.
func (r *Resource) DetailURL() string {
	return fmt.Sprintf("/resources/%d/", r.ID)
}

// CategoryLabel returns the human-readable category name.
func (r *Resource) CategoryLabel() string {
	switch r.Category {
	case ResourceCategoryTemplate:
		return "Template"
	case ResourceCategoryGuide:
		return "Guide"
	case ResourceCategoryTool:
		return "Tool"
	case ResourceCategoryDataset:
		return "Dataset"
	default:
		return "Other"
	}
}

// FileTypeLabel returns the human-readable file type.
func (r *Resource) FileTypeLabel() string {
	switch r.FileType {
	case ResourceFileTypePDF:
		return "PDF"
	case ResourceFileTypeZip:
		return "Archive"
	case ResourceFileTypeDoc:
		return "Document"
	case ResourceFileTypeImage:
		return "Image"
	default:
		return "File"
	}
}
