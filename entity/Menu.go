package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	MenuTypeWeb       = "web"
	MenuTypePrintable = "printable"
)

const (
	PublishStatusDraft       = "draft"
	PublishStatusPublished   = "published"
	PublishStatusUnpublished = "unpublished"
)

type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Type        string `json:"type"` // web | printable
	IsActive    bool   `json:"isActive"`

	// display position among menus in the admin list
	DisplayOrder int `json:"displayOrder"`

	ImageURL   string  `json:"imageUrl"`
	ImageRatio float64 `json:"imageRatio"`

	PublishStatus string     `json:"publishStatus"` // draft | published | unpublished
	PublishedURL  string     `json:"publishedUrl"`
	PublishedAt   *time.Time `json:"publishedAt"`
	LastPublished *time.Time `json:"lastPublished"`

	// snapshot version, bumped once per successful generation
	Version int `json:"version"`

	Categories []Category `gorm:"many2many:menu_categories;" json:"-"`
}

// IsStale reports whether content changed after the last publish.
// Derived on every read, never stored.
func (m *Menu) IsStale() bool {
	if m.PublishStatus != PublishStatusPublished || m.LastPublished == nil {
		return false
	}
	return m.UpdatedAt.After(*m.LastPublished)
}
