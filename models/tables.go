package models

import (
	"time"

	"gorm.io/datatypes"
)

type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
)

type PostType string

const (
	PostTypeBlog    PostType = "blog"
	PostTypeEvent   PostType = "event"
	PostTypeVideo   PostType = "video"
	PostTypePodcast PostType = "podcast"
	PostTypeService PostType = "service"
)

type User struct {
	ID           int    `gorm:"primary_key;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
}

// ContentPage is a structured marketing/content page keyed by a
// normalized multi-segment slug. The body lives in Data as one JSON
// document; only indexed metadata is stored as columns.
type ContentPage struct {
	ID             uint           `gorm:"primary_key" json:"id"`
	Slug           string         `gorm:"unique;not null;index" json:"slug"`
	Category       string         `gorm:"not null;index" json:"category"`
	Title          string         `gorm:"not null" json:"title"`
	SeoTitle       *string        `json:"seo_title,omitempty"`
	SeoDescription *string        `json:"seo_description,omitempty"`
	Data           datatypes.JSON `gorm:"not null" json:"data"`
	Status         PageStatus     `gorm:"not null;default:draft;index" json:"status"`
	PublishedAt    *time.Time     `json:"published_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Published reports public visibility. Both conditions are checked on
// purpose: a page can carry a historical timestamp while sitting in
// draft after an unpublish via edit.
func (p *ContentPage) Published() bool {
	return p.Status == StatusPublished && p.PublishedAt != nil
}

type Post struct {
	ID             uint       `gorm:"primary_key" json:"id"`
	Slug           string     `gorm:"not null;index:idx_post_identity,unique" json:"slug"`
	Type           PostType   `gorm:"not null;index:idx_post_identity,unique" json:"type"`
	Locale         string     `gorm:"not null;index:idx_post_identity,unique" json:"locale"`
	Title          string     `gorm:"not null" json:"title"`
	Excerpt        string     `gorm:"type:text" json:"excerpt"`
	Content        string     `gorm:"type:text" json:"content"` // markdown
	CategoryID     *uint      `gorm:"index" json:"category_id,omitempty"`
	FeaturedImage  string     `json:"featured_image"`
	SeoTitle       *string    `json:"seo_title,omitempty"`
	SeoDescription *string    `json:"seo_description,omitempty"`
	OgImage        *string    `json:"og_image,omitempty"`
	Status         PageStatus `gorm:"not null;default:draft;index" json:"status"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Category struct {
	ID     uint     `gorm:"primary_key" json:"id"`
	Slug   string   `gorm:"unique;not null;index" json:"slug"`
	Name   string   `gorm:"not null" json:"name"`
	Type   PostType `gorm:"not null;index" json:"type"`
	Locale string   `gorm:"not null;index" json:"locale"`
}

type Hero struct {
	ID              uint   `gorm:"primary_key" json:"id"`
	Locale          string `gorm:"not null;index" json:"locale"`
	Title           string `gorm:"not null" json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `gorm:"type:text" json:"description"`
	ButtonText      string `json:"button_text"`
	ButtonURL       string `json:"button_url"`
	BackgroundImage string `json:"background_image"`
}

type FAQ struct {
	ID       uint   `gorm:"primary_key" json:"id"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Order    int    `gorm:"not null;default:0;index" json:"order"`
	Locale   string `gorm:"not null;index" json:"locale"`
}

type ApplicationStatus string

const (
	ApplicationNew      ApplicationStatus = "new"
	ApplicationInReview ApplicationStatus = "in_review"
	ApplicationClosed   ApplicationStatus = "closed"
)

// Application is a public form submission handled through the admin
// review workflow. Submissions are never cached or rendered publicly.
type Application struct {
	ID        uint              `gorm:"primary_key" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"not null;index" json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Subject   string            `gorm:"index" json:"subject,omitempty"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Status    ApplicationStatus `gorm:"not null;default:new;index" json:"status"`
	AdminNote string            `gorm:"type:text" json:"admin_note,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Setting struct {
	ID              uint           `gorm:"primary_key" json:"id"`
	Locale          string         `gorm:"unique;not null" json:"locale"`
	SiteName        string         `json:"site_name"`
	SiteDescription string         `gorm:"type:text" json:"site_description"`
	ContactEmail    string         `json:"contact_email"`
	ContactPhone    string         `json:"contact_phone"`
	ContactAddress  string         `json:"contact_address"`
	Social          datatypes.JSON `json:"social"`
}
