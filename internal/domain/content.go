package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
)

// Article is a blog post with a publish workflow. Publishing always
// auto-fills PublishedAt when it is missing; a published article is never
// rejected for lacking a timestamp.
type Article struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;size:255"`
	Title       string    `gorm:"size:255"`
	AuthorID    *uuid.UUID `gorm:"type:uuid;index"`
	Excerpt     string     `gorm:"type:text"`
	Content     string     `gorm:"type:text"`
	Status      PublishStatus `gorm:"type:varchar(10);index;default:draft"`
	IsPublished bool          `gorm:"not null;default:false"`
	PublishedAt *time.Time    `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Article) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(a.Title) == "" {
		errs.Add("title", "title cannot be blank")
	}
	if strings.TrimSpace(a.Content) == "" {
		errs.Add("content", "content cannot be blank")
	}
	return errs.OrNil()
}

func (a *Article) Publish(now time.Time) {
	a.IsPublished = true
	a.Status = StatusPublished
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}

// Video is a tutorial referenced by URL or embed code (at least one
// required).
type Video struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;size:255"`
	Title       string    `gorm:"size:255"`
	URL         string    `gorm:"size:500"`
	EmbedCode   string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Thumbnail   string    `gorm:"size:500"`
	AuthorID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      PublishStatus `gorm:"type:varchar(10);index;default:draft"`
	IsPublished bool          `gorm:"not null;default:false"`
	PublishedAt *time.Time    `gorm:"index"`
	DurationSec int           `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (v *Video) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(v.Title) == "" {
		errs.Add("title", "title cannot be blank")
	}
	if strings.TrimSpace(v.URL) == "" && strings.TrimSpace(v.EmbedCode) == "" {
		errs.Add("url", "provide either a URL or embed code")
	}
	return errs.OrNil()
}

func (v *Video) Publish(now time.Time) {
	v.IsPublished = true
	v.Status = StatusPublished
	if v.PublishedAt == nil {
		v.PublishedAt = &now
	}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ExerciseGuide is a step-by-step exercise walkthrough.
type ExerciseGuide struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug              string    `gorm:"uniqueIndex;size:255"`
	Name              string    `gorm:"size:255"`
	Excerpt           string    `gorm:"type:text"`
	Steps             string    `gorm:"type:text"`
	Difficulty        Difficulty `gorm:"type:varchar(12);index;default:beginner"`
	PrimaryMuscle     string     `gorm:"size:100"`
	EquipmentRequired string     `gorm:"size:255"`
	ImageURL          string     `gorm:"size:500"`
	VideoEmbed        string     `gorm:"type:text"`
	AuthorID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (g *ExerciseGuide) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(g.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if strings.TrimSpace(g.Steps) == "" {
		errs.Add("steps", "exercise steps cannot be empty")
	}
	if !g.Difficulty.Valid() {
		errs.Add("difficulty", "unknown difficulty level")
	}
	return errs.OrNil()
}
