package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ForumPost is a user discussion thread. Deactivation is the soft-delete
// path; listings only ever surface active rows.
type ForumPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Title     string    `gorm:"size:255"`
	Content   string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *ForumPost) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(p.Title) == "" {
		errs.Add("title", "title cannot be blank")
	}
	if strings.TrimSpace(p.Content) == "" {
		errs.Add("content", "content cannot be blank")
	}
	return errs.OrNil()
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	PostID    uuid.UUID `gorm:"type:uuid;index"`
	Content   string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (c *Comment) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(c.Content) == "" {
		errs.Add("content", "content cannot be blank")
	}
	return errs.OrNil()
}
