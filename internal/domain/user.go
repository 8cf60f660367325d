package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"size:255;uniqueIndex"`
	Username    string    `gorm:"size:150"`
	FirstName   string    `gorm:"size:150"`
	LastName    string    `gorm:"size:150"`
	DateOfBirth *time.Time
	IsStaff     bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (u *User) Validate(now time.Time) error {
	errs := FieldErrors{}
	if strings.TrimSpace(u.Email) == "" {
		errs.Add("email", "email cannot be blank")
	}
	if u.DateOfBirth != nil && !u.DateOfBirth.Before(now) {
		errs.Add("date_of_birth", "date of birth must be in the past")
	}
	return errs.OrNil()
}
