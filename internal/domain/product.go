package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:255;uniqueIndex"`
	Description string    `gorm:"type:text"`
}

func (c *Category) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(c.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	return errs.OrNil()
}

// Product is an item available for purchase. Stock is only ever mutated
// through the repository's atomic adjust so concurrent checkouts cannot
// lose updates.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Slug        string          `gorm:"uniqueIndex;size:255"`
	Name        string          `gorm:"size:255"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	ImageURL    string          `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if p.Price.IsNegative() {
		errs.Add("price", "price must be zero or positive")
	}
	if p.Stock < 0 {
		errs.Add("stock", "stock must be zero or positive")
	}
	return errs.OrNil()
}

func (p *Product) InStock() bool { return p.Stock > 0 }

type ProductFilter struct {
	Category string
	Query    string
	Sort     string
	Page     int
	PageSize int
}
