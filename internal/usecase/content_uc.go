package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

// ContentUC owns the publish workflow for articles, videos, and exercise
// guides: slug generation on create, auto-filled publish timestamps on
// publish.
type ContentUC struct {
	Articles domain.ArticleRepo
	Videos   domain.VideoRepo
	Guides   domain.ExerciseGuideRepo
}

func (uc *ContentUC) CreateArticle(ctx context.Context, a *domain.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if strings.TrimSpace(a.Slug) == "" {
		slug, err := domain.UniqueSlug(ctx, a.Title, uc.Articles.SlugExists)
		if err != nil {
			return err
		}
		a.Slug = slug
	}
	if a.IsPublished {
		a.Publish(time.Now())
	}
	return uc.Articles.Save(ctx, a)
}

func (uc *ContentUC) PublishArticle(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := uc.Articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	a.Publish(time.Now())
	if err := uc.Articles.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ContentUC) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	if slug == "" {
		return nil, errors.New("empty slug")
	}
	return uc.Articles.FindBySlug(ctx, slug)
}

// PublishedArticles is the explicit published-only view; there is no
// implicit default scope on the repository.
func (uc *ContentUC) PublishedArticles(ctx context.Context) ([]domain.Article, error) {
	return uc.Articles.ListPublished(ctx)
}

func (uc *ContentUC) AllArticles(ctx context.Context) ([]domain.Article, error) {
	return uc.Articles.List(ctx)
}

func (uc *ContentUC) CreateVideo(ctx context.Context, v *domain.Video) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if strings.TrimSpace(v.Slug) == "" {
		slug, err := domain.UniqueSlug(ctx, v.Title, uc.Videos.SlugExists)
		if err != nil {
			return err
		}
		v.Slug = slug
	}
	if v.IsPublished {
		v.Publish(time.Now())
	}
	return uc.Videos.Save(ctx, v)
}

func (uc *ContentUC) PublishVideo(ctx context.Context, slug string) (*domain.Video, error) {
	v, err := uc.Videos.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	v.Publish(time.Now())
	if err := uc.Videos.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *ContentUC) GetVideo(ctx context.Context, slug string) (*domain.Video, error) {
	if slug == "" {
		return nil, errors.New("empty slug")
	}
	return uc.Videos.FindBySlug(ctx, slug)
}

func (uc *ContentUC) PublishedVideos(ctx context.Context) ([]domain.Video, error) {
	return uc.Videos.ListPublished(ctx)
}

func (uc *ContentUC) CreateGuide(ctx context.Context, g *domain.ExerciseGuide) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if strings.TrimSpace(g.Slug) == "" {
		slug, err := domain.UniqueSlug(ctx, g.Name, uc.Guides.SlugExists)
		if err != nil {
			return err
		}
		g.Slug = slug
	}
	return uc.Guides.Save(ctx, g)
}

func (uc *ContentUC) GetGuide(ctx context.Context, slug string) (*domain.ExerciseGuide, error) {
	if slug == "" {
		return nil, errors.New("empty slug")
	}
	return uc.Guides.FindBySlug(ctx, slug)
}

func (uc *ContentUC) ListGuides(ctx context.Context) ([]domain.ExerciseGuide, error) {
	return uc.Guides.List(ctx)
}
