package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type ArticleRepo struct{ db *gorm.DB }

func NewArticleRepo(db *gorm.DB) *ArticleRepo { return &ArticleRepo{db: db} }

func (r *ArticleRepo) Save(ctx context.Context, a *domain.Article) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ArticleRepo) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	if err := r.db.WithContext(ctx).First(&a, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	var list []domain.Article
	if err := r.db.WithContext(ctx).
		Order("published_at desc NULLS LAST, created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ArticleRepo) ListPublished(ctx context.Context) ([]domain.Article, error) {
	var list []domain.Article
	if err := r.db.WithContext(ctx).Where("is_published = true").
		Order("published_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Article{}, "id = ?", id).Error
}

type VideoRepo struct{ db *gorm.DB }

func NewVideoRepo(db *gorm.DB) *VideoRepo { return &VideoRepo{db: db} }

func (r *VideoRepo) Save(ctx context.Context, v *domain.Video) error {
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *VideoRepo) FindBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.WithContext(ctx).First(&v, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Video{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VideoRepo) List(ctx context.Context) ([]domain.Video, error) {
	var list []domain.Video
	if err := r.db.WithContext(ctx).
		Order("published_at desc NULLS LAST, created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *VideoRepo) ListPublished(ctx context.Context) ([]domain.Video, error) {
	var list []domain.Video
	if err := r.db.WithContext(ctx).Where("is_published = true").
		Order("published_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Video{}, "id = ?", id).Error
}

type ExerciseGuideRepo struct{ db *gorm.DB }

func NewExerciseGuideRepo(db *gorm.DB) *ExerciseGuideRepo { return &ExerciseGuideRepo{db: db} }

func (r *ExerciseGuideRepo) Save(ctx context.Context, g *domain.ExerciseGuide) error {
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ExerciseGuideRepo) FindBySlug(ctx context.Context, slug string) (*domain.ExerciseGuide, error) {
	var g domain.ExerciseGuide
	if err := r.db.WithContext(ctx).First(&g, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *ExerciseGuideRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ExerciseGuide{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ExerciseGuideRepo) List(ctx context.Context) ([]domain.ExerciseGuide, error) {
	var list []domain.ExerciseGuide
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ExerciseGuideRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ExerciseGuide{}, "id = ?", id).Error
}
