package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type ForumRepo struct{ db *gorm.DB }

func NewForumRepo(db *gorm.DB) *ForumRepo { return &ForumRepo{db: db} }

func (r *ForumRepo) SavePost(ctx context.Context, p *domain.ForumPost) error {
	return r.db.WithContext(ctx).Omit("Comments").Save(p).Error
}

func (r *ForumRepo) FindPost(ctx context.Context, id uuid.UUID) (*domain.ForumPost, error) {
	var p domain.ForumPost
	if err := r.db.WithContext(ctx).
		First(&p, "id = ? AND is_active = true", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ForumRepo) ListActivePosts(ctx context.Context) ([]domain.ForumPost, error) {
	var list []domain.ForumPost
	if err := r.db.WithContext(ctx).Where("is_active = true").
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ForumRepo) DeactivatePost(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&domain.ForumPost{}).
		Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ForumRepo) SaveComment(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ForumRepo) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	var list []domain.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND is_active = true", postID).
		Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ForumRepo) DeactivateComment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
