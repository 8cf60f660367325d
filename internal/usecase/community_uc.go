package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type CommunityUC struct {
	Forum domain.ForumRepo
}

func (uc *CommunityUC) CreatePost(ctx context.Context, p *domain.ForumPost) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.IsActive = true
	return uc.Forum.SavePost(ctx, p)
}

func (uc *CommunityUC) GetPost(ctx context.Context, id uuid.UUID) (*domain.ForumPost, error) {
	return uc.Forum.FindPost(ctx, id)
}

func (uc *CommunityUC) ListPosts(ctx context.Context) ([]domain.ForumPost, error) {
	return uc.Forum.ListActivePosts(ctx)
}

// DeletePost deactivates rather than removes, so moderation can be undone
// at the store level.
func (uc *CommunityUC) DeletePost(ctx context.Context, id uuid.UUID) error {
	return uc.Forum.DeactivatePost(ctx, id)
}

func (uc *CommunityUC) AddComment(ctx context.Context, c *domain.Comment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := uc.Forum.FindPost(ctx, c.PostID); err != nil {
		return err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.IsActive = true
	return uc.Forum.SaveComment(ctx, c)
}

func (uc *CommunityUC) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return uc.Forum.ListComments(ctx, postID)
}

func (uc *CommunityUC) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return uc.Forum.DeactivateComment(ctx, id)
}
