package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func TestCreateArticleGeneratesUniqueSlug(t *testing.T) {
	articles := newFakeArticleRepo()
	uc := &ContentUC{Articles: articles}

	first := &domain.Article{Title: "Bulking Basics", Content: "eat more"}
	require.NoError(t, uc.CreateArticle(context.Background(), first))
	second := &domain.Article{Title: "Bulking Basics", Content: "eat even more"}
	require.NoError(t, uc.CreateArticle(context.Background(), second))

	assert.Equal(t, "bulking-basics", first.Slug)
	assert.Equal(t, "bulking-basics-1", second.Slug)
}

func TestPublishArticleFillsTimestamp(t *testing.T) {
	articles := newFakeArticleRepo()
	uc := &ContentUC{Articles: articles}

	a := &domain.Article{Title: "Rest Days", Content: "take them"}
	require.NoError(t, uc.CreateArticle(context.Background(), a))
	assert.False(t, a.IsPublished)

	published, err := uc.PublishArticle(context.Background(), a.Slug)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	assert.Equal(t, domain.StatusPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)
}

func TestPublishedArticlesFilters(t *testing.T) {
	articles := newFakeArticleRepo()
	uc := &ContentUC{Articles: articles}

	draft := &domain.Article{Title: "Draft", Content: "wip"}
	require.NoError(t, uc.CreateArticle(context.Background(), draft))
	live := &domain.Article{Title: "Live", Content: "done", IsPublished: true}
	require.NoError(t, uc.CreateArticle(context.Background(), live))

	list, err := uc.PublishedArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "live", list[0].Slug)
}

func TestCreateArticleInvalid(t *testing.T) {
	uc := &ContentUC{Articles: newFakeArticleRepo()}

	a := &domain.Article{Title: "  ", Content: ""}
	fe, ok := domain.AsFieldErrors(uc.CreateArticle(context.Background(), a))
	require.True(t, ok)
	assert.Contains(t, fe, "title")
	assert.Contains(t, fe, "content")
}
