package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticlePublishFillsTimestamp(t *testing.T) {
	now := time.Now()
	a := Article{Title: "Cutting 101", Content: "..."}
	a.Publish(now)

	assert.True(t, a.IsPublished)
	assert.Equal(t, StatusPublished, a.Status)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, now, *a.PublishedAt)
}

func TestArticlePublishKeepsExistingTimestamp(t *testing.T) {
	orig := time.Now().Add(-24 * time.Hour)
	a := Article{PublishedAt: &orig}
	a.Publish(time.Now())
	assert.Equal(t, orig, *a.PublishedAt)
}

func TestVideoValidateRequiresURLOrEmbed(t *testing.T) {
	v := Video{Title: "Deadlift form"}
	fe, ok := AsFieldErrors(v.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "url")

	v.EmbedCode = "<iframe></iframe>"
	assert.NoError(t, v.Validate())
}

func TestExerciseGuideValidate(t *testing.T) {
	g := ExerciseGuide{Name: "Squat", Steps: "1. stand 2. squat", Difficulty: DifficultyBeginner}
	assert.NoError(t, g.Validate())

	g.Steps = "  "
	g.Difficulty = Difficulty("expert")
	fe, ok := AsFieldErrors(g.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "steps")
	assert.Contains(t, fe, "difficulty")
}
