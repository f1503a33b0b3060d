package saved

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByDifficulty(t *testing.T) {
	items := []Item{
		{ID: "p1", Difficulty: "beginner"},
		{ID: "p2", Difficulty: "advanced"},
	}
	got, err := Filter(items, `difficulty == "advanced"`)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestFilterTagMembership(t *testing.T) {
	items := []Item{
		{ID: "p1", Tags: []string{"nlp", "transformers"}},
		{ID: "p2", Tags: []string{"vision"}},
		{ID: "p3"},
	}
	got, err := Filter(items, `"nlp" in tags`)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestFilterEmptyExpressionKeepsAll(t *testing.T) {
	items := []Item{{ID: "p1"}, {ID: "p2"}}
	got, err := Filter(items, "  ")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterRejectsBadExpression(t *testing.T) {
	_, err := Filter([]Item{{ID: "p1"}}, `difficulty ==`)
	assert.Error(t, err)
}
