package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KFCxMcDonalds/collections"
)

func TestRepository(t *testing.T) {
	repo := collections.NewRepository[string]()
	repo.Add("Hello")
	repo.Add("World")
	repo.Add("Hello")

	assert.Equal(t, []string{"Hello", "World", "Hello"}, repo.GetAll())

	assert.True(t, repo.Remove("Hello"))
	assert.Equal(t, []string{"World", "Hello"}, repo.GetAll())

	assert.False(t, repo.Remove("missing"))
	assert.Equal(t, 2, repo.Len())

	snap := repo.GetAll()
	repo.Add("again")
	assert.Equal(t, []string{"World", "Hello"}, snap)
}
