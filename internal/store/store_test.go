package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID("prod")
	assert.True(t, strings.HasPrefix(id, "prod_"))
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("cat")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMemoryInsertionOrder(t *testing.T) {
	m := NewMemory[string]()
	m.Put("a", "first")
	m.Put("b", "second")
	m.Put("c", "third")

	assert.Equal(t, []string{"first", "second", "third"}, m.List())
}

func TestMemoryReplaceKeepsPosition(t *testing.T) {
	m := NewMemory[string]()
	m.Put("a", "first")
	m.Put("b", "second")
	m.Put("a", "updated")

	assert.Equal(t, []string{"updated", "second"}, m.List())
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory[string]()
	m.Put("a", "first")
	m.Put("b", "second")

	assert.True(t, m.Delete("a"))
	assert.Equal(t, []string{"second"}, m.List())

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.Delete("a"))
}
