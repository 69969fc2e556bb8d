package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()

	_, ok := h.Up()
	assert.False(t, ok)
	_, ok = h.Down()
	assert.False(t, ok)
	assert.Equal(t, -1, h.Index())
}

func TestHistoryCursorBounds(t *testing.T) {
	h := NewHistory()
	h.Push("one")
	h.Push("two")

	cmd, ok := h.Up()
	assert.True(t, ok)
	assert.Equal(t, "two", cmd)

	cmd, ok = h.Up()
	assert.True(t, ok)
	assert.Equal(t, "one", cmd)

	_, ok = h.Up()
	assert.False(t, ok)
	assert.Equal(t, 1, h.Index())

	cmd, ok = h.Down()
	assert.True(t, ok)
	assert.Equal(t, "two", cmd)

	cmd, ok = h.Down()
	assert.True(t, ok)
	assert.Equal(t, "", cmd)
	assert.Equal(t, -1, h.Index())

	_, ok = h.Down()
	assert.False(t, ok)
}

func TestDictionaryNames(t *testing.T) {
	d := NewDefaultDictionary([]Entry{{Name: "pwd"}, {Name: "ls"}}, nil)
	assert.Equal(t, []string{"clear", "date", "ls", "pwd"}, d.Names())

	_, ok := d.Lookup("cat")
	assert.False(t, ok)
}
