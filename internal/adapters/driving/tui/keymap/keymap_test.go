package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"next", km.NextField, []string{"tab"}},
		{"prev", km.PrevField, []string{"shift+tab"}},
		{"submit", km.Submit, []string{"ctrl+s"}},
		{"edit", km.Edit, []string{"e"}},
		{"delete", km.Delete, []string{"d"}},
		{"dismiss", km.Dismiss, []string{"enter", "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.FormHelp(), 3)
	assert.Len(t, km.TableHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.True(t, Matches("ctrl+s", km.Submit))
}
