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
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"toggle", km.Toggle, []string{"enter", " "}},
		{"earlier", km.Earlier, []string{"left", "h"}},
		{"later", km.Later, []string{"right", "l"}},
		{"unit", km.Unit, []string{"tab"}},
		{"now", km.Now, []string{"n"}},
		{"go to", km.GoTo, []string{"g"}},
		{"save", km.Save, []string{"s"}},
		{"delete", km.Delete, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
}

func TestKeyMap_ViewHelp(t *testing.T) {
	km := DefaultKeyMap()

	for name, help := range map[string][]key.Binding{
		"menu":     km.MenuHelp(),
		"history":  km.HistoryHelp(),
		"settings": km.SettingsHelp(),
	} {
		require.NotEmpty(t, help, name)
		for _, b := range help {
			assert.NotEmpty(t, b.Help().Key, name)
		}
	}
	assert.Equal(t, km.Quit.Keys(), km.MenuHelp()[4].Keys())
	assert.Equal(t, km.Toggle.Keys(), km.SettingsHelp()[2].Keys())
}

func TestKeyMap_ChartHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ChartHelp()
	require.NotEmpty(t, help)
	assert.Equal(t, km.Earlier.Keys(), help[0].Keys())
	assert.Equal(t, km.Back.Keys(), help[len(help)-1].Keys())
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()
	require.Len(t, groups, 4)
	for _, group := range groups {
		assert.NotEmpty(t, group)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("h", km.Earlier))
	assert.True(t, Matches("left", km.Earlier))
	assert.False(t, Matches("l", km.Earlier))
	assert.True(t, Matches("tab", km.Unit))
	assert.True(t, Matches(" ", km.Toggle))
	assert.True(t, Matches("enter", km.Toggle))
	assert.False(t, Matches("", km.Quit))
	assert.False(t, Matches("ctrl+c", km.Back))
}
