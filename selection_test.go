package igfd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The end-to-end open-file scenario: configure, open, poll to
// completion, extract.
func TestOpenFileScenario(t *testing.T) {
	f, dlg := newFakeDialog()
	err := dlg.OpenFile().
		Title("Select a File").
		Filters(".txt,.md").
		Path(".").
		MultiSelect(0).
		Open("choose_file")
	require.NoError(t, err)

	// engine runs the dialog; user confirms two files
	f.visible = false
	f.ok = true
	f.selection = []Entry{
		{Name: "notes.txt", Path: "/home/me/notes.txt"},
		{Name: "readme.md", Path: "/home/me/readme.md"},
	}

	assert.False(t, dlg.Display("choose_file", Size{W: 400, H: 300}, Size{W: 800, H: 600}))
	require.True(t, dlg.IsOk())

	sel := dlg.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, 2, sel.Count())
	assert.Equal(t, []string{"/home/me/notes.txt", "/home/me/readme.md"}, sel.Files())
	assert.Equal(t, 1, f.selDestroyed, "selection table released exactly once")

	// the sequence is restartable and survives Close
	dlg.Close()
	assert.Equal(t, sel.Files(), sel.Files())
	entries := sel.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "notes.txt", entries[0].Name)
}

func TestSelectionNilWhenCancelled(t *testing.T) {
	f, dlg := newFakeDialog()
	f.ok = false
	f.selection = []Entry{{Name: "ghost", Path: "/ghost"}}

	assert.Nil(t, dlg.Selection())
	assert.Equal(t, 0, f.selDestroyed, "no table fetched for a cancelled dialog")
}

func TestSelectionEmpty(t *testing.T) {
	f, dlg := newFakeDialog()
	f.ok = true

	sel := dlg.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, 0, sel.Count())
	assert.Empty(t, sel.Files())
	assert.Equal(t, 1, f.selDestroyed)
}

func TestSelectionUnlimitedCount(t *testing.T) {
	f, dlg := newFakeDialog()
	require.NoError(t, dlg.OpenFile().MultiSelect(0).Open("k"))

	f.ok = true
	for i := 0; i < 64; i++ {
		f.selection = append(f.selection, Entry{
			Name: fmt.Sprintf("f%03d.txt", i),
			Path: fmt.Sprintf("/data/f%03d.txt", i),
		})
	}

	sel := dlg.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, 64, sel.Count())
	assert.Equal(t, "/data/f063.txt", sel.Files()[63])
	assert.Equal(t, 1, f.selDestroyed)
}

// Selections survive the dialog context they came from.
func TestSelectionOutlivesDialog(t *testing.T) {
	f, dlg := newFakeDialog()
	f.ok = true
	f.selection = []Entry{{Name: "a.txt", Path: "/a.txt"}}

	sel := dlg.Selection()
	dlg.Destroy()

	assert.Equal(t, []string{"/a.txt"}, sel.Files())
}
