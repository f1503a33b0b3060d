package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ellisvega/mlmuse/internal/saved"
)

var sample = []saved.Item{
	{
		ID:         "p2",
		Title:      "Bird song classifier",
		Summary:    "Classify regional bird species from short audio clips.",
		Difficulty: "intermediate",
		Tags:       []string{"audio", "classification"},
		Datasets:   []string{"xeno-canto"},
	},
	{
		ID:         "p1",
		Title:      "Pose estimation for climbers",
		Summary:    "Track body position on a bouldering wall from video.",
		Difficulty: "advanced",
	},
}

func TestMarkdownListsNewestFirst(t *testing.T) {
	out := Markdown(sample)
	assert.Contains(t, out, "## Bird song classifier")
	assert.Contains(t, out, "## Pose estimation for climbers")
	assert.Less(t,
		strings.Index(out, "Bird song classifier"),
		strings.Index(out, "Pose estimation for climbers"))
	assert.Contains(t, out, "xeno-canto")
}

func TestMarkdownEmptyCollection(t *testing.T) {
	assert.Contains(t, Markdown(nil), "Nothing saved yet")
}

func TestWriteWorkbookRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposals.xlsx")
	require.NoError(t, WriteWorkbook(sample, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Proposals")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two proposals
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "Bird song classifier", rows[1][0])
	assert.Equal(t, "advanced", rows[2][1])
}
