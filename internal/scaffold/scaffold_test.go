package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyWritesPlanFiles(t *testing.T) {
	root := t.TempDir()
	plan := &Plan{Files: []File{
		{Path: "README.md", Content: "# Bird song classifier\n"},
		{Path: "src/train.py", Content: "print('hello')\n"},
	}}

	res, err := Apply(plan, root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/train.py"}, res.Written)
	assert.Empty(t, res.Skipped)

	data, err := os.ReadFile(filepath.Join(root, "src", "train.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hello')\n", string(data))
}

func TestApplySkipsExistingWithDiff(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "train.py"), []byte("print('mine')\n"), 0644))

	plan := &Plan{Files: []File{{Path: "train.py", Content: "print('generated')\n"}}}
	res, err := Apply(plan, root, false)
	require.NoError(t, err)
	assert.Empty(t, res.Written)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "train.py", res.Skipped[0].Path)
	assert.Contains(t, res.Skipped[0].Diff, "-print('mine')")
	assert.Contains(t, res.Skipped[0].Diff, "+print('generated')")

	// The file on disk is untouched.
	data, _ := os.ReadFile(filepath.Join(root, "train.py"))
	assert.Equal(t, "print('mine')\n", string(data))
}

func TestApplyIdenticalFileSkipsWithoutDiff(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "train.py"), []byte("same\n"), 0644))

	plan := &Plan{Files: []File{{Path: "train.py", Content: "same\n"}}}
	res, err := Apply(plan, root, false)
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Empty(t, res.Skipped[0].Diff)
}

func TestApplyForceOverwrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "train.py"), []byte("old\n"), 0644))

	plan := &Plan{Files: []File{{Path: "train.py", Content: "new\n"}}}
	res, err := Apply(plan, root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"train.py"}, res.Written)

	data, _ := os.ReadFile(filepath.Join(root, "train.py"))
	assert.Equal(t, "new\n", string(data))
}

func TestApplyRejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"/etc/passwd", "../outside.py", "a/../../outside.py", ""} {
		plan := &Plan{Files: []File{{Path: p, Content: "x"}}}
		_, err := Apply(plan, root, false)
		assert.Error(t, err, "path %q must be rejected", p)
	}
}
