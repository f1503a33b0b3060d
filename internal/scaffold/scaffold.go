package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Plan is the file set a proposal's starter kit materializes into. It is
// produced by the generation backend under a declared response schema.
type Plan struct {
	Files []File `json:"files"`
}

type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Result reports what Apply did: files it wrote, and files it left alone
// because something was already there.
type Result struct {
	Written []string
	Skipped []Skip
}

// Skip is an existing file Apply refused to clobber. Diff holds the unified
// diff from the existing content to the generated content, empty when the
// two are identical.
type Skip struct {
	Path string
	Diff string
}

// Apply materializes the plan under root. Existing files are never
// overwritten unless force is set; they are reported as skips with a diff
// so the student can reconcile by hand.
func Apply(plan *Plan, root string, force bool) (*Result, error) {
	res := &Result{}
	for _, f := range plan.Files {
		if err := validRelPath(f.Path); err != nil {
			return res, err
		}
		dst := filepath.Join(root, f.Path)

		existing, err := os.ReadFile(dst)
		if err == nil && !force {
			skip := Skip{Path: f.Path}
			if string(existing) != f.Content {
				skip.Diff = unifiedDiff(f.Path, string(existing), f.Content)
			}
			res.Skipped = append(res.Skipped, skip)
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			return res, err
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return res, err
		}
		if err := os.WriteFile(dst, []byte(f.Content), 0644); err != nil {
			return res, err
		}
		res.Written = append(res.Written, f.Path)
	}
	return res, nil
}

func unifiedDiff(path, old, new string) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), old, new)
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (generated)", old, edits))
}

// validRelPath rejects absolute paths and traversal out of the project root.
// Plans come from a model; never trust their paths.
func validRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty file path in plan")
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("absolute path %q not allowed in plan", p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the project directory", p)
	}
	return nil
}
