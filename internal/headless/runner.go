package headless

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ellisvega/mlmuse/internal/mentor"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// Runner is the scripting surface: one-shot operations that print to a
// writer and exit, for pipelines and quick checks without the TUI.
type Runner struct {
	Mentor *mentor.Mentor
	Store  *saved.Store
	Out    io.Writer
}

// Ideas generates proposals for a topic and prints them as a table, or as
// the raw JSON collection when asJSON is set. With save set, every proposal
// is also added to the saved store.
func (r *Runner) Ideas(ctx context.Context, topic string, difficulty mentor.Difficulty, asJSON, save bool) error {
	items, err := r.Mentor.SuggestProjects(ctx, topic, difficulty)
	if err != nil {
		return err
	}

	if save {
		for _, it := range items {
			r.Store.Add(it)
		}
	}

	if asJSON {
		enc := json.NewEncoder(r.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	tw := tabwriter.NewWriter(r.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tDIFFICULTY\tSUMMARY")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Title, it.Difficulty, truncate(it.Summary, 80))
	}
	return tw.Flush()
}

// Ask answers one free-standing question about a saved proposal and prints
// the reply. The chat session lives only for this call.
func (r *Runner) Ask(ctx context.Context, id, question string) error {
	var item saved.Item
	found := false
	for _, it := range r.Store.List() {
		if it.ID == id {
			item = it
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no saved proposal with id %q", id)
	}

	session := r.Mentor.NewChat(item, "")
	reply := session.Send(ctx, question)
	fmt.Fprintln(r.Out, reply)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
