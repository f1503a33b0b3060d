package mentor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// Writeup is the long-form material for one proposal.
type Writeup struct {
	Architecture string
	StarterCode  string
}

// Architecture returns the Markdown architecture guide for a proposal.
func (m *Mentor) Architecture(ctx context.Context, item saved.Item) (string, error) {
	return m.generateText(ctx, architecturePrompt(item))
}

// StarterCode returns the Markdown starter-code walkthrough for a proposal.
func (m *Mentor) StarterCode(ctx context.Context, item saved.Item) (string, error) {
	return m.generateText(ctx, starterCodePrompt(item))
}

// Brief fetches both halves of the write-up concurrently. If either call
// fails the whole brief fails and no partial result is kept.
func (m *Mentor) Brief(ctx context.Context, item saved.Item) (*Writeup, error) {
	var w Writeup
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		arch, err := m.Architecture(gctx, item)
		if err != nil {
			return fmt.Errorf("architecture: %w", err)
		}
		w.Architecture = arch
		return nil
	})
	g.Go(func() error {
		code, err := m.StarterCode(gctx, item)
		if err != nil {
			return fmt.Errorf("starter code: %w", err)
		}
		w.StarterCode = code
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (m *Mentor) generateText(ctx context.Context, promptText string) (string, error) {
	resp, err := m.text.Generate(ctx, provider.Request{
		System:   m.systemPrompt(),
		Messages: []provider.Message{{Role: provider.RoleUser, Content: promptText}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
