package mentor

import (
	"context"

	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// ResourceList is a grounded reading list: the model's Markdown plus the
// web-search citations it grounded on.
type ResourceList struct {
	Markdown string
	Sources  []provider.Source
}

// FindResources asks for a search-grounded reading list. When the backend
// has no search capability the list still comes back, just without sources.
func (m *Mentor) FindResources(ctx context.Context, item saved.Item) (*ResourceList, error) {
	resp, err := m.text.Generate(ctx, provider.Request{
		System:    m.systemPrompt(),
		Messages:  []provider.Message{{Role: provider.RoleUser, Content: resourcesPrompt(item)}},
		UseSearch: true,
	})
	if err != nil {
		m.log.Warn("resource generation failed", zap.String("id", item.ID), zap.Error(err))
		return nil, err
	}
	return &ResourceList{Markdown: resp.Text, Sources: resp.Sources}, nil
}
