package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

const defaultIdeaCount = 5

// ideasSchema is both the response schema declared on the request and the
// contract the reply is validated against before anything trusts it.
var ideasSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":      map[string]any{"type": "string"},
			"summary":    map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"tags":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"datasets":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"title", "summary"},
	},
}

type proposal struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	Datasets   []string `json:"datasets"`
}

// SuggestProjects asks the backend for Item-shaped proposals, ordered most
// recommended first. The reply must validate against ideasSchema; on any
// failure no partial results are returned. Ids are minted here — the store
// never assigns them.
func (m *Mentor) SuggestProjects(ctx context.Context, topic string, difficulty Difficulty) ([]saved.Item, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic must not be empty")
	}

	resp, err := m.text.Generate(ctx, provider.Request{
		System:      m.systemPrompt(),
		Messages:    []provider.Message{{Role: provider.RoleUser, Content: ideasPrompt(topic, difficulty, m.ideaCount)}},
		JSONSchema:  ideasSchema,
		Temperature: 0.9, // idea generation wants variety
	})
	if err != nil {
		m.log.Warn("idea generation failed", zap.String("topic", topic), zap.Error(err))
		return nil, err
	}

	doc := cleanJSON(resp.Text)
	if err := m.validator.Validate(ideasSchema, doc); err != nil {
		m.log.Warn("idea reply failed schema validation", zap.Error(err))
		return nil, err
	}

	var proposals []proposal
	if err := json.Unmarshal([]byte(doc), &proposals); err != nil {
		return nil, fmt.Errorf("parse proposals: %w", err)
	}
	if len(proposals) == 0 {
		return nil, fmt.Errorf("the model returned no proposals")
	}

	items := make([]saved.Item, len(proposals))
	for i, p := range proposals {
		diff := strings.ToLower(p.Difficulty)
		if diff == "" {
			diff = string(difficulty)
		}
		items[i] = saved.Item{
			ID:         uuid.NewString(),
			Title:      p.Title,
			Summary:    p.Summary,
			Difficulty: diff,
			Tags:       p.Tags,
			Datasets:   p.Datasets,
		}
	}
	m.log.Info("generated proposals", zap.String("topic", topic), zap.Int("count", len(items)))
	return items, nil
}
