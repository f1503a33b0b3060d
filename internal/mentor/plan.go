package mentor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
	"github.com/ellisvega/mlmuse/internal/scaffold"
)

var scaffoldSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"files": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":    map[string]any{"type": "string"},
					"content": map[string]any{"type": "string"},
				},
				"required": []string{"path", "content"},
			},
		},
	},
	"required": []string{"files"},
}

// ScaffoldPlan asks for a complete starter file tree as structured output.
// The plan is schema-validated but its paths are not trusted; scaffold.Apply
// re-checks them before touching the filesystem.
func (m *Mentor) ScaffoldPlan(ctx context.Context, item saved.Item) (*scaffold.Plan, error) {
	resp, err := m.text.Generate(ctx, provider.Request{
		System:     m.systemPrompt(),
		Messages:   []provider.Message{{Role: provider.RoleUser, Content: scaffoldPrompt(item)}},
		JSONSchema: scaffoldSchema,
	})
	if err != nil {
		return nil, err
	}
	doc := cleanJSON(resp.Text)
	if err := m.validator.Validate(scaffoldSchema, doc); err != nil {
		return nil, err
	}
	var plan scaffold.Plan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		return nil, fmt.Errorf("parse scaffold plan: %w", err)
	}
	if len(plan.Files) == 0 {
		return nil, fmt.Errorf("the model returned an empty plan")
	}
	return &plan, nil
}
