package mentor

import (
	"context"
	"fmt"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// Illustrate asks the image model for a cover illustration and returns the
// raw image bytes (PNG from the Gemini backend).
func (m *Mentor) Illustrate(ctx context.Context, item saved.Item) ([]byte, error) {
	if m.imager == nil {
		return nil, fmt.Errorf("no image model configured")
	}
	resp, err := m.imager.Generate(ctx, provider.Request{
		Messages:  []provider.Message{{Role: provider.RoleUser, Content: illustratePrompt(item)}},
		WantImage: true,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Images) == 0 {
		return nil, fmt.Errorf("the model returned no image")
	}
	return resp.Images[0], nil
}
