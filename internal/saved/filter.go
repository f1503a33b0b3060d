package saved

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Filter keeps the items for which the expression evaluates to true. The
// expression sees one item at a time through lowercase field names:
//
//	difficulty == "advanced" && "nlp" in tags
func Filter(items []Item, expression string) ([]Item, error) {
	if strings.TrimSpace(expression) == "" {
		return items, nil
	}
	program, err := expr.Compile(expression, expr.Env(filterEnv(Item{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		out, err := expr.Run(program, filterEnv(it))
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", expression, err)
		}
		if ok, _ := out.(bool); ok {
			kept = append(kept, it)
		}
	}
	return kept, nil
}

func filterEnv(it Item) map[string]any {
	return map[string]any{
		"id":         it.ID,
		"title":      it.Title,
		"summary":    it.Summary,
		"difficulty": it.Difficulty,
		"tags":       it.Tags,
		"datasets":   it.Datasets,
		"savedAt":    it.SavedAt,
	}
}
