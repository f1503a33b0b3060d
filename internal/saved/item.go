package saved

import "encoding/json"

// Item is one bookmarked project proposal. The id is assigned by whatever
// produced the item (the idea generator, never the store); every other field
// is opaque payload the store carries but does not inspect.
type Item struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags,omitempty"`
	Datasets   []string `json:"datasets,omitempty"`
	SavedAt    string   `json:"savedAt,omitempty"`
}

func encode(items []Item) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
