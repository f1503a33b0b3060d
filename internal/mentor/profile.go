package mentor

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the student's self-description, loaded from a YAML file in the
// config directory. Everything is optional; whatever is present gets folded
// into the system prompt so suggestions match the student's background.
type Profile struct {
	Name         string   `yaml:"name"`
	Background   string   `yaml:"background"`
	Languages    []string `yaml:"languages"`
	Interests    []string `yaml:"interests"`
	HoursPerWeek int      `yaml:"hours_per_week"`
	Goal         string   `yaml:"goal"`
}

// LoadProfile reads the profile file. A missing file is not an error: it
// returns (nil, nil) and prompts simply stay generic.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

// ToPrompt renders the profile as a Markdown block for the system prompt.
func (p *Profile) ToPrompt() string {
	var sb strings.Builder
	sb.WriteString("## About the student\n")
	if p.Name != "" {
		sb.WriteString(fmt.Sprintf("- Name: %s\n", p.Name))
	}
	if p.Background != "" {
		sb.WriteString(fmt.Sprintf("- Background: %s\n", p.Background))
	}
	if len(p.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("- Comfortable in: %s\n", strings.Join(p.Languages, ", ")))
	}
	if len(p.Interests) > 0 {
		sb.WriteString(fmt.Sprintf("- Interested in: %s\n", strings.Join(p.Interests, ", ")))
	}
	if p.HoursPerWeek > 0 {
		sb.WriteString(fmt.Sprintf("- Available time: about %d hours per week\n", p.HoursPerWeek))
	}
	if p.Goal != "" {
		sb.WriteString(fmt.Sprintf("- Goal: %s\n", p.Goal))
	}
	sb.WriteString("\nTailor difficulty, tooling and scope to this student.")
	return sb.String()
}
