package mentor

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/schema"
)

// Difficulty is the student-facing scale used across prompts and the UI.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes user input. An empty string means the student
// didn't care, which defaults to intermediate.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Intermediate, nil
	case Beginner:
		return Beginner, nil
	case Intermediate:
		return Intermediate, nil
	case Advanced:
		return Advanced, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (use beginner, intermediate or advanced)", s)
}

// Mentor builds prompts, delegates every substantive computation to the
// generation backend, and validates what comes back. It holds no state
// besides its collaborators; all project state lives in the saved store.
type Mentor struct {
	text       provider.Provider
	imager     provider.Provider // nil when no image model is configured
	validator  *schema.Validator
	profile    *Profile
	log        *zap.Logger
	ideaCount  int
	chatBudget int
}

type Option func(*Mentor)

// WithImageProvider enables Illustrate via a separate image-capable model.
func WithImageProvider(p provider.Provider) Option {
	return func(m *Mentor) { m.imager = p }
}

// WithProfile personalizes every prompt with the student's background.
func WithProfile(p *Profile) Option {
	return func(m *Mentor) { m.profile = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Mentor) {
		if l != nil {
			m.log = l
		}
	}
}

// WithIdeaCount sets how many proposals SuggestProjects asks for.
func WithIdeaCount(n int) Option {
	return func(m *Mentor) {
		if n > 0 {
			m.ideaCount = n
		}
	}
}

// WithChatBudget sets the estimated-token ceiling chat sessions compact
// themselves against.
func WithChatBudget(n int) Option {
	return func(m *Mentor) {
		if n > 0 {
			m.chatBudget = n
		}
	}
}

func New(text provider.Provider, opts ...Option) *Mentor {
	m := &Mentor{
		text:       text,
		validator:  schema.NewValidator(),
		log:        zap.NewNop(),
		ideaCount:  defaultIdeaCount,
		chatBudget: defaultChatBudget,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
