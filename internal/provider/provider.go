package provider

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request describes a single generation call. The zero value asks for a
// plain text completion; the optional fields switch on structured output,
// web-search grounding, or image output where the backend supports them.
type Request struct {
	System      string
	Messages    []Message
	JSONSchema  map[string]any // constrain the reply to this response schema
	UseSearch   bool           // ground the reply with web search
	WantImage   bool           // ask for inline image output
	Temperature float64
	MaxTokens   int
}

// Source is one grounding citation attached to a reply.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a completed generation.
type Response struct {
	Text    string
	Images  [][]byte // decoded inline image payloads
	Sources []Source // present only for search-grounded replies
	Usage   *Usage
}

// Provider is a blocking generation backend. Generate returns the full
// completion or an error; there is no streaming surface because every
// caller renders whole responses.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Name() string
	ModelName() string
	Models(ctx context.Context) ([]string, error)
}
