package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// apologyReply is what the student sees when a chat turn cannot reach the
// model. It lands in the transcript like any other reply; the session
// itself never aborts.
const apologyReply = "I'm sorry — I couldn't reach the model just now. Please try sending that again in a moment."

// ChatSession is one advisory conversation about a proposal. History lives
// in memory with a rough token estimate and gets compacted when it
// approaches the budget.
type ChatSession struct {
	mentor      *Mentor
	item        saved.Item
	messages    []provider.Message
	maxTokens   int
	totalTokens int
	sessionID   string
	sessionDir  string
}

// defaultChatBudget is a conservative estimated-token ceiling; the config
// key max_chat_tokens overrides it through WithChatBudget.
const defaultChatBudget = 100000

// NewChat opens an advisory session about item. Transcripts saved with Save
// land in sessionDir.
func (m *Mentor) NewChat(item saved.Item, sessionDir string) *ChatSession {
	return &ChatSession{
		mentor:     m,
		item:       item,
		maxTokens:  m.chatBudget,
		sessionID:  fmt.Sprintf("%d", time.Now().UnixNano()),
		sessionDir: sessionDir,
	}
}

// ID distinguishes sessions; replies from an abandoned session carry its id.
func (s *ChatSession) ID() string { return s.sessionID }

// Send appends the student's turn, asks for the next turn, and returns it.
// Failures come back as an apologetic in-band reply instead of an error.
func (s *ChatSession) Send(ctx context.Context, text string) string {
	s.addUser(text)
	resp, err := s.mentor.text.Generate(ctx, provider.Request{
		System:   s.mentor.chatSystemPrompt(s.item),
		Messages: s.messages,
	})
	if err != nil {
		s.mentor.log.Warn("chat turn failed", zap.String("item", s.item.ID), zap.Error(err))
		s.addAssistant(apologyReply)
		return apologyReply
	}
	s.addAssistant(resp.Text)
	return resp.Text
}

func (s *ChatSession) addUser(content string) {
	s.messages = append(s.messages, provider.Message{Role: provider.RoleUser, Content: content})
	s.totalTokens += estimateTokens(content)
	s.compactIfNeeded()
}

func (s *ChatSession) addAssistant(content string) {
	s.messages = append(s.messages, provider.Message{Role: provider.RoleAssistant, Content: content})
	s.totalTokens += estimateTokens(content)
}

func (s *ChatSession) Messages() []provider.Message { return s.messages }

func (s *ChatSession) Len() int { return len(s.messages) }

func (s *ChatSession) EstimatedTokens() int { return s.totalTokens }

func (s *ChatSession) Item() saved.Item { return s.item }

func (s *ChatSession) compactIfNeeded() {
	if s.totalTokens < s.maxTokens*80/100 {
		return
	}
	s.Compact()
}

// Compact folds everything but the last three exchanges into a short
// summary turn.
func (s *ChatSession) Compact() {
	if len(s.messages) <= 6 {
		return
	}
	cutoff := len(s.messages) - 6
	var summary strings.Builder
	summary.WriteString("[Conversation summary]\n")
	for _, m := range s.messages[:cutoff] {
		switch m.Role {
		case provider.RoleUser:
			summary.WriteString(fmt.Sprintf("Student: %s\n", truncateText(m.Content, 100)))
		case provider.RoleAssistant:
			summary.WriteString(fmt.Sprintf("Mentor: %s\n", truncateText(m.Content, 100)))
		}
	}

	newMsgs := []provider.Message{
		{Role: provider.RoleUser, Content: summary.String()},
		{Role: provider.RoleAssistant, Content: "Understood. I have the conversation context."},
	}
	newMsgs = append(newMsgs, s.messages[cutoff:]...)
	s.messages = newMsgs
	s.recalcTokens()
}

// Clear drops all turns.
func (s *ChatSession) Clear() {
	s.messages = nil
	s.totalTokens = 0
}

func (s *ChatSession) recalcTokens() {
	s.totalTokens = 0
	for _, m := range s.messages {
		s.totalTokens += estimateTokens(m.Content)
	}
}

// Save persists the raw transcript as JSON and returns the path.
func (s *ChatSession) Save() (string, error) {
	if err := os.MkdirAll(s.sessionDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(s.sessionDir, s.sessionID+".json")
	data, err := json.MarshalIndent(s.messages, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0644)
}

// Export writes the transcript as readable Markdown.
func (s *ChatSession) Export(path string) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Advisory chat: %s\n\n", s.item.Title))
	for _, m := range s.messages {
		switch m.Role {
		case provider.RoleUser:
			sb.WriteString("## Student\n")
		case provider.RoleAssistant:
			sb.WriteString("## Mentor\n")
		}
		sb.WriteString(m.Content + "\n\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// estimateTokens gives a rough count (~4 chars per token).
func estimateTokens(s string) int {
	return len(s) / 4
}

func truncateText(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
