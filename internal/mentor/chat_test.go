package mentor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ellisvega/mlmuse/internal/provider"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestChatSendAppendsBothTurns(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "Start with a spectrogram baseline."}}
	s := New(prov).NewChat(testItem(), t.TempDir())

	reply := s.Send(context.Background(), "Where do I start?")
	assert.Equal(t, "Start with a spectrogram baseline.", reply)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, provider.RoleUser, s.Messages()[0].Role)
	assert.Equal(t, provider.RoleAssistant, s.Messages()[1].Role)

	// The system prompt stays grounded in the proposal.
	assert.Contains(t, prov.reqs[0].System, "Bird song classifier")
}

func TestChatFailureIsApologyNotError(t *testing.T) {
	prov := &stubProvider{err: errors.New("overloaded")}
	s := New(prov).NewChat(testItem(), t.TempDir())

	reply := s.Send(context.Background(), "Where do I start?")
	assert.Equal(t, apologyReply, reply)
	// The apology lands in the transcript; the session stays usable.
	require.Equal(t, 2, s.Len())
	assert.Equal(t, apologyReply, s.Messages()[1].Content)

	prov.err = nil
	prov.resp = &provider.Response{Text: "Back now."}
	assert.Equal(t, "Back now.", s.Send(context.Background(), "Still there?"))
}

func TestChatCompactKeepsRecentTurns(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "ok"}}
	s := New(prov).NewChat(testItem(), t.TempDir())

	for i := 0; i < 6; i++ {
		s.Send(context.Background(), strings.Repeat("question ", 10))
	}
	before := s.Len()
	s.Compact()
	assert.Less(t, s.Len(), before)

	// The last exchanges survive verbatim.
	last := s.Messages()[s.Len()-1]
	assert.Equal(t, "ok", last.Content)
	// The summary turn leads.
	assert.Contains(t, s.Messages()[0].Content, "[Conversation summary]")
}

func TestChatBudgetTriggersCompaction(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "ok"}}
	// A tiny budget: a handful of turns overruns it.
	s := New(prov, WithChatBudget(50)).NewChat(testItem(), t.TempDir())

	for i := 0; i < 8; i++ {
		s.Send(context.Background(), strings.Repeat("question ", 20))
	}
	assert.Contains(t, s.Messages()[0].Content, "[Conversation summary]",
		"overrunning the budget should compact older turns automatically")
}

func TestChatSessionHasID(t *testing.T) {
	m := New(&stubProvider{resp: &provider.Response{Text: "ok"}})
	assert.NotEmpty(t, m.NewChat(testItem(), t.TempDir()).ID())
}

func TestChatSaveWritesTranscript(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "ok"}}
	dir := t.TempDir()
	s := New(prov).NewChat(testItem(), dir)
	s.Send(context.Background(), "hello")

	path, err := s.Save()
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var msgs []provider.Message
	require.NoError(t, json.Unmarshal(data, &msgs))
	assert.Len(t, msgs, 2)
}

func TestChatExportMarkdown(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "Try librosa."}}
	s := New(prov).NewChat(testItem(), t.TempDir())
	s.Send(context.Background(), "Which library?")

	path := filepath.Join(t.TempDir(), "chat.md")
	require.NoError(t, s.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Advisory chat: Bird song classifier")
	assert.Contains(t, string(data), "## Student")
	assert.Contains(t, string(data), "Try librosa.")
}
