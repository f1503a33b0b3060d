package test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/headless"
	"github.com/ellisvega/mlmuse/internal/mentor"
	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// scriptedBackend replays canned responses in order.
type scriptedBackend struct {
	replies []string
	errs    []error
	calls   int
}

func (s *scriptedBackend) Generate(_ context.Context, _ provider.Request) (*provider.Response, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return &provider.Response{Text: s.replies[i]}, nil
}

func (s *scriptedBackend) Name() string      { return "scripted" }
func (s *scriptedBackend) ModelName() string { return "scripted" }
func (s *scriptedBackend) Models(_ context.Context) ([]string, error) {
	return []string{"scripted"}, nil
}

func newStore(t *testing.T) *saved.Store {
	t.Helper()
	return saved.NewStore(
		saved.NewFileAdapter(filepath.Join(t.TempDir(), saved.StorageFile)),
		zap.NewNop())
}

// The full bookmark lifecycle: generate, save two, remove one, check
// membership, all against a real file-backed adapter.
func TestSaveRemoveScenario(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		`[{"title":"X","summary":"First project."},{"title":"Y","summary":"Second project."}]`,
	}}
	m := mentor.New(backend)
	store := newStore(t)

	items, err := m.SuggestProjects(context.Background(), "anything", mentor.Beginner)
	require.NoError(t, err)
	require.Len(t, items, 2)
	p1, p2 := items[0], items[1]

	require.True(t, store.Add(p1))
	require.Equal(t, []string{p1.ID}, ids(store.List()))

	require.True(t, store.Add(p2))
	require.Equal(t, []string{p2.ID, p1.ID}, ids(store.List()))

	store.Remove(p1.ID)
	require.Equal(t, []string{p2.ID}, ids(store.List()))

	assert.False(t, store.IsSaved(p1.ID))
	assert.True(t, store.IsSaved(p2.ID))
}

// Primary model fails once; the fallback answers; the caller never sees the
// failure.
func TestIdeasRecoverThroughFallback(t *testing.T) {
	primary := &scriptedBackend{errs: []error{errors.New("overloaded")}, replies: []string{""}}
	secondary := &scriptedBackend{replies: []string{
		`[{"title":"Bird song classifier","summary":"Classify birds from audio."}]`,
	}}
	backend := provider.WithFallback(primary, secondary, zap.NewNop())

	var out bytes.Buffer
	r := &headless.Runner{
		Mentor: mentor.New(backend),
		Store:  newStore(t),
		Out:    &out,
	}
	require.NoError(t, r.Ideas(context.Background(), "audio", mentor.Beginner, false, false))
	assert.Contains(t, out.String(), "Bird song classifier")
	assert.Equal(t, 1, secondary.calls)
}

// The collection survives a restart: a second store over the same file sees
// what the first wrote.
func TestCollectionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), saved.StorageFile)

	first := saved.NewStore(saved.NewFileAdapter(path), zap.NewNop())
	require.True(t, first.Add(saved.Item{ID: "p1", Title: "X", Tags: []string{"nlp"}}))

	second := saved.NewStore(saved.NewFileAdapter(path), zap.NewNop())
	got := second.List()
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Title)
	assert.Equal(t, []string{"nlp"}, got[0].Tags)
}

func ids(items []saved.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
