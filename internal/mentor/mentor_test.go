package mentor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// stubProvider replays a scripted response, optionally recording requests.
type stubProvider struct {
	mu    sync.Mutex
	resp  *provider.Response
	err   error
	reqs  []provider.Request
	calls int
}

func (s *stubProvider) Generate(_ context.Context, req provider.Request) (*provider.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubProvider) Name() string      { return "stub" }
func (s *stubProvider) ModelName() string { return "stub-model" }
func (s *stubProvider) Models(_ context.Context) ([]string, error) {
	return []string{"stub-model"}, nil
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, Intermediate, d)

	d, err = ParseDifficulty("  Advanced ")
	require.NoError(t, err)
	assert.Equal(t, Advanced, d)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestSuggestProjectsMintsIDs(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{
		Text: "```json\n" + `[
			{"title":"Bird song classifier","summary":"Classify birds from audio.","tags":["audio"]},
			{"title":"Pose estimation","summary":"Track climbers on video.","difficulty":"advanced"}
		]` + "\n```",
	}}
	m := New(prov)

	items, err := m.SuggestProjects(context.Background(), "wildlife", Beginner)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	// Missing difficulty falls back to the requested level.
	assert.Equal(t, "beginner", items[0].Difficulty)
	assert.Equal(t, "advanced", items[1].Difficulty)

	// The request declared the response schema.
	require.Len(t, prov.reqs, 1)
	assert.NotNil(t, prov.reqs[0].JSONSchema)
}

func TestSuggestProjectsHonorsConfiguredCount(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{
		Text: `[{"title":"Bird song classifier","summary":"Classify birds from audio."}]`,
	}}
	m := New(prov, WithIdeaCount(3))

	_, err := m.SuggestProjects(context.Background(), "wildlife", Beginner)
	require.NoError(t, err)
	require.Len(t, prov.reqs, 1)
	assert.Contains(t, prov.reqs[0].Messages[0].Content, "Propose 3 distinct")

	// A bogus count keeps the default.
	prov2 := &stubProvider{resp: prov.resp}
	_, err = New(prov2, WithIdeaCount(0)).SuggestProjects(context.Background(), "wildlife", Beginner)
	require.NoError(t, err)
	assert.Contains(t, prov2.reqs[0].Messages[0].Content, "Propose 5 distinct")
}

func TestSuggestProjectsRejectsEmptyTopic(t *testing.T) {
	m := New(&stubProvider{})
	_, err := m.SuggestProjects(context.Background(), "   ", Beginner)
	assert.Error(t, err)
}

func TestSuggestProjectsNoPartialResultsOnBadReply(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: `{"oops": true}`}}
	m := New(prov)

	items, err := m.SuggestProjects(context.Background(), "wildlife", Beginner)
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestSuggestProjectsEmptyArrayFails(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: `[]`}}
	m := New(prov)

	_, err := m.SuggestProjects(context.Background(), "wildlife", Beginner)
	assert.Error(t, err)
}

func TestBriefFetchesBothHalves(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: "# Write-up"}}
	m := New(prov)

	w, err := m.Brief(context.Background(), testItem())
	require.NoError(t, err)
	assert.Equal(t, "# Write-up", w.Architecture)
	assert.Equal(t, "# Write-up", w.StarterCode)
	assert.Equal(t, 2, prov.calls)
}

func TestBriefFailsWholeWhenOneHalfFails(t *testing.T) {
	prov := &stubProvider{err: errors.New("overloaded")}
	m := New(prov)

	w, err := m.Brief(context.Background(), testItem())
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestFindResourcesRequestsSearchGrounding(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{
		Text:    "## Tutorials",
		Sources: []provider.Source{{Title: "CS231n", URL: "https://cs231n.github.io"}},
	}}
	m := New(prov)

	rl, err := m.FindResources(context.Background(), testItem())
	require.NoError(t, err)
	assert.True(t, prov.reqs[0].UseSearch)
	assert.Len(t, rl.Sources, 1)
}

func TestIllustrateWithoutImageModel(t *testing.T) {
	m := New(&stubProvider{})
	_, err := m.Illustrate(context.Background(), testItem())
	assert.ErrorContains(t, err, "no image model")
}

func TestIllustrateReturnsFirstImage(t *testing.T) {
	imager := &stubProvider{resp: &provider.Response{Images: [][]byte{{0x89, 0x50}}}}
	m := New(&stubProvider{}, WithImageProvider(imager))

	img, err := m.Illustrate(context.Background(), testItem())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, img)
	assert.True(t, imager.reqs[0].WantImage)
}

func TestScaffoldPlanValidatesReply(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{
		Text: `{"files":[{"path":"README.md","content":"# Start here\n"}]}`,
	}}
	m := New(prov)

	plan, err := m.ScaffoldPlan(context.Background(), testItem())
	require.NoError(t, err)
	require.Len(t, plan.Files, 1)
	assert.Equal(t, "README.md", plan.Files[0].Path)
}

func TestScaffoldPlanRejectsEmptyPlan(t *testing.T) {
	prov := &stubProvider{resp: &provider.Response{Text: `{"files":[]}`}}
	m := New(prov)

	_, err := m.ScaffoldPlan(context.Background(), testItem())
	assert.Error(t, err)
}

func TestProfilePersonalizesSystemPrompt(t *testing.T) {
	p := &Profile{Name: "Ada", Background: "2nd-year CS", HoursPerWeek: 6}
	m := New(&stubProvider{}, WithProfile(p))

	sys := m.systemPrompt()
	assert.Contains(t, sys, "Ada")
	assert.Contains(t, sys, "6 hours per week")
}

func testItem() saved.Item {
	return saved.Item{
		ID:         "p1",
		Title:      "Bird song classifier",
		Summary:    "Classify regional bird species from short audio clips.",
		Difficulty: "intermediate",
	}
}
