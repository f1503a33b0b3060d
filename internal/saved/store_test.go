package saved

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// memAdapter is an in-memory Adapter with failure knobs.
type memAdapter struct {
	value    string
	ok       bool
	readErr  error
	writeErr error
	writes   int
}

func (m *memAdapter) Read() (string, bool, error) {
	if m.readErr != nil {
		return "", false, m.readErr
	}
	return m.value, m.ok, nil
}

func (m *memAdapter) Write(v string) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.value = v
	m.ok = true
	return nil
}

func TestListAbsentKeyIsEmpty(t *testing.T) {
	s := NewStore(&memAdapter{}, zap.NewNop())
	assert.Empty(t, s.List())
}

func TestAddOrdersNewestFirst(t *testing.T) {
	s := NewStore(&memAdapter{}, zap.NewNop())
	a := Item{ID: "p1", Title: "Pose estimation for climbers"}
	b := Item{ID: "p2", Title: "Bird song classifier"}
	assert.True(t, s.Add(a))
	assert.True(t, s.Add(b))

	want := []Item{b, a}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestAddDuplicateIDIsNoOp(t *testing.T) {
	m := &memAdapter{}
	s := NewStore(m, zap.NewNop())
	assert.True(t, s.Add(Item{ID: "p1", Title: "first"}))

	writesBefore := m.writes
	assert.False(t, s.Add(Item{ID: "p1", Title: "second"}))
	assert.Equal(t, writesBefore, m.writes, "duplicate add must not write")

	items := s.List()
	assert.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Title)
}

func TestAddReportsWriteFailure(t *testing.T) {
	m := &memAdapter{writeErr: errors.New("quota exceeded")}
	s := NewStore(m, zap.NewNop())
	assert.False(t, s.Add(Item{ID: "p1"}))
	assert.Empty(t, s.List(), "a failed write persists nothing")
}

func TestRemoveFiltersByID(t *testing.T) {
	s := NewStore(&memAdapter{}, zap.NewNop())
	s.Add(Item{ID: "p1"})
	s.Add(Item{ID: "p2"})

	s.Remove("p1")
	items := s.List()
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestRemoveMissingIDStillWrites(t *testing.T) {
	m := &memAdapter{}
	s := NewStore(m, zap.NewNop())
	s.Add(Item{ID: "p1", Title: "keep me"})

	before := m.value
	writesBefore := m.writes
	s.Remove("nope")
	assert.Equal(t, writesBefore+1, m.writes, "a no-op remove still writes")
	assert.Equal(t, before, m.value, "content must be byte-equivalent")
}

func TestIsSaved(t *testing.T) {
	s := NewStore(&memAdapter{}, zap.NewNop())
	s.Add(Item{ID: "p1"})
	assert.True(t, s.IsSaved("p1"))
	s.Remove("p1")
	assert.False(t, s.IsSaved("p1"))
}

func TestListFailingMediumIsEmpty(t *testing.T) {
	s := NewStore(&memAdapter{readErr: errors.New("medium gone")}, zap.NewNop())
	assert.Empty(t, s.List())
}

func TestListUnparsableValueIsEmptyAndLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := &memAdapter{value: "{definitely not a collection", ok: true}
	s := NewStore(m, zap.New(core))

	assert.Empty(t, s.List())
	assert.Equal(t, 1, logs.FilterMessage("saved: discarding unparsable collection").Len())
}

func TestRoundTrip(t *testing.T) {
	items := []Item{
		{ID: "p2", Title: "Bird song classifier", Tags: []string{"audio", "cnn"}, Datasets: []string{"xeno-canto"}},
		{ID: "p1", Title: "Pose estimation", Difficulty: "advanced"},
	}
	raw, err := encode(items)
	assert.NoError(t, err)

	m := &memAdapter{}
	assert.NoError(t, m.Write(raw))

	s := NewStore(m, zap.NewNop())
	if diff := cmp.Diff(items, s.List()); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRemoveScenario(t *testing.T) {
	s := NewStore(&memAdapter{}, zap.NewNop())

	s.Add(Item{ID: "p1", Title: "X"})
	items := s.List()
	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)

	s.Add(Item{ID: "p2", Title: "Y"})
	items = s.List()
	assert.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, "p1", items[1].ID)

	s.Remove("p1")
	items = s.List()
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.False(t, s.IsSaved("p1"))
	assert.True(t, s.IsSaved("p2"))
}

func TestNilLoggerDefaultsToNop(t *testing.T) {
	s := NewStore(&memAdapter{}, nil)
	assert.True(t, s.Add(Item{ID: "p1"}))
}
