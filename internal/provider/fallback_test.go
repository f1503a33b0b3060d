package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	name  string
	resp  *Response
	err   error
	calls int
}

func (s *stubProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubProvider) Name() string      { return s.name }
func (s *stubProvider) ModelName() string { return s.name }
func (s *stubProvider) Models(_ context.Context) ([]string, error) {
	return []string{s.name}, nil
}

func TestFallbackNotUsedWhenPrimarySucceeds(t *testing.T) {
	primary := &stubProvider{name: "flash", resp: &Response{Text: "ok"}}
	secondary := &stubProvider{name: "flash-lite", resp: &Response{Text: "fallback"}}
	f := WithFallback(primary, secondary, zap.NewNop())

	resp, err := f.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackUsedOncePrimaryFails(t *testing.T) {
	primary := &stubProvider{name: "flash", err: errors.New("overloaded")}
	secondary := &stubProvider{name: "flash-lite", resp: &Response{Text: "fallback"}}
	f := WithFallback(primary, secondary, zap.NewNop())

	resp, err := f.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Text)
	assert.Equal(t, 1, primary.calls, "the primary must not be retried")
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackSurfacesPrimaryErrorWhenBothFail(t *testing.T) {
	primaryErr := errors.New("primary down")
	primary := &stubProvider{name: "flash", err: primaryErr}
	secondary := &stubProvider{name: "flash-lite", err: errors.New("also down")}
	f := WithFallback(primary, secondary, zap.NewNop())

	_, err := f.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, primaryErr)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackSkippedOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &stubProvider{name: "flash", err: errors.New("context canceled")}
	secondary := &stubProvider{name: "flash-lite", resp: &Response{Text: "fallback"}}
	f := WithFallback(primary, secondary, zap.NewNop())

	_, err := f.Generate(ctx, Request{})
	assert.Error(t, err)
	assert.Equal(t, 0, secondary.calls, "no fallback after cancellation")
}

func TestFallbackWithoutSecondary(t *testing.T) {
	primary := &stubProvider{name: "flash", err: errors.New("down")}
	f := WithFallback(primary, nil, nil)

	_, err := f.Generate(context.Background(), Request{})
	assert.Error(t, err)
}
