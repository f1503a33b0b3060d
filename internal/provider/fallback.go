package provider

import (
	"context"

	"go.uber.org/zap"
)

// Fallback tries a primary backend and, when it fails, exactly one
// secondary. No backoff, no second attempt at the primary: a generation
// either succeeds on one of the two or the primary's error surfaces.
type Fallback struct {
	primary   Provider
	secondary Provider
	log       *zap.Logger
}

func WithFallback(primary, secondary Provider, log *zap.Logger) *Fallback {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fallback{primary: primary, secondary: secondary, log: log}
}

func (f *Fallback) Name() string { return f.primary.Name() }

func (f *Fallback) ModelName() string { return f.primary.ModelName() }

func (f *Fallback) Models(ctx context.Context) ([]string, error) {
	return f.primary.Models(ctx)
}

func (f *Fallback) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}
	if f.secondary == nil || ctx.Err() != nil {
		return nil, err
	}
	f.log.Warn("primary generation failed, trying fallback",
		zap.String("primary", f.primary.ModelName()),
		zap.String("fallback", f.secondary.ModelName()),
		zap.Error(err))
	resp, ferr := f.secondary.Generate(ctx, req)
	if ferr != nil {
		f.log.Warn("fallback generation failed", zap.Error(ferr))
		// The primary error names the real problem; the caller shows it.
		return nil, err
	}
	return resp, nil
}
