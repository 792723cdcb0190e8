package provider

import (
	"context"
	"time"
)

// WithTimeout wraps a provider so every Transform call is bounded by d.
// A hung optional stage must never block final-result delivery, so every
// provider handed to the summary pipeline should pass through this wrapper.
// A non-positive d returns the provider unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if p == nil || d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

// timeoutProvider bounds each Transform call with a deadline.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// Name returns the wrapped provider's name.
func (p *timeoutProvider) Name() string {
	return p.inner.Name()
}

// Transform calls the wrapped provider under a deadline.
func (p *timeoutProvider) Transform(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.Transform(ctx, input)
}
