package scall

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/syskit/errno"
	"golang.org/x/time/rate"
)

// DefaultWouldBlockInterval paces RetryWouldBlock when no limiter is given.
const DefaultWouldBlockInterval = time.Millisecond

// RetryWouldBlock calls fn until it stops failing with a would-block error.
//
// The adapter itself returns would-block failures to the caller; this is the
// higher-level retry for callers that prefer to wait. Attempts are paced by
// lim (one attempt per DefaultWouldBlockInterval if nil). Any other error is
// returned unchanged. If ctx ends first, the context error is returned joined
// with the last would-block error.
func RetryWouldBlock(ctx context.Context, lim *rate.Limiter, fn func() error) error {
	if lim == nil {
		lim = rate.NewLimiter(rate.Every(DefaultWouldBlockInterval), 1)
	}
	for {
		err := fn()
		if err == nil {
			return nil
		}
		e, cerr := errno.FromError(err)
		if cerr != nil || e.Kind() != errno.WouldBlock {
			return err
		}
		if werr := lim.Wait(ctx); werr != nil {
			return errors.Join(werr, err)
		}
	}
}
