package resource

import (
	"context"
	"fmt"
	"image"

	"github.com/go-drift/uicore/pkg/errors"
)

// LoadFunc produces the pixels for a texture. Decoding is up to the caller.
type LoadFunc func(ctx context.Context) (image.Image, error)

// Load populates t from fn on a new goroutine and returns a channel that
// receives the outcome (nil on success) and is then closed. Failures and
// panics in fn are also reported through the errors package; the texture is
// left untouched in that case.
func Load(ctx context.Context, t *Texture, fn LoadFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer errors.Recover("resource.Load", func(r any) {
			done <- fmt.Errorf("loading %s: panic: %v", t.Name(), r)
		})

		img, err := fn(ctx)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			errors.Report(&errors.UIError{
				Op:   "resource.Load",
				Kind: errors.KindResource,
				Err:  fmt.Errorf("loading %s: %w", t.Name(), err),
			})
			done <- err
			return
		}
		t.Replace(img)
		done <- nil
	}()
	return done
}
