package resource

import (
	"context"
	stderrors "errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/uicore/pkg/errors"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewTextureIsUnloaded(t *testing.T) {
	tex := NewTexture("logo")
	if tex.IsLoaded() {
		t.Error("new texture should be unloaded")
	}
	if w, h := tex.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d, %d, want 0, 0", w, h)
	}
	if tex.WithPixels(func(*image.RGBA) { t.Error("fn called on unloaded texture") }) {
		t.Error("WithPixels reported loaded")
	}
}

func TestReplaceCopiesAndBumpsVersion(t *testing.T) {
	src := solid(4, 2, color.NRGBA{R: 255, A: 255})
	tex := NewTextureFromImage("red", src)

	info := tex.Info()
	if !info.Loaded || info.Width != 4 || info.Height != 2 || info.Version != 1 {
		t.Errorf("Info() = %+v", info)
	}

	var got color.RGBA
	tex.WithPixels(func(p *image.RGBA) { got = p.RGBAAt(1, 1) })
	if got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want opaque red", got)
	}

	tex.Replace(nil)
	if info := tex.Info(); info.Loaded || info.Version != 2 {
		t.Errorf("after Replace(nil) Info() = %+v", info)
	}
}

func TestReplaceNormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 15))
	tex := NewTextureFromImage("offset", src)
	tex.WithPixels(func(p *image.RGBA) {
		if p.Bounds().Min != (image.Point{}) {
			t.Errorf("bounds = %v, want origin at zero", p.Bounds())
		}
	})
}

func TestResize(t *testing.T) {
	tex := NewTextureFromImage("r", solid(8, 8, color.White))
	tex.Resize(2, 3)
	if w, h := tex.Size(); w != 2 || h != 3 {
		t.Errorf("Size() after Resize = %d, %d, want 2, 3", w, h)
	}
	tex.Resize(0, 3)
	if w, _ := tex.Size(); w != 2 {
		t.Error("Resize with zero width should be a no-op")
	}
}

func TestConcurrentReplaceAndRead(t *testing.T) {
	tex := NewTexture("shared")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 50; i++ {
			tex.Replace(solid(i, i, color.White))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			info := tex.Info()
			if info.Loaded && info.Width != info.Height {
				t.Errorf("torn read: %+v", info)
				return
			}
		}
	}()
	wg.Wait()
	if w, _ := tex.Size(); w != 50 {
		t.Errorf("final width = %d, want 50", w)
	}
}

type captureHandler struct {
	mu     sync.Mutex
	errs   []*errors.UIError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.UIError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func withHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	old := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func wait(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Load did not finish")
		return nil
	}
}

func TestLoadPopulatesTexture(t *testing.T) {
	tex := NewTexture("async")
	err := wait(t, Load(context.Background(), tex, func(context.Context) (image.Image, error) {
		return solid(3, 3, color.Black), nil
	}))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !tex.IsLoaded() {
		t.Error("texture not loaded after Load")
	}
}

func TestLoadFailureIsReported(t *testing.T) {
	h := withHandler(t)
	tex := NewTexture("missing")
	boom := stderrors.New("file not found")

	err := wait(t, Load(context.Background(), tex, func(context.Context) (image.Image, error) {
		return nil, boom
	}))
	if !stderrors.Is(err, boom) {
		t.Errorf("Load error = %v, want %v", err, boom)
	}
	if tex.IsLoaded() {
		t.Error("failed load should leave texture unloaded")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindResource {
		t.Errorf("reported errors = %v, want one KindResource", h.errs)
	}
}

func TestLoadHonorsCancellation(t *testing.T) {
	withHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tex := NewTexture("cancelled")
	err := wait(t, Load(ctx, tex, func(context.Context) (image.Image, error) {
		return solid(1, 1, color.White), nil
	}))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}
	if tex.IsLoaded() {
		t.Error("cancelled load should not populate the texture")
	}
}

func TestLoadRecoversPanic(t *testing.T) {
	h := withHandler(t)
	tex := NewTexture("panicky")
	err := wait(t, Load(context.Background(), tex, func(context.Context) (image.Image, error) {
		panic("decoder exploded")
	}))
	if err == nil {
		t.Error("expected error from panicking loader")
	}
	if len(h.panics) != 1 || h.panics[0].Op != "resource.Load" {
		t.Errorf("reported panics = %v", h.panics)
	}
}
