package cmd

import (
	"path/filepath"

	"github.com/go-drift/uicore/pkg/config"
	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/resource"
	"github.com/go-drift/uicore/pkg/scene"
	"github.com/go-drift/uicore/pkg/ui"
)

// session is a scene loaded into a UserInterface under the resolved config.
type session struct {
	cfg      *config.Resolved
	scene    *scene.Scene
	ui       *ui.UserInterface
	textures map[string]*resource.Texture
}

// openSession resolves the config next to the scene (or in --config),
// installs its error handler, and builds the scene.
func openSession(opts sceneOptions) (*session, error) {
	dir := opts.configDir
	if dir == "" {
		dir = config.FindRoot(filepath.Dir(opts.path))
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	errors.SetHandler(cfg.ErrorHandler())

	s, err := scene.Load(opts.path)
	if err != nil {
		return nil, err
	}

	uiOpts := cfg.Options()
	if opts.width > 0 {
		uiOpts.ScreenSize.X = opts.width
	}
	if opts.height > 0 {
		uiOpts.ScreenSize.Y = opts.height
	}
	sess := &session{
		cfg:      cfg,
		scene:    s,
		ui:       ui.New(uiOpts),
		textures: make(map[string]*resource.Texture),
	}
	if _, err := s.Build(sess.ui, sess.textures); err != nil {
		return nil, err
	}
	return sess, nil
}
