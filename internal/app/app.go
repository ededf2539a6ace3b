// Package app wires the window, the renderer and one viewport controller per
// configured view into the editor's main loop.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxedit/internal/config"
	"github.com/Faultbox/voxedit/internal/editor"
	"github.com/Faultbox/voxedit/internal/engine/camera"
	"github.com/Faultbox/voxedit/internal/engine/debug"
	"github.com/Faultbox/voxedit/internal/engine/input"
	"github.com/Faultbox/voxedit/internal/engine/lighting"
	"github.com/Faultbox/voxedit/internal/engine/renderer"
	"github.com/Faultbox/voxedit/internal/engine/window"
	"github.com/Faultbox/voxedit/internal/logger"
	"github.com/Faultbox/voxedit/internal/viewport"
	"github.com/Faultbox/voxedit/internal/workspace"
)

// ErrNoViews is returned when the configuration lists no views.
var ErrNoViews = errors.New("no views configured")

// pane is one view: its controller and its render target.
type pane struct {
	ctrl *viewport.Controller
	view *renderer.View
}

// App is the editor instance.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	panes    []pane
	mux      *workspace.Mux
	router   *input.Router
	shots    *debug.Screenshots
	running  bool
	log      *zap.Logger
}

// New opens the window and builds every configured view.
func New(cfg *config.Config) (*App, error) {
	if len(cfg.Views) == 0 {
		return nil, ErrNoViews
	}
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	format, err := debug.ParseImageFormat(cfg.Screenshot.Format)
	if err != nil {
		a.log.Warn("falling back to png screenshots", zap.Error(err))
	}
	a.shots = debug.NewScreenshots(cfg.Screenshot.Dir, "voxedit", format)

	a.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	var light lighting.Light
	if sun := cfg.Editor.Sun; sun != nil {
		light = lighting.Light{
			Direction: lighting.SunDirection(sun.Azimuth, sun.Elevation),
			Ambient:   sun.Ambient,
		}
	}

	// After the window: the GL context must exist
	a.renderer, err = renderer.New(renderer.Config{
		Background:    cfg.Editor.Background,
		DraftSize:     cfg.Grid.DraftSize,
		GridDivisions: cfg.Grid.Divisions,
		Light:         light,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.buildPanes(); err != nil {
		a.Close()
		return nil, err
	}

	a.log.Info("editor initialized", zap.Int("views", len(a.panes)))
	return a, nil
}

func (a *App) buildPanes() error {
	width, height := a.window.Size()
	rects := workspace.Split(width, height, len(a.cfg.Views), a.cfg.Window.Border)

	tool, err := editor.ParseToolMode(a.cfg.Editor.Tool)
	if err != nil {
		a.log.Warn("unknown tool mode", zap.Error(err))
	}

	handlers := make([]input.Handler, 0, len(a.cfg.Views))
	ctrls := make([]*viewport.Controller, 0, len(a.cfg.Views))
	for i, vc := range a.cfg.Views {
		kind, err := camera.ParseViewKind(vc.Kind)
		if err != nil {
			a.log.Warn("unknown view kind", zap.Int("index", i), zap.Error(err))
		}
		name := fmt.Sprintf("%d-%s", i, vc.Kind)

		view, err := a.renderer.NewView(name, rects[i].W, rects[i].H)
		if err != nil {
			return err
		}

		viewCfg := camera.DefaultViewConfig(kind, a.cfg.Grid.DraftSize)
		viewCfg.FOV = a.cfg.Camera.FOV
		viewCfg.Near = a.cfg.Camera.Near

		ctrl, err := viewport.New(viewport.Options{
			Name:       name,
			View:       viewCfg,
			Viewport:   camera.Viewport{Width: rects[i].W, Height: rects[i].H},
			CellSize:   a.cfg.Grid.CellSize,
			EntitySize: a.cfg.Grid.EntitySize,
			Tool:       tool,
			Renderer:   view,
		})
		if err != nil {
			view.Destroy()
			return fmt.Errorf("view %s: %w", name, err)
		}

		a.panes = append(a.panes, pane{ctrl: ctrl, view: view})
		handlers = append(handlers, ctrl)
		ctrls = append(ctrls, ctrl)
	}

	workspace.Link(ctrls)
	a.mux = workspace.NewMux(handlers, width, height, a.cfg.Window.Border)
	a.mux.OnKey(a.handleKey)
	a.router = input.NewRouter(a.mux)
	return nil
}

// handleKey takes the application keys before views see them.
func (a *App) handleKey(key input.Key, focus int) bool {
	switch key {
	case input.KeyEscape:
		a.running = false
		return true
	case input.KeyF12:
		a.screenshot(focus)
		return true
	}
	return false
}

func (a *App) screenshot(i int) {
	if i < 0 || i >= len(a.panes) {
		return
	}
	p := a.panes[i]
	w, h := p.view.Framebuffer().Size()
	path, err := a.shots.Save(p.ctrl.Name(), p.view.Framebuffer().ReadPixels(), int(w), int(h))
	if err != nil {
		a.log.Error("screenshot failed", zap.String("view", p.ctrl.Name()), zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Run renders every view once, then processes events until the window is
// closed or Escape is pressed. Views re-render from their own handlers; the
// loop only composites.
func (a *App) Run() error {
	a.running = true
	for _, p := range a.panes {
		p.ctrl.Render()
	}

	frames := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")
	for a.running {
		if a.router.Dispatch(a.window.PollEvents()...) {
			break
		}

		a.composite()
		a.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// composite blits every view's framebuffer into its window rect.
func (a *App) composite() {
	width, height := a.window.Size()
	a.renderer.BeginComposite(width, height)
	for i, r := range a.mux.Rects() {
		if r.W == 0 || r.H == 0 {
			continue
		}
		// GL window origin is bottom-left
		a.panes[i].view.Framebuffer().BlitTo(int32(r.X), int32(height-r.Y-r.H))
	}
}

// Close releases views, the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing editor")
	for _, p := range a.panes {
		p.view.Destroy()
	}
	a.panes = nil
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
