// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all editor settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Views      []ViewConfig     `yaml:"views"`
	Grid       GridConfig       `yaml:"grid"`
	Camera     CameraConfig     `yaml:"camera"`
	Editor     EditorConfig     `yaml:"editor"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	// Border is subtracted from each side of every view, in pixels.
	Border int `yaml:"border"`
}

// ViewConfig names one pane of the 2x2 layout.
// Kind is one of perspective, xy, yz, zx.
type ViewConfig struct {
	Kind string `yaml:"kind"`
}

// GridConfig holds lattice and scene extent settings.
type GridConfig struct {
	DraftSize  float32 `yaml:"draft_size"`
	Divisions  int     `yaml:"divisions"`
	CellSize   float32 `yaml:"cell_size"`
	EntitySize float32 `yaml:"entity_size"`
}

// CameraConfig holds projection settings shared by every view.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"` // degrees, perspective only
	Near float32 `yaml:"near"`
}

// EditorConfig holds tool settings for the orthographic views.
type EditorConfig struct {
	Tool       string `yaml:"tool"`
	Background uint32 `yaml:"background"`
	// Sun overrides the default voxel light when set.
	Sun *SunConfig `yaml:"sun,omitempty"`
}

// SunConfig places the directional light. Angles are in degrees.
type SunConfig struct {
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
	Ambient   float32 `yaml:"ambient"`
}

// ScreenshotConfig holds F12 capture settings.
// Format is png or bmp.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference editor values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "voxedit",
			Width:  1280,
			Height: 720,
			VSync:  true,
			Border: 1,
		},
		Views: []ViewConfig{
			{Kind: "perspective"},
			{Kind: "xy"},
			{Kind: "yz"},
			{Kind: "zx"},
		},
		Grid: GridConfig{
			DraftSize:  1000,
			Divisions:  20,
			CellSize:   50,
			EntitySize: 50,
		},
		Camera: CameraConfig{
			FOV:  45,
			Near: 1,
		},
		Editor: EditorConfig{
			Tool:       "translate",
			Background: 0xf0f0f0,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var (
	ErrInvalidWindow = errors.New("window size must be positive")
	ErrInvalidGrid   = errors.New("grid sizes must be positive")
	ErrInvalidCamera = errors.New("camera near plane must be positive and below draft size")
	ErrTooManyViews  = errors.New("at most 4 views are supported")
)

// Validate checks values that would otherwise produce a degenerate camera or
// lattice. View kinds and tool names are not checked here: unknown ones are
// configuration warnings at runtime, not load failures.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Grid.DraftSize <= 0 || c.Grid.CellSize <= 0 || c.Grid.EntitySize <= 0 || c.Grid.Divisions <= 0 {
		return fmt.Errorf("%w: draft=%v cell=%v entity=%v divisions=%d",
			ErrInvalidGrid, c.Grid.DraftSize, c.Grid.CellSize, c.Grid.EntitySize, c.Grid.Divisions)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Grid.DraftSize {
		return fmt.Errorf("%w: near=%v", ErrInvalidCamera, c.Camera.Near)
	}
	if len(c.Views) > 4 {
		return fmt.Errorf("%w: got %d", ErrTooManyViews, len(c.Views))
	}
	return nil
}
