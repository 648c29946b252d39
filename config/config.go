package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/bezier"
	"github.com/gorustyt/gobezier/camera"
	"github.com/gorustyt/gobezier/picking"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "BEZIER_CONFIG"

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Grid    GridConfig    `yaml:"grid"`
	Surface SurfaceConfig `yaml:"surface"`
	Pick    PickConfig    `yaml:"pick"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position    mgl32.Vec3  `yaml:"position"`
	WorldUp     mgl32.Vec3  `yaml:"world_up"`
	Yaw         float32     `yaml:"yaw"`
	Pitch       float32     `yaml:"pitch"`
	Speed       float32     `yaml:"speed"`
	Sensitivity float32     `yaml:"sensitivity"`
	Zoom        float32     `yaml:"zoom"`
	Near        float32     `yaml:"near"`
	Far         float32     `yaml:"far"`
	Target      *mgl32.Vec3 `yaml:"target"`
}

type GridConfig struct {
	Rows   int            `yaml:"rows"`
	Cols   int            `yaml:"cols"`
	Points [][]mgl32.Vec3 `yaml:"points"`
}

type SurfaceConfig struct {
	Resolution int `yaml:"resolution"`
}

type PickConfig struct {
	Threshold float32 `yaml:"threshold"`
}

type RenderConfig struct {
	PointSize  float32    `yaml:"point_size"`
	LineWidth  float32    `yaml:"line_width"`
	Background mgl32.Vec4 `yaml:"background"`
	ShowHud    bool       `yaml:"show_hud"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

func (cfg *Config) Reset() {
	cfg.Window = WindowConfig{Width: 800, Height: 600, Title: "Bezier Surface Editor"}
	cfg.Camera = CameraConfig{
		Position:    mgl32.Vec3{0, 0, 7},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         camera.DefaultYaw,
		Pitch:       camera.DefaultPitch,
		Speed:       camera.DefaultSpeed,
		Sensitivity: camera.DefaultSensitivity,
		Zoom:        camera.DefaultZoom,
		Near:        0.1,
		Far:         100,
	}
	cfg.Grid = GridConfig{Rows: 5, Cols: 5, Points: bezier.DefaultPoints()}
	cfg.Surface = SurfaceConfig{Resolution: 50}
	cfg.Pick = PickConfig{Threshold: picking.DefaultThreshold}
	cfg.Render = RenderConfig{
		PointSize:  5,
		LineWidth:  2,
		Background: mgl32.Vec4{0.95, 0.95, 0.95, 1},
		ShowHud:    true,
	}
	cfg.Log = LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Console:    true,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err = cfg.Parse(data); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by EnvPath, or the defaults when unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Parse overlays a YAML document on cfg and validates the result. Changing
// the grid size without giving points drops the preset.
func (cfg *Config) Parse(data []byte) error {
	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	points := cfg.Grid.Points
	cfg.Grid.Points = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Grid.Points == nil && cfg.Grid.Rows == rows && cfg.Grid.Cols == cols {
		cfg.Grid.Points = points
	}
	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v: need 0 < near < far", cfg.Camera.Near, cfg.Camera.Far))
	}
	if cfg.Camera.Zoom < camera.MinZoom || cfg.Camera.Zoom > camera.MaxZoom {
		errs = append(errs, fmt.Errorf("zoom %v outside [%v, %v]", cfg.Camera.Zoom, camera.MinZoom, camera.MaxZoom))
	}
	if cfg.Camera.WorldUp.Len() == 0 {
		errs = append(errs, errors.New("camera world_up must not be zero"))
	}
	if cfg.Grid.Rows < 2 || cfg.Grid.Cols < 2 {
		errs = append(errs, fmt.Errorf("grid %dx%d: need at least 2x2 control points", cfg.Grid.Rows, cfg.Grid.Cols))
	}
	if cfg.Grid.Points != nil {
		if len(cfg.Grid.Points) != cfg.Grid.Rows {
			errs = append(errs, fmt.Errorf("grid has %d rows of points, want %d", len(cfg.Grid.Points), cfg.Grid.Rows))
		}
		for i, row := range cfg.Grid.Points {
			if len(row) != cfg.Grid.Cols {
				errs = append(errs, fmt.Errorf("grid row %d has %d points, want %d", i, len(row), cfg.Grid.Cols))
			}
		}
	}
	if cfg.Surface.Resolution < 2 {
		errs = append(errs, fmt.Errorf("surface resolution %d must be at least 2", cfg.Surface.Resolution))
	}
	if cfg.Pick.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("pick threshold %v must be positive", cfg.Pick.Threshold))
	}
	return errors.Join(errs...)
}

// Aspect is the fixed projection aspect ratio.
func (cfg *Config) Aspect() float32 {
	return float32(cfg.Window.Width) / float32(cfg.Window.Height)
}

// ControlGrid builds the initial control grid: the configured points, or a
// flat grid when none are given.
func (cfg *Config) ControlGrid() (*bezier.Grid, error) {
	if cfg.Grid.Points == nil {
		return bezier.NewFlatGrid(cfg.Grid.Rows, cfg.Grid.Cols), nil
	}
	return bezier.NewGridFromRows(cfg.Grid.Points)
}

// NewCamera builds the camera described by the config.
func (cfg *Config) NewCamera() *camera.Camera {
	c := camera.NewCamera(cfg.Camera.Position, cfg.Camera.WorldUp, cfg.Camera.Yaw, cfg.Camera.Pitch)
	c.MovementSpeed = cfg.Camera.Speed
	c.MouseSensitivity = cfg.Camera.Sensitivity
	c.Zoom = cfg.Camera.Zoom
	if cfg.Camera.Target != nil {
		c.LookAt(*cfg.Camera.Target)
	}
	return c
}
