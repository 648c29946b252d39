package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, mgl32.Vec3{0, 0, 7}, cfg.Camera.Position)
	assert.Equal(t, 50, cfg.Surface.Resolution)
	assert.Equal(t, float32(0.2), cfg.Pick.Threshold)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.InDelta(t, 800.0/600.0, cfg.Aspect(), 1e-6)

	g, err := cfg.ControlGrid()
	require.NoError(t, err)
	assert.Equal(t, 25, g.Len())
	assert.Equal(t, mgl32.Vec3{2, 6, 2}, g.At(2, 2))
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	doc := `
window:
  width: 1024
camera:
  position: [1, 2, 3]
  speed: 5
surface:
  resolution: 20
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep their default")
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(5), cfg.Camera.Speed)
	assert.Equal(t, 20, cfg.Surface.Resolution)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Len(t, cfg.Grid.Points, 5, "preset kept when the grid size is unchanged")
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pick:\n  threshold: 0.5\n"), 0o644))
	t.Setenv(EnvPath, path)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), cfg.Pick.Threshold)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResizedGridIsFlat(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Parse([]byte("grid:\n  rows: 3\n  cols: 4\n")))
	assert.Nil(t, cfg.Grid.Points)
	g, err := cfg.ControlGrid()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, g.At(2, 3))
}

func TestExplicitPoints(t *testing.T) {
	cfg := NewConfig()
	doc := `
grid:
  rows: 2
  cols: 2
  points:
    - [[0, 0, 1], [1, 0, 1]]
    - [[0, 0, 0], [1, 3, 0]]
`
	require.NoError(t, cfg.Parse([]byte(doc)))
	g, err := cfg.ControlGrid()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 3, 0}, g.At(1, 1))
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Window.Width = 0
	cfg.Camera.Near = 0
	cfg.Camera.Zoom = 90
	cfg.Grid.Rows = 1
	cfg.Surface.Resolution = 1
	cfg.Pick.Threshold = 0
	err := cfg.Validate()
	require.Error(t, err)
	for _, frag := range []string{"window size", "clip planes", "zoom", "grid 1x5", "resolution", "threshold"} {
		assert.Contains(t, err.Error(), frag)
	}
}

func TestValidateMismatchedPoints(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Parse([]byte("grid:\n  rows: 5\n  cols: 5\n  points:\n    - [[0, 0, 0]]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid has 1 rows")
	assert.Contains(t, err.Error(), "grid row 0 has 1 points")
}

func TestNewCamera(t *testing.T) {
	cfg := NewConfig()
	cfg.Camera.Speed = 4
	c := cfg.NewCamera()
	assert.Equal(t, float32(4), c.MovementSpeed)
	assert.Equal(t, float32(45), c.Zoom)
	assert.Equal(t, mgl32.Vec3{0, 0, 7}, c.Position)

	target := mgl32.Vec3{0, 0, 0}
	cfg.Camera.Target = &target
	c = cfg.NewCamera()
	assert.InDelta(t, -90, c.Yaw, 1e-4)
}
