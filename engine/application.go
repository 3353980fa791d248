package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ApplicationConfig struct {
	Window WindowConfig `toml:"window"`
	Assets AssetsConfig `toml:"assets"`
	Font   FontConfig   `toml:"font"`
	Log    LogConfig    `toml:"log"`
	Random RandomConfig `toml:"random"`
}

type WindowConfig struct {
	// The application name used in windowing.
	Title string `toml:"title"`
	// Window starting width and height.
	Width  int32 `toml:"width"`
	Height int32 `toml:"height"`
	// Windowing backend, "sdl" or "glfw".
	Backend string `toml:"backend"`
}

type AssetsConfig struct {
	// Root of the game data; the sound index lives below age/assets.
	Root string `toml:"root"`
	// Reload sounds when their files change while the frame loop runs.
	Watch bool `toml:"watch"`
}

type FontConfig struct {
	Family string  `toml:"family"`
	Style  string  `toml:"style"`
	Size   float64 `toml:"size"`
	// Font file, relative to the asset root unless absolute.
	File string `toml:"file"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type RandomConfig struct {
	// Seed for the engine PRNG. Zero seeds from the wall clock.
	Seed uint64 `toml:"seed"`
}

const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Window: WindowConfig{
			Title:   "age",
			Width:   800,
			Height:  600,
			Backend: BackendSDL,
		},
		Assets: AssetsConfig{
			Root: ".",
		},
		Font: FontConfig{
			Family: "DejaVu Serif",
			Style:  "Book",
			Size:   20,
			File:   "fonts/DejaVuSerif.ttf",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Backend != BackendSDL && c.Window.Backend != BackendGLFW {
		errs = append(errs, fmt.Errorf("unknown window backend %q", c.Window.Backend))
	}
	if c.Assets.Root == "" {
		errs = append(errs, errors.New("asset root must be set"))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %g", c.Font.Size))
	}
	if c.Font.File == "" {
		errs = append(errs, errors.New("font file must be set"))
	}
	return errors.Join(errs...)
}
