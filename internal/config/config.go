package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile     string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log" validate:"required"`
	SnapshotDir string `yaml:"snapshot-dir" env:"TICTACTOE_SNAPSHOT_DIR" env-default:"snapshots" validate:"required"`
	Window      Window `yaml:"window"`
	Theme       Theme  `yaml:"theme"`
	Keys        Keys   `yaml:"keys"`
	Sound       Sound  `yaml:"sound"`
}

// Window - the logical drawing surface the board is laid out on.
type Window struct {
	Width  int `yaml:"width" env:"TICTACTOE_WINDOW_WIDTH" env-default:"600" validate:"min=30,max=4096"`
	Height int `yaml:"height" env:"TICTACTOE_WINDOW_HEIGHT" env-default:"600" validate:"min=30,max=4096"`
}

type Theme struct {
	Background    string  `yaml:"background" env-default:"#1CAA9C" validate:"hexcolor"`
	Line          string  `yaml:"line" env-default:"#179187" validate:"hexcolor"`
	PlayerX       string  `yaml:"player-x" env-default:"#545454" validate:"hexcolor"`
	PlayerO       string  `yaml:"player-o" env-default:"#F2EBD3" validate:"hexcolor"`
	Highlight     string  `yaml:"highlight" env-default:"#FFFFFF" validate:"hexcolor"`
	LineWidth     float64 `yaml:"line-width" env-default:"15" validate:"gt=0"`
	FigureWidth   float64 `yaml:"figure-width" env-default:"15" validate:"gt=0"`
	FigurePadding float64 `yaml:"figure-padding" env-default:"30" validate:"gte=0"`
}

type Keys struct {
	Restart  string `yaml:"restart" env-default:"r" validate:"len=1,nefield=Quit,nefield=Snapshot"`
	Quit     string `yaml:"quit" env-default:"q" validate:"len=1,nefield=Snapshot"`
	Snapshot string `yaml:"snapshot" env-default:"s" validate:"len=1"`
}

type Sound struct {
	Mute bool `yaml:"mute" env:"TICTACTOE_MUTE"`
}

// Load - reads the config file when it exists, then the environment, then validates.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	// bindings match case-insensitively, so compare them that way too
	config.Keys.normalize()

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateFigurePadding, Config{})

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Keys) normalize() {
	that.Restart = strings.ToLower(that.Restart)
	that.Quit = strings.ToLower(that.Quit)
	that.Snapshot = strings.ToLower(that.Snapshot)
}

// validateFigurePadding - figures must keep a positive size inside the smallest cell.
func validateFigurePadding(sl validator.StructLevel) {
	config, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	cell := float64(min(config.Window.Width, config.Window.Height)) / entity.Size
	if config.Theme.FigurePadding >= cell/2 {
		sl.ReportError(config.Theme.FigurePadding, "Theme.FigurePadding", "FigurePadding", "lthalfcell", "")
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
