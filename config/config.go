// Package config loads game settings. Later sources override earlier ones:
//
//	defaults < YAML file < environment (including .env) < flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/brensch/constrictor/logging"
)

// MinSize is the smallest board edge that fits the starting layout.
const MinSize = 8

const (
	EnvConfig   = "CONSTRICTOR_CONFIG"
	EnvWidth    = "CONSTRICTOR_WIDTH"
	EnvHeight   = "CONSTRICTOR_HEIGHT"
	EnvTick     = "CONSTRICTOR_TICK"
	EnvSeed     = "CONSTRICTOR_SEED"
	EnvLogPath  = "CONSTRICTOR_LOG_PATH"
	EnvLogLevel = "CONSTRICTOR_LOG_LEVEL"
	EnvSound    = "CONSTRICTOR_SOUND"
)

// DotEnvPath is the optional dotenv file read before the environment.
var DotEnvPath = ".env"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Tick   time.Duration `yaml:"tick"`
	// Seed for food placement; 0 picks one from the clock.
	Seed     int64  `yaml:"seed"`
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
	Sound    bool   `yaml:"sound"`
}

func Default() Config {
	return Config{
		Width:    32,
		Height:   32,
		Tick:     75 * time.Millisecond,
		LogPath:  "constrictor.log",
		LogLevel: "info",
	}
}

// Load builds the config for a program called name from its command line
// arguments (without the program name).
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", DotEnvPath, err)
	}

	def := Default()
	var fromFlags Config
	var configPath string

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&configPath, "config", os.Getenv(EnvConfig), "YAML config file (env "+EnvConfig+")")
	fset.IntVar(&fromFlags.Width, "width", def.Width, "Board width in cells")
	fset.IntVar(&fromFlags.Height, "height", def.Height, "Board height in cells")
	fset.DurationVar(&fromFlags.Tick, "tick", def.Tick, "Time between simulation steps")
	fset.Int64Var(&fromFlags.Seed, "seed", def.Seed, "Food placement seed (0 = random)")
	fset.StringVar(&fromFlags.LogPath, "log-path", def.LogPath, "Log file (empty disables logging)")
	fset.StringVar(&fromFlags.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	fset.BoolVar(&fromFlags.Sound, "sound", def.Sound, "Play sound effects")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if configPath != "" {
		if err := readFile(configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = fromFlags.Width
		case "height":
			cfg.Height = fromFlags.Height
		case "tick":
			cfg.Tick = fromFlags.Tick
		case "seed":
			cfg.Seed = fromFlags.Seed
		case "log-path":
			cfg.LogPath = fromFlags.LogPath
		case "log-level":
			cfg.LogLevel = fromFlags.LogLevel
		case "sound":
			cfg.Sound = fromFlags.Sound
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < MinSize || c.Height < MinSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d", ErrInvalid, c.Width, c.Height, MinSize, MinSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := envInt(EnvWidth, &cfg.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &cfg.Height); err != nil {
		return err
	}
	if val := os.Getenv(EnvTick); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		cfg.Tick = d
	}
	if val := os.Getenv(EnvSeed); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if val, ok := os.LookupEnv(EnvLogPath); ok {
		cfg.LogPath = val
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv(EnvSound); val != "" {
		cfg.Sound = val == "true" || val == "1" || val == "yes"
	}
	return nil
}

func envInt(key string, dst *int) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
