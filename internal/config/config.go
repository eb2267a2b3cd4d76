package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/yada/internal/diet"
	"github.com/gorewood/yada/internal/output"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.yaml"

// Default catalog and log file names inside the data directory.
const (
	DefaultBasicFoodsFile     = "basic_foods.txt"
	DefaultCompositeFoodsFile = "composite_foods.txt"
	DefaultFoodLogFile        = "daily_food_logs.txt"
)

// Config is the yada configuration, stored as yaml.
type Config struct {
	// DataDir is where the catalog and log files live.
	// Defaults to the current working directory.
	DataDir string `yaml:"data_dir,omitempty"`

	BasicFoodsFile     string `yaml:"basic_foods_file,omitempty"`
	CompositeFoodsFile string `yaml:"composite_foods_file,omitempty"`
	FoodLogFile        string `yaml:"food_log_file,omitempty"`

	// Strategy selects the calorie target equation:
	// harris-benedict (default) or mifflin-st-jeor.
	Strategy string `yaml:"strategy,omitempty"`

	Profile Profile `yaml:"profile,omitempty"`
}

// Profile is the stored diet profile.
type Profile struct {
	Gender        string  `yaml:"gender,omitempty"`
	WeightKG      float64 `yaml:"weight_kg,omitempty"`
	HeightCM      float64 `yaml:"height_cm,omitempty"`
	Age           int     `yaml:"age,omitempty"`
	ActivityLevel string  `yaml:"activity_level,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		BasicFoodsFile:     DefaultBasicFoodsFile,
		CompositeFoodsFile: DefaultCompositeFoodsFile,
		FoodLogFile:        DefaultFoodLogFile,
	}
}

// Load reads the configuration from path.
// A missing file yields the default configuration. Unset fields fall back
// to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read config: "+path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, output.NewUserError("invalid config file " + path + ": " + err.Error())
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault reads the configuration from the config directory.
func LoadDefault() (*Config, error) {
	return Load(filepath.Join(Dir(), FileName))
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize config", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create config directory", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to write config: "+path, err)
	}
	return nil
}

// applyDefaults fills unset file names with their defaults.
func (c *Config) applyDefaults() {
	if c.BasicFoodsFile == "" {
		c.BasicFoodsFile = DefaultBasicFoodsFile
	}
	if c.CompositeFoodsFile == "" {
		c.CompositeFoodsFile = DefaultCompositeFoodsFile
	}
	if c.FoodLogFile == "" {
		c.FoodLogFile = DefaultFoodLogFile
	}
}

// BasicFoodsPath returns the full path of the basic foods catalog file.
func (c *Config) BasicFoodsPath() string {
	return filepath.Join(c.DataDir, c.BasicFoodsFile)
}

// CompositeFoodsPath returns the full path of the composite foods catalog file.
func (c *Config) CompositeFoodsPath() string {
	return filepath.Join(c.DataDir, c.CompositeFoodsFile)
}

// FoodLogPath returns the full path of the daily food log file.
func (c *Config) FoodLogPath() string {
	return filepath.Join(c.DataDir, c.FoodLogFile)
}

// DietProfile converts the stored profile into a diet.Profile.
// Returns a user error when the profile is incomplete or has unknown
// gender or activity level names.
func (c *Config) DietProfile() (diet.Profile, error) {
	if c.Profile.WeightKG == 0 || c.Profile.HeightCM == 0 || c.Profile.Age == 0 {
		return diet.Profile{}, output.NewUserError(
			"diet profile is not configured (set profile.gender, weight_kg, height_cm, age, activity_level in " + FileName + ")")
	}
	gender, err := diet.ParseGender(c.Profile.Gender)
	if err != nil {
		return diet.Profile{}, output.NewUserError(err.Error())
	}
	activity := diet.Sedentary
	if c.Profile.ActivityLevel != "" {
		activity, err = diet.ParseActivityLevel(c.Profile.ActivityLevel)
		if err != nil {
			return diet.Profile{}, output.NewUserError(err.Error())
		}
	}
	return diet.Profile{
		Gender:   gender,
		WeightKG: c.Profile.WeightKG,
		HeightCM: c.Profile.HeightCM,
		Age:      c.Profile.Age,
		Activity: activity,
	}, nil
}

// TargetStrategy resolves the configured calorie target strategy.
func (c *Config) TargetStrategy() (diet.TargetStrategy, error) {
	strategy, err := diet.StrategyByName(c.Strategy)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	return strategy, nil
}
