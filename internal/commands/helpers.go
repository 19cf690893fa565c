package commands

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/JoodasCode/ignorethem-sub001/pkg/output"
	"github.com/JoodasCode/ignorethem-sub001/pkg/registry"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Config is the optional ignorethem.yml in the working directory.
type Config struct {
	TemplatesDir   string `mapstructure:"templates_dir"`
	DefaultHosting string `mapstructure:"default_hosting"`
}

// loadConfig reads ignorethem.yml if present; a missing file just means
// defaults.
func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("ignorethem")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvPrefix("IGNORETHEM")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading ignorethem.yml: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing ignorethem.yml: %w", err)
	}
	return &cfg, nil
}

// loadRegistry opens the template catalog: an explicit --templates dir
// wins, then ignorethem.yml's templates_dir, then the embedded catalog.
// The parsed config is returned so callers can apply its other defaults.
// Load-time degradations print in verbose mode.
func loadRegistry(templatesDir string) (*registry.Registry, *Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if templatesDir == "" {
		templatesDir = cfg.TemplatesDir
	}

	var reg *registry.Registry
	if templatesDir != "" {
		reg, err = registry.LoadDir(templatesDir)
	} else {
		reg, err = registry.Default()
	}
	if err != nil {
		return nil, nil, err
	}

	for _, w := range reg.Warnings() {
		output.Verbose(w)
	}
	output.Verbose(fmt.Sprintf("Loaded %d templates", reg.Len()))
	return reg, cfg, nil
}

// applyConfigDefaults fills selection gaps from ignorethem.yml. An
// explicit --hosting flag always wins over the config default.
func applyConfigDefaults(sel *stack.SelectionSet, hostingFlagSet bool, cfg *Config) {
	if !hostingFlagSet && cfg.DefaultHosting != "" {
		sel.Hosting = cfg.DefaultHosting
	}
}

// exitErr prints an error and exits non-zero.
func exitErr(err error) {
	output.Error(err.Error())
	os.Exit(1)
}
