package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/3-lines-studio/welcome/internal/core"
)

const (
	PortVar     = "PORT"
	DevVar      = "APP_DEV"
	LogLevelVar = "LOG_LEVEL"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"
	DefaultDotenv   = ".env"
)

var ErrInvalidPort = errors.New("invalid port")

type LookupFunc func(key string) (string, bool)

type Config struct {
	Port     string
	Dev      bool
	LogLevel string
	Lookup   LookupFunc
}

// Environment resolves the page label through Lookup at call time, so a
// long-running server reflects the value of each render.
func (c Config) Environment() string {
	lookup := c.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return core.ResolveEnvironment(lookup(core.EnvironmentVar))
}

// LoadDotenv reads KEY=VALUE pairs into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func Load(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Config{
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
		Lookup:   lookup,
	}

	if port, ok := lookup(PortVar); ok && port != "" {
		cfg.Port = port
	}
	if err := ValidatePort(cfg.Port); err != nil {
		return Config{}, err
	}

	if level, ok := lookup(LogLevelVar); ok && level != "" {
		cfg.LogLevel = level
	}

	cfg.Dev = IsDev(lookup)

	return cfg, nil
}

func IsDev(lookup LookupFunc) bool {
	v, _ := lookup(DevVar)
	return v == "1"
}

func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}
	return nil
}
