package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/atomicstack/loandesk/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Error marks a configuration problem. Callers exit with status 2 for it.
type Error struct {
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// IsError reports whether err is, or wraps, a configuration error.
func IsError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr)
}

const (
	envSection       = "LOANDESK_SECTION"
	envWidth         = "LOANDESK_WIDTH"
	envHeight        = "LOANDESK_HEIGHT"
	envShowFooter    = "LOANDESK_FOOTER"
	envVerbose       = "LOANDESK_VERBOSE"
	envTrace         = "LOANDESK_TRACE"
	envLogFile       = "LOANDESK_LOG_FILE"
	envDataPath      = "LOANDESK_DATA"
	envWatch         = "LOANDESK_WATCH"
	envWatchInterval = "LOANDESK_WATCH_INTERVAL"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Binding holds flag values registered on a FlagSet until they are turned
// into a Config.
type Binding struct {
	section       string
	width         int
	height        int
	footer        bool
	trace         bool
	verbose       bool
	logFile       string
	dataPath      string
	watch         bool
	watchInterval time.Duration
}

// Bind registers every option on fs. Defaults come from environ, so flags
// override the environment and the environment overrides built-in values.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	b := &Binding{}
	fs.StringVarP(&b.section, "section", "s", envOrDefault(env, envSection, ""), "section to open at startup (unknown ids open borrowers)")
	fs.IntVar(&b.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&b.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&b.footer, "footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	fs.BoolVar(&b.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.BoolVar(&b.verbose, "verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	fs.StringVar(&b.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	fs.StringVar(&b.dataPath, "data", envOrDefault(env, envDataPath, ""), "YAML dataset to load instead of the built-in sample data")
	fs.BoolVar(&b.watch, "watch", envOrBool(env, envWatch, false), "reload the --data file when it changes")
	fs.DurationVar(&b.watchInterval, "watch-interval", envOrDuration(env, envWatchInterval, app.DefaultWatchInterval), "how often to check the --data file")
	return b
}

// Config validates the bound values and assembles the runtime configuration.
func (b *Binding) Config(args []string) (Config, error) {
	if b.width < 0 {
		return Config{}, &Error{Err: fmt.Errorf("width must be >= 0 (got %d)", b.width)}
	}
	if b.height < 0 {
		return Config{}, &Error{Err: fmt.Errorf("height must be >= 0 (got %d)", b.height)}
	}
	if b.watchInterval <= 0 {
		return Config{}, &Error{Err: fmt.Errorf("watch-interval must be > 0 (got %s)", b.watchInterval)}
	}

	cfg := Config{
		App: app.Config{
			Section:       strings.TrimSpace(b.section),
			Width:         b.width,
			Height:        b.height,
			ShowFooter:    b.footer,
			Verbose:       b.verbose,
			DataPath:      b.dataPath,
			Watch:         b.watch,
			WatchInterval: b.watchInterval,
		},
		Logging: Logging{
			FilePath: b.logFile,
			Trace:    b.trace,
		},
		Flags: map[string]string{
			"section":       b.section,
			"width":         strconv.Itoa(b.width),
			"height":        strconv.Itoa(b.height),
			"footer":        strconv.FormatBool(b.footer),
			"trace":         strconv.FormatBool(b.trace),
			"verbose":       strconv.FormatBool(b.verbose),
			"logFile":       b.logFile,
			"data":          b.dataPath,
			"watch":         strconv.FormatBool(b.watch),
			"watchInterval": b.watchInterval.String(),
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("loandesk", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, &Error{Err: err}
	}
	return b.Config(args)
}

// Environ returns the process environment with values from the dotenv file
// at path added underneath. Variables already set in the environment win.
// A missing file is not an error.
func Environ(path string) []string {
	return mergeDotEnv(path, os.Environ())
}

func mergeDotEnv(path string, environ []string) []string {
	values, err := godotenv.Read(path)
	if err != nil {
		return environ
	}
	set := parseEnv(environ)
	merged := append([]string(nil), environ...)
	for key, value := range values {
		if _, ok := set[key]; ok {
			continue
		}
		merged = append(merged, key+"="+value)
	}
	return merged
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks combinations that individual flags cannot.
func Validate(cfg Config) error {
	if cfg.App.Watch && cfg.App.DataPath == "" {
		return &Error{Err: errors.New("--watch needs a --data file")}
	}
	if cfg.App.DataPath != "" {
		info, err := os.Stat(cfg.App.DataPath)
		if err != nil {
			return &Error{Err: fmt.Errorf("data file: %w", err)}
		}
		if info.IsDir() {
			return &Error{Err: fmt.Errorf("data file %s is a directory", cfg.App.DataPath)}
		}
	}
	return nil
}
