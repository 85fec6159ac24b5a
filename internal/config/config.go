package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/dockmenu/internal/app"
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

const (
	envMenuFile   = "DOCKMENU_FILE"
	envHTMLFile   = "DOCKMENU_HTML"
	envContainer  = "DOCKMENU_CONTAINER"
	envWidth      = "DOCKMENU_WIDTH"
	envHeight     = "DOCKMENU_HEIGHT"
	envShowFooter = "DOCKMENU_FOOTER"
	envWatch      = "DOCKMENU_WATCH"
	envTrace      = "DOCKMENU_TRACE"
	envLogFile    = "DOCKMENU_LOG_FILE"
)

// Values holds the flag destinations. Defaults come from the environment, so
// a flag given on the command line always wins.
type Values struct {
	menuFile  *string
	htmlFile  *string
	container *string
	width     *int
	height    *int
	footer    *bool
	watch     *bool
	trace     *bool
	logFile   *string
}

// Register defines the shared flags on fs with environment fallbacks taken
// from environ.
func Register(fs *pflag.FlagSet, environ []string) *Values {
	env := parseEnv(environ)
	return &Values{
		menuFile:  fs.StringP("file", "f", envOrDefault(env, envMenuFile, ""), "menu definition file (YAML)"),
		htmlFile:  fs.String("html", envOrDefault(env, envHTMLFile, ""), "page whose container list is imported"),
		container: fs.String("container", envOrDefault(env, envContainer, ""), "id of the container element"),
		width:     fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:    fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:    fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		watch:     fs.Bool("watch", envOrBool(env, envWatch, false), "reload the preview when the menu source changes"),
		trace:     fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:   fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config resolves the parsed values. args are recorded for the startup trace.
func (v *Values) Config(args []string) (Config, error) {
	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}
	if *v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *v.height)
	}
	return Config{
		App: app.Config{
			MenuFile:   *v.menuFile,
			HTMLFile:   *v.htmlFile,
			Container:  *v.container,
			Width:      *v.width,
			Height:     *v.height,
			ShowFooter: *v.footer,
			Watch:      *v.watch,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Flags: map[string]string{
			"file":      *v.menuFile,
			"html":      *v.htmlFile,
			"container": *v.container,
			"width":     strconv.Itoa(*v.width),
			"height":    strconv.Itoa(*v.height),
			"footer":    strconv.FormatBool(*v.footer),
			"watch":     strconv.FormatBool(*v.watch),
			"trace":     strconv.FormatBool(*v.trace),
			"logFile":   *v.logFile,
		},
		Args: append([]string(nil), args...),
	}, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("dockmenu", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	values := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return values.Config(args)
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

// Validate checks that a preview has exactly one menu source.
func Validate(cfg Config) error {
	switch {
	case cfg.App.MenuFile == "" && cfg.App.HTMLFile == "":
		return errors.New("one of --file or --html is required")
	case cfg.App.MenuFile != "" && cfg.App.HTMLFile != "":
		return errors.New("--file and --html are mutually exclusive")
	case cfg.App.HTMLFile != "" && cfg.App.Container == "":
		return errors.New("--html needs --container")
	}
	return nil
}
