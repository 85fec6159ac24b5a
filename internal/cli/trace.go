package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/dockmenu/internal/config"
)

// startupTracePayload bundles runtime context for trace logging. command is
// the full name of the subcommand being run.
func startupTracePayload(cfg config.Config, command string) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"command": command,
		"flags":   flags,
		"config":  cfg,
		"source":  menuSource(cfg),
		"tty":     collectTTYDetails(),
	}
	addPathOrError(payload, "executable", os.Executable)
	addPathOrError(payload, "cwd", os.Getwd)
	return payload
}

func menuSource(cfg config.Config) map[string]string {
	switch {
	case cfg.App.MenuFile != "":
		return map[string]string{"kind": "definition", "path": cfg.App.MenuFile}
	case cfg.App.HTMLFile != "":
		return map[string]string{"kind": "page", "path": cfg.App.HTMLFile, "container": cfg.App.Container}
	}
	return nil
}

func addPathOrError(payload map[string]interface{}, key string, lookup func() (string, error)) {
	value, err := lookup()
	if err != nil {
		payload[key+"Error"] = err.Error()
		return
	}
	payload[key] = value
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes stdin, stdout and stderr in that order. The first
// terminal with a readable size is reported as detected.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := probeTTY(f)
		if details.Detected == nil && probe.IsTerminal && probe.Error == "" {
			details.Detected = &ttyDetected{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(f *os.File) ttyProbeResult {
	result := ttyProbeResult{Name: ttyName(f)}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return result
	}
	result.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width, result.Height = width, height
	return result
}

func ttyName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	default:
		return "stderr"
	}
}
