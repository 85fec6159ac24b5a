package cli

import (
	"testing"

	"github.com/atomicstack/dockmenu/internal/app"
	"github.com/atomicstack/dockmenu/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestMenuSourceForPage(t *testing.T) {
	cfg := config.Config{App: app.Config{HTMLFile: "page.html", Container: "nav"}}
	source := menuSource(cfg)
	if source["kind"] != "page" || source["container"] != "nav" {
		t.Fatalf("unexpected source %v", source)
	}
	if menuSource(config.Config{}) != nil {
		t.Fatal("expected no source without files")
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuFile:   "menu.yaml",
			Container:  "nav",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"file":      "menu.yaml",
			"container": "nav",
			"width":     "80",
			"footer":    "true",
		},
		Args: []string{"preview", "-f", "menu.yaml"},
	}

	payload := startupTracePayload(cfg, "dockmenu preview")

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["file"] != "menu.yaml" {
		t.Fatalf("expected file flag %q, got %v", "menu.yaml", flagsValue["file"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["command"] != "dockmenu preview" {
		t.Fatalf("expected command in payload, got %v", payload["command"])
	}
	source, ok := payload["source"].(map[string]string)
	if !ok || source["kind"] != "definition" || source["path"] != "menu.yaml" {
		t.Fatalf("expected definition source, got %v", payload["source"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
