package config

import (
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MenuFile != "" || cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatal("expected trace disabled by default")
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"DOCKMENU_HTML=page.html",
		"DOCKMENU_CONTAINER=nav",
		"DOCKMENU_WIDTH=100",
		"DOCKMENU_FOOTER=true",
		"DOCKMENU_WATCH=true",
		"DOCKMENU_TRACE=1",
		"DOCKMENU_LOG_FILE=/tmp/dockmenu.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.HTMLFile != "page.html" || cfg.App.Container != "nav" {
		t.Fatalf("expected html source from env, got %#v", cfg.App)
	}
	if cfg.App.Width != 100 || !cfg.App.ShowFooter || !cfg.App.Watch {
		t.Fatalf("expected width, footer and watch from env, got %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/dockmenu.log" {
		t.Fatalf("expected logging from env, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"DOCKMENU_WIDTH=100", "DOCKMENU_FILE=env.yaml"}
	cfg, err := LoadArgs([]string{"-f", "menu.yaml", "--width", "60"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MenuFile != "menu.yaml" || cfg.App.Width != 60 {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if cfg.Flags["file"] != "menu.yaml" || cfg.Flags["width"] != "60" {
		t.Fatalf("unexpected flag record %v", cfg.Flags)
	}
	if len(cfg.Args) != 4 {
		t.Fatalf("expected args recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DOCKMENU_HEIGHT=tall", "DOCKMENU_FOOTER=maybe", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks for malformed values, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		args []string
		ok   bool
	}{
		{"menu file", []string{"-f", "menu.yaml"}, true},
		{"html with container", []string{"--html", "page.html", "--container", "nav"}, true},
		{"no source", nil, false},
		{"both sources", []string{"-f", "menu.yaml", "--html", "page.html", "--container", "nav"}, false},
		{"html without container", []string{"--html", "page.html"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(tc.args, nil)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if err := Validate(cfg); (err == nil) != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, err)
			}
		})
	}
}
