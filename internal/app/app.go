package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atomicstack/dockmenu/internal/backend"
	"github.com/atomicstack/dockmenu/internal/dock"
	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/importer"
	"github.com/atomicstack/dockmenu/internal/logging"
	"github.com/atomicstack/dockmenu/internal/logging/events"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/metric"
	"github.com/atomicstack/dockmenu/internal/registry"
	"github.com/atomicstack/dockmenu/internal/ui"
)

// DefaultContainer is the container id used when neither the definition nor
// the command line names one.
const DefaultContainer = "dockmenu"

// Config describes user-provided application options.
type Config struct {
	MenuFile   string
	HTMLFile   string
	Container  string
	Width      int
	Height     int
	ShowFooter bool
	Watch      bool
}

// watchInterval is how often a watched source file is polled.
const watchInterval = 500 * time.Millisecond

// Session is a drawn menu together with the pieces that observe it.
type Session struct {
	Menu     *dock.Menu
	Document *dom.Document
	Recorder *ui.Recorder
	Menus    *registry.Registry[*dock.Menu]
	Gatherer prometheus.Gatherer

	cfg     Config
	metrics *metric.Set
}

// Load builds and draws the menu described by cfg. A definition file is drawn
// into a fresh document; a page is parsed and its container list imported.
func Load(cfg Config) (*Session, error) {
	reg := prometheus.NewRegistry()
	s := &Session{
		Recorder: ui.NewRecorder(),
		Menus:    registry.New[*dock.Menu](),
		Gatherer: reg,
		cfg:      cfg,
		metrics:  metric.NewSet(reg),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload reads the source again and replaces the menu. The recorder,
// registry and counters carry over. On error the previous menu stays.
func (s *Session) Reload() (*dock.Menu, error) {
	prevMenu, prevDoc := s.Menu, s.Document
	if err := s.load(); err != nil {
		s.Menu, s.Document = prevMenu, prevDoc
		return nil, err
	}
	return s.Menu, nil
}

func (s *Session) load() error {
	cfg := s.cfg
	dcfg := dock.Config{
		Registry: s.Menus,
		Handlers: s.Recorder,
		Loader:   s.Recorder,
		Metrics:  s.metrics,
	}

	switch {
	case cfg.MenuFile != "":
		opts, err := loadOptionsFile(cfg.MenuFile)
		if err != nil {
			return err
		}
		opts.Container = containerID(cfg.Container, opts.Container)
		opts.FromHTML = false
		s.Document = dom.NewDocument()
		s.Document.Body.AppendChild(dom.NewElement("div")).SetAttr("id", opts.Container)
		dcfg.Options = opts
	case cfg.HTMLFile != "":
		doc, err := parseDocumentFile(cfg.HTMLFile)
		if err != nil {
			return err
		}
		opts := dock.DefaultOptions()
		opts.Container = containerID(cfg.Container, "")
		opts.FromHTML = true
		s.Document = doc
		dcfg.Options = opts
	default:
		return errors.New("no menu source configured")
	}

	s.Document.Navigator = s.Recorder
	dcfg.Document = s.Document
	m, err := dock.New(dcfg)
	if err != nil {
		return err
	}
	s.Menu = m
	s.Document.SetReady()
	if m.State() != dock.StateDrawn {
		if err := m.Draw(); err != nil {
			return err
		}
	}
	if m.State() != dock.StateDrawn {
		return fmt.Errorf("container %q not found", m.Options().Container)
	}
	return nil
}

// Run bootstraps and executes the Bubble Tea preview.
func Run(cfg Config) error {
	s, err := Load(cfg)
	if err != nil {
		return err
	}
	model := ui.NewModel(s.Menu, s.Recorder, cfg.Width, cfg.Height, cfg.ShowFooter)
	if cfg.Watch {
		watcher := backend.NewWatcher(watchInterval, cfg.MenuFile, cfg.HTMLFile)
		defer watcher.Stop()
		model.WatchSource(watcher.Events(), s.Reload)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if counters, snapErr := metric.Snapshot(s.Gatherer); snapErr == nil {
		events.App.Stop(counters)
	} else {
		logging.Error(snapErr)
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Render draws the definition in path into a detached container and writes
// the container markup to w.
func Render(path, container string, w io.Writer) error {
	opts, err := loadOptionsFile(path)
	if err != nil {
		return err
	}
	opts.FromHTML = false
	element := dom.NewElement("div")
	element.SetAttr("id", containerID(container, opts.Container))
	m, err := dock.New(dock.Config{Options: opts, Element: element})
	if err != nil {
		return err
	}
	if m.State() != dock.StateDrawn {
		if err := m.Draw(); err != nil {
			return err
		}
	}
	if err := dom.RenderHTML(w, element); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Import reads the list inside container from the page in path.
func Import(path, container string) ([]menu.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	items, err := importer.ImportHTML(f, container)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return items, nil
}

func loadOptionsFile(path string) (dock.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return dock.Options{}, fmt.Errorf("open menu definition: %w", err)
	}
	defer f.Close()
	opts, err := dock.LoadOptions(f)
	if err != nil {
		return dock.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func parseDocumentFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return dom.ParseDocument(f)
}

func containerID(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	if fallback != "" {
		return fallback
	}
	return DefaultContainer
}
