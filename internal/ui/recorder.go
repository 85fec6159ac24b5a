package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/interaction"
	"github.com/atomicstack/dockmenu/internal/menu"
)

// Recorder plays the browser side of a previewed menu. Navigations, partner
// loads and handler calls are written down instead of performed, and every
// handler key resolves to a recording handler.
type Recorder struct {
	mu    sync.Mutex
	notes []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate implements dom.Navigator.
func (r *Recorder) Navigate(url, target string) {
	note := "navigate " + url
	if target != "" {
		note += fmt.Sprintf(" (target %s)", target)
	}
	r.add(note)
}

// Load implements interaction.ContentLoader.
func (r *Recorder) Load(url, target, method string) {
	note := fmt.Sprintf("load %s into %s", url, target)
	if method != "" {
		note += " via " + method
	}
	r.add(note)
}

// Lookup implements interaction.HandlerRegistry.
func (r *Recorder) Lookup(key string) (interaction.Handler, bool) {
	return func(item *menu.Item, _ *dom.Event) {
		r.add(fmt.Sprintf("handler %s(%s)", key, item.Text))
	}, true
}

// Take returns and clears the notes recorded so far.
func (r *Recorder) Take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := r.notes
	r.notes = nil
	return notes
}

// Summary joins notes for display; an empty set reads "no action".
func Summary(notes []string) string {
	if len(notes) == 0 {
		return "no action"
	}
	return strings.Join(notes, "; ")
}

func (r *Recorder) add(note string) {
	r.mu.Lock()
	r.notes = append(r.notes, note)
	r.mu.Unlock()
}
