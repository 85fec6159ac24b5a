package events

import "github.com/atomicstack/dockmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Stop records the counters collected while the program ran.
func (AppTracer) Stop(counters map[string]float64) {
	logging.Trace("app.stop", map[string]interface{}{"counters": counters})
}
