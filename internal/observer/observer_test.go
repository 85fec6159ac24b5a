package observer

import (
	"reflect"
	"testing"
)

func TestFireDeliversInRegistrationOrder(t *testing.T) {
	var e Emitter[string]
	var got []string
	e.On("draw", func(p string) { got = append(got, "first:"+p) })
	e.On("draw", func(p string) { got = append(got, "second:"+p) })
	e.On("other", func(p string) { got = append(got, "other:"+p) })

	e.Fire("draw", "x")
	want := []string{"first:x", "second:x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOffRemovesOnlyThatListener(t *testing.T) {
	var e Emitter[int]
	total := 0
	id := e.On("n", func(v int) { total += v })
	e.On("n", func(v int) { total += 10 * v })
	e.Off("n", id)
	e.Fire("n", 1)
	if total != 10 {
		t.Fatalf("expected only second listener, total=%d", total)
	}
	if e.Count("n") != 1 {
		t.Fatalf("expected 1 listener, got %d", e.Count("n"))
	}
}

func TestListenerAddedDuringFireWaitsForNextFire(t *testing.T) {
	var e Emitter[struct{}]
	calls := 0
	e.On("x", func(struct{}) {
		calls++
		e.On("x", func(struct{}) { calls += 100 })
	})
	e.Fire("x", struct{}{})
	if calls != 1 {
		t.Fatalf("expected 1 call on first fire, got %d", calls)
	}
}

func TestZeroValueIsUsable(t *testing.T) {
	var e Emitter[int]
	e.Off("missing", 3)
	e.Fire("missing", 1)
}
