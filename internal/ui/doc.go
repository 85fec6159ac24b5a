// Package ui contains the Bubble Tea program that previews a drawn menu in
// the terminal. The preview does not re-implement menu behaviour: it drives
// the rendered element tree with the same events a pointer would produce and
// shows what the menu did in response.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (navigation for key presses, scrolling for the mouse wheel,
//     click results from the command bus).
//   - After every message the open level's simulated pointer is moved onto
//     the entry under its cursor: mouseleave on the li it leaves, mouseenter
//     on the li it reaches. The interaction controller reacts by moving the
//     hover class, which is visible in the markup panel.
//   - Enter on a branch opens its nested list as a new level; the parent keeps
//     its hovered entry. Enter on any other entry dispatches a click at its
//     label through the command bus.
//   - With a source watcher attached, Update waits for backend events and
//     swaps in the reloaded menu, starting again from its root level.
//
// State ownership:
//   - Level state lives in internal/ui/state.Level: entries read from one
//     rendered list, the filter, cursor and viewport.
//   - Recorder stands in for the browser: it is the document navigator, the
//     partner content loader and the handler registry of the previewed menu,
//     and the click result shown to the user is what it recorded.
package ui
