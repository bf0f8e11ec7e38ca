// Package ui contains the Bubble Tea program that powers the session
// dashboard. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and action execution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function. Key presses dispatch on the
//     current Mode: the session list, the expanded action menu, the filter
//     bar, the confirmation dialog, and the input dialogs each own their
//     keymap.
//   - Navigation helpers (internal/ui/navigation.go) manage the filtered
//     session list, cursor movement, the flattened row arithmetic behind
//     scrolling, and the preview capture. Dialog state lives in small form
//     types (internal/ui/forms.go) that wrap bubbles text inputs.
//
// State ownership:
//   - The session snapshot lives in internal/state.SessionStore and is kept
//     current by the dispatcher, fed either by a manual refresh or by the
//     backend watcher when periodic refresh is enabled.
//   - Which actions a session offers is decided by internal/menu.Compute;
//     executing them goes through internal/menu.Execute and the dialog flows
//     in the same package. Execution is synchronous: an action finishes
//     before the next keystroke is processed.
//
// After every action exactly one of the model's error or message fields is
// set; both are cleared on the next input event. That pair is the only
// user-facing feedback surface the dashboard has.
package ui
