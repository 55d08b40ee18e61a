// Package ui contains the Bubble Tea program that renders the node control
// panel. The Model type focuses on message orchestration, while dedicated
// helpers own focus, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so it is handled by a focused
//     function (key presses, mouse clicks, backend updates, command results).
//   - Key and mouse handlers translate input into panel.Event values and hand
//     them to the panel.ControlPanel. The panel decides which command, if any,
//     an event produces; the model never builds commands itself.
//   - Commands the panel emits during one Update are collected by the
//     commandQueue and submitted to the command bus in emission order once the
//     handler returns.
//
// State ownership:
//   - The search field text is owned by the panel's SearchDispatcher; the
//     textinput widget mirrors it and is reset from it after every submit.
//   - Session state, server settings, navigation requests and system errors
//     live in internal/state and are kept current by the dispatcher.
//   - The active route lives in the router, which the panel drives for menu
//     clicks and the backend drives for search results.
//
// Backend interactions:
//   - A backend.Watcher streams session snapshots; Update waits for those
//     events and hands them to applyBackendEvent, which refreshes the store,
//     the panel, the router and the system error view.
//   - Command results come back from internal/ui/command as command.Result
//     messages. A failed command is shown on the status line and every result
//     asks the watcher for an immediate refresh.
package ui
