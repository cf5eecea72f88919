// Package ui contains the Bubble Tea program that manages Pantry baskets.
// Model.Update stays small: key presses, results and resizes are routed
// through a typed handler registry, and helpers own navigation, text entry,
// rendering and state updates.
//
// Message flow:
//   - Key presses either edit the list filter, move the cursor, or start a
//     basket operation. Operations are tea.Cmd values built by
//     internal/basket and run through the internal/ui/command bus, so every
//     request is traced with a correlation id.
//   - Operations answer with basket.ActionResult or basket.LoadResult
//     messages. The dispatcher (internal/data/dispatcher) applies them to the
//     registry and content stores and reports what changed.
//   - A change of selection, whatever caused it, goes through
//     onSelectionChanged, which is the only place a fetch is started. Saves
//     ask for an explicit refetch of the basket they wrote.
//   - Create and rename collect a name through basket.Form while the model is
//     in a form mode; the pending input line has its own mode so typing there
//     never reaches the filter.
//
// State ownership:
//   - internal/state owns the basket registry, the selection and the loaded
//     content. internal/ui/state owns the list rows, filter and viewport.
//
// Bubble Tea runs commands on their own goroutines and delivers results back
// to Update, so all state mutation happens on the program goroutine.
package ui
