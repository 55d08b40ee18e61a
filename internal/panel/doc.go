// Package panel implements the interaction logic of the node control panel:
// the values it displays for a published session, the controls it offers,
// and the commands those controls emit.
//
// Rendering is the pure function Render, which turns a session.State and
// session.ServerSettings into a View. User interaction is expressed as Event
// values; Map translates control activations into Commands using a fixed
// table, and ControlPanel ties both together with the search input and an
// injected Dispatcher. The panel never mutates session data and never waits
// for a command to complete: the store publishes its new state and the panel
// renders it on the next Observe call.
package panel
