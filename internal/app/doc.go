// Package app is the lvlpath driver. It reads one problem file, runs the
// configured shortest-path engines over the resulting graph and writes one
// result file per engine.
//
// The graph is immutable once read, so engines share it. With
// Config.Concurrent they run side by side; otherwise they run one after
// another in the configured order. The first failure cancels the engines
// that have not started yet and is returned from Run.
package app
