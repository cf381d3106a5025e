// Package eventlog turns intercepted input events into one human-readable line each
// and decides whether the event reaches the rest of the system.
//
// Lines have the form "[Category][EventName] payload". Labels for kinds outside the
// recognised set fall back to "EventType(N)".
package eventlog
