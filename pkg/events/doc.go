// Package events exposes the Quartz event tap as a small adapter: a fixed mask of
// event kinds goes in, a per-event handler decides whether each event passes or is
// dropped. Non-darwin builds carry a stub adapter so the rest of the tree, and its
// tests, compile everywhere.
package events
