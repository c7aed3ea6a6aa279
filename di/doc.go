// Package di provides a small, type-indexed registry with recursive,
// fallible construction.
//
// A Registry owns a set of values keyed by their static Go type: at most one
// value per type, retrieved back with the same type it went in as. On top of
// the store sits the Constructible capability: a type declares how to
// assemble itself from a Registry, and may recursively request other stored
// values or other Constructible types while doing so.
//
// Design goals:
//   - Type identity as the key. A lookup for T can only yield a T or a typed
//     error: no string tokens, no casting mistakes.
//   - Explicit, fallible construction. Build returns an error chain naming
//     the type that failed and why; nothing is retried or swallowed.
//   - Passive value, not a framework. No lifecycles, no scopes, no graph
//     analysis; wiring stays in your composition root.
//
// Typical usage:
//
//	reg := di.NewRegistry()
//	di.Insert(reg, Config{Sender: "noreply@example.com"})
//
//	mailer, err := di.Build[Mailer](reg)
//
// where Mailer implements [Constructible] by reading Config (and possibly
// building further dependencies) from the registry.
//
// There is no cycle detection: a Constructible whose construction logic
// transitively builds its own type recurses until the stack is exhausted.
// Keep dependency graphs acyclic.
//
// Runnable examples live under examples/ in the repository.
package di
