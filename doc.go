// Package forge is a minimal dependency-injection registry for Go.
//
// The core idea is a container keyed by static type: you insert plain values
// (configuration, shared handles), and buildable types declare how to
// assemble themselves from the container, recursively requesting further
// values or other buildable types as they go. Retrieval is checked at
// compile time: asking for a T can only ever produce a T or a typed error.
//
// The library deliberately stays small. There are no lifecycles, no scopes
// or child containers, no dependency-graph analysis, and no cycle detection;
// wiring remains explicit in your composition root.
//
// See subpackages and directories:
//   - di: the registry and the Constructible capability
//   - examples/*: runnable end-to-end wiring examples
package forge
