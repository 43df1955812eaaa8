// Package paste implements the identifier/literal splicing engine: it
// recursively scans a token tree for splice regions delimited by the
// reserved markers "[<" and ">]", concatenates the identifier and literal
// fragments inside each region into a single new identifier, applies
// per-fragment case and provenance modifiers, and reassembles the stream
// with every other token untouched.
//
// Expansion is eager and bottom-up: children of ordinary groups are
// resolved before the enclosing level is reassembled. The engine holds no
// state across invocations, performs no I/O, and is purely functional with
// respect to its input, so independent invocations may run concurrently
// without coordination. On any malformed input the enclosing invocation
// fails as a whole; a partially rewritten stream is never returned.
package paste
