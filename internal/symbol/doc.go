// Package symbol holds the statically known universe of names of a run.
//
// # Core Concepts
//
// Symbols live in an arena (Table) and are addressed by stable handles. Every
// node knows its parent and keeps an insertion-ordered list of child entries.
// An entry is a (name, handle, visibility) triple, so the same node can be
// reachable under several parents: once where it is defined (its owner) and
// again wherever a `use` re-exports it. Identity is the handle; two lookups
// that reach the same definition through different re-exports compare equal.
//
// `use` statements are first recorded as Alias and UseAll entries. Resolve
// replaces them by links to the concrete symbols, working bottom-up until
// no more progress is possible. Whatever remains is reported as not found.
package symbol
