// Package eval walks a resolved source file and builds the model tree.
//
// # Core Concepts
//
// A single Context is threaded through the whole evaluation. It owns the
// lexical stack, the model tree and the diagnostic sink, and it borrows the
// symbol table built by package resolve.
//
//   - Statements are admitted by package grant before they run. A refused
//     statement is reported and skipped; its siblings still run.
//   - Every name goes through Lookup, which asks five origins (locals, the
//     current module, the properties of the model under construction, the
//     current workbench and the global table) and insists that all answers
//     agree.
//   - Every call binds its arguments with package argmatch and expands list
//     arguments with package multiplicity.
//
// # Errors
//
// Errors returned while evaluating an expression abort the enclosing
// top-level statement, which reports them and lets the following
// statements run. Problems that do not invalidate a statement, such as a
// malformed attribute, are reported as warnings on the spot.
package eval
