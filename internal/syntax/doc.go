// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package syntax defines the format-agnostic syntax tree consumed by the
resolver and the evaluator.

The tree is produced by a front-end (see internal/hcl) and carries an
hcl.Range on every node so diagnostics can point back into the source. No
part of the evaluator depends on the concrete source format.
*/
package syntax
