// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the tree of models produced by evaluating a source
// file.
//
// # Core Concepts
//
//   - Group: a node that only collects children, e.g. the root of a run or
//     the result of `union(...)`.
//
//   - Workpiece: the instance of a part, sketch or op. It records the bound
//     workbench arguments and the properties set with `prop`.
//
//   - Primitive: a leaf created by a builtin such as `circle` or `cube`. It
//     records the builtin name and its bound arguments.
//
// Why a separate model package?
//
// Evaluation never builds geometry. It records what would be built, with
// every argument already bound and converted, so a geometry kernel or an
// exporter can consume the tree later without knowing anything about name
// resolution or argument matching. Tests use the printed tree as a stable
// description of what a source file produces.
//
// Nodes live in an arena and are addressed by Handle. A node has at most one
// parent; adding it to another parent moves it.
package model
