/*
Package hcl is the HCL front-end. It parses source files with hclparse and
translates the native syntax tree into the format-agnostic syntax package.

A source file is an HCL body whose items are read in source order:

	use "std.geo2d.*" {}

	part "washer" {
	  param "outer" { type = Length }
	  param "inner" { type = Length default = 2.0 }

	  expr { value = circle(outer) }
	}

	expr { value = washer(mm(10)) }

Bare attributes are value assignments, `return = expr` returns from a
function, and `const`, `pub` and `prop` blocks hold qualified assignments.
An `expr` block is an expression statement whose extra attributes decorate
the produced models. A call whose last argument is an object literal takes
its named arguments from that object: `translate(c, {x = mm(2)})`.
*/
package hcl
