/*
Package ident provides identifiers and qualified names for the symbols of a
source tree.

An Identifier is a single name with an optional source range. A QualifiedName
is an ordered sequence of identifiers, written with `.` separators in its
canonical form, e.g. `std.geo2d.circle`. The parser also accepts the `::`
separator used by namespaced function calls, e.g. `std::geo2d::circle`.

Identifier equality is exact string equality; source ranges never take part
in comparisons.
*/
package ident
