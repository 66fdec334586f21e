// Package registry holds the builtins compiled into the binary.
//
// Builtin modules (see the modules/ directory) implement Module and add
// their functions and constants under a namespace such as `std.geo2d`. The
// resolver mounts every registered entry into the symbol table, so a builtin
// is looked up like any user definition.
package registry
