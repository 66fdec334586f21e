/*
Package argmatch binds call arguments to parameters.

FindMatch is the type-directed binder used for workbenches, initializers and
functions. It runs four passes over the shared sets of remaining arguments
and remaining parameters:

 1. named arguments bind to the parameter of the same name,
 2. unnamed arguments bind by type, preferring parameters without a default,
 3. missing parameters take their default,
 4. unnamed arguments left over bind by type to parameters that only hold a
    default, overriding it.

An argument matches a parameter by its own type or, for lists, by its item
type; the latter is what later turns a call into several (see
internal/multiplicity). Exact type matches are preferred over matches that
need an integer to widen into a scalar.

FindMatchPositional is the simpler binder used by builtins with homogeneous
signatures such as `min(a, b)`: positional arguments fill the first free
compatible parameter from left to right.

Both binders either return a Tuple with exactly one entry per parameter or
one of the errors of this package. Name lists in errors are sorted.
*/
package argmatch
