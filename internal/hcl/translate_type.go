// This file contains the logic for parsing type expressions (e.g. `Length`,
// `list(Scalar)`) into value types.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/value"
)

// typeExpr converts a type expression into its value.Type equivalent.
func (t *translator) typeExpr(expr hcl.Expression) (value.Type, error) {
	logger := ctxlog.FromContext(t.ctx)

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a constructor.", "call", v.Name)
		if v.Name != "list" {
			return value.Invalid, fmt.Errorf("unknown type constructor %q", v.Name)
		}
		if len(v.Args) != 1 {
			return value.Invalid, fmt.Errorf("list() requires exactly one argument, got %d", len(v.Args))
		}
		elem, err := t.typeExpr(v.Args[0])
		if err != nil {
			return value.Invalid, err
		}
		return value.ListOf(elem), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return value.Invalid, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		typ, ok := value.TypeByName(rootName)
		if !ok {
			return value.Invalid, fmt.Errorf("unknown type %q", rootName)
		}
		return typ, nil
	}
	return value.Invalid, fmt.Errorf("unsupported expression for type definition: %T", expr)
}
