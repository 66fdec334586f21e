package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
)

// Validate performs a consistency check of every registered builtin. A
// failure is a programming error in a builtin module.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, e := range r.entries {
		if e.Builtin == nil {
			if e.Constant.IsInvalid() {
				errs = append(errs, fmt.Sprintf("constant '%s' has no value", e.Path))
			}
			continue
		}

		b := e.Builtin
		if (b.Fn == nil) == (b.Raw == nil) {
			errs = append(errs, fmt.Sprintf("builtin '%s': exactly one of Fn and Raw must be set", e.Path))
		}
		if b.Raw != nil && len(b.Params) > 0 {
			errs = append(errs, fmt.Sprintf("builtin '%s': raw builtins take no parameter list", e.Path))
		}

		seen := make(map[string]struct{})
		for _, p := range b.Params {
			if _, dup := seen[p.ID.Name]; dup {
				errs = append(errs, fmt.Sprintf("builtin '%s': duplicate parameter '%s'", e.Path, p.ID.Name))
			}
			seen[p.ID.Name] = struct{}{}
		}
	}

	for _, ns := range r.prelude {
		found := false
		for _, e := range r.entries {
			if e.Path.IsSubOf(ns) && len(e.Path) == len(ns)+1 {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("prelude namespace '%s' has no entries", ns))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "entries", len(r.entries))
	return nil
}
