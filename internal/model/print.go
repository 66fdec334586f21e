// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/hclcad/internal/value"
)

func formatList(list []value.NamedValue) string {
	parts := make([]string, 0, len(list))
	for _, nv := range list {
		parts = append(parts, nv.Name+" = "+nv.Value.String())
	}
	return strings.Join(parts, ", ")
}

// Print writes h and its descendants, one node per line, indented by depth:
//
//	group
//	  workpiece washer(outer = 10.0mm) props(hole = 2.0mm)
//	    primitive circle(radius = 10.0mm) [color = red]
func (t *Tree) Print(w io.Writer, h Handle) error {
	return t.print(w, h, 0)
}

func (t *Tree) print(w io.Writer, h Handle, depth int) error {
	n := t.Node(h)
	line := strings.Repeat("  ", depth) + n.Kind.String()
	if n.Name != "" {
		line += " " + n.Name
	}
	if n.Kind != KindGroup || len(n.Args) > 0 {
		line += "(" + formatList(n.Args) + ")"
	}
	if len(n.Props) > 0 {
		line += " props(" + formatList(n.Props) + ")"
	}
	if len(n.Attributes) > 0 {
		line += " [" + formatList(n.Attributes) + "]"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := t.print(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
