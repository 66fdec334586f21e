package model

import (
	"bytes"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_AddChildMovesNode(t *testing.T) {
	tree := NewTree()
	a := tree.New(KindGroup, "", hcl.Range{})
	b := tree.New(KindGroup, "union", hcl.Range{})
	c := tree.New(KindPrimitive, "circle", hcl.Range{})

	require.NoError(t, tree.AddChild(a, c))
	require.NoError(t, tree.AddChild(b, c))

	assert.Empty(t, tree.Node(a).Children)
	assert.Equal(t, []Handle{c}, tree.Node(b).Children)
	assert.Equal(t, b, tree.Node(c).Parent)

	require.Error(t, tree.AddChild(c, b), "a node cannot adopt its ancestor")
	require.Error(t, tree.AddChild(c, c))
}

func TestTree_Props(t *testing.T) {
	tree := NewTree()
	h := tree.New(KindWorkpiece, "washer", hcl.Range{})
	tree.Node(h).Args = []value.NamedValue{{Name: "outer", Value: value.Mm(10)}}

	v, ok := tree.Prop(h, "outer")
	require.True(t, ok)
	assert.True(t, v.Equal(value.Mm(10)))

	tree.SetProp(h, "outer", value.Mm(11))
	tree.SetProp(h, "outer", value.Mm(12))
	v, _ = tree.Prop(h, "outer")
	assert.True(t, v.Equal(value.Mm(12)))
	assert.Len(t, tree.Node(h).Props, 1)

	_, ok = tree.Prop(h, "missing")
	assert.False(t, ok)
}

func TestHandles(t *testing.T) {
	list := value.MustList(ValueOf(1), ValueOf(2))
	assert.Equal(t, []Handle{1, 2}, Handles(list))
	assert.Equal(t, []Handle{3}, Handles(ValueOf(3)))
	assert.Empty(t, Handles(value.Mm(1)))
}

func TestTree_Print(t *testing.T) {
	tree := NewTree()
	root := tree.New(KindGroup, "", hcl.Range{})
	wp := tree.New(KindWorkpiece, "washer", hcl.Range{})
	tree.Node(wp).Args = []value.NamedValue{{Name: "outer", Value: value.Mm(10)}}
	tree.SetProp(wp, "hole", value.Mm(2))
	c := tree.New(KindPrimitive, "circle", hcl.Range{})
	tree.Node(c).Args = []value.NamedValue{{Name: "radius", Value: value.Mm(10)}}
	tree.SetAttribute(c, "color", value.Str("red"))

	require.NoError(t, tree.AddChild(root, wp))
	require.NoError(t, tree.AddChild(wp, c))

	var buf bytes.Buffer
	require.NoError(t, tree.Print(&buf, root))
	assert.Equal(t, "group\n"+
		"  workpiece washer(outer = 10.0mm) props(hole = 2.0mm)\n"+
		"    primitive circle(radius = 10.0mm) [color = red]\n", buf.String())
}
