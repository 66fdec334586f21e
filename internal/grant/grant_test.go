package grant

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/stack"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGranted(t *testing.T) {
	testCases := []struct {
		frame stack.FrameKind
		stmt  StatementKind
		want  bool
	}{
		{stack.FrameFunction, Return, true},
		{stack.FrameSource, Return, false},
		{stack.FrameWorkbench, Return, false},
		{stack.FrameWorkbench, PropAssignment, true},
		{stack.FrameInit, PropAssignment, false},
		{stack.FrameSource, PropAssignment, false},
		{stack.FrameFunction, PropAssignment, false},
		{stack.FrameSource, PublicUse, true},
		{stack.FrameModule, PublicUse, true},
		{stack.FrameWorkbench, PublicUse, false},
		{stack.FrameFunction, PrivateUse, true},
		{stack.FrameModule, If, false},
		{stack.FrameWorkbench, InitDefinition, true},
		{stack.FrameSource, InitDefinition, false},
		{stack.FrameFunction, Expression, true},
		{stack.FrameWorkbench, FunctionDefinition, true},
		{stack.FrameWorkbench, PublicFunctionDefinition, false},
		{stack.FrameModule, PublicFunctionDefinition, true},
		{stack.FrameFunction, FunctionDefinition, false},
		{stack.FrameInit, Expression, false},
		{stack.FrameBody, ValueAssignment, false},
		{stack.FrameCall, ValueAssignment, false},
		{stack.FrameNamespace, ValueAssignment, false},
	}
	for _, tc := range testCases {
		t.Run(tc.frame.String()+"/"+tc.stmt.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Granted(tc.frame, tc.stmt))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, PublicUse, KindOf(&syntax.Use{Visibility: syntax.Public}))
	assert.Equal(t, PrivateUse, KindOf(&syntax.Use{}))
	assert.Equal(t, PropAssignment, KindOf(&syntax.Assignment{Qualifier: syntax.QualifierProp}))
	assert.Equal(t, PublicConstAssignment, KindOf(&syntax.Assignment{Qualifier: syntax.QualifierPubConst}))
	assert.Equal(t, ValueAssignment, KindOf(&syntax.Assignment{}))
	assert.Equal(t, Expression, KindOf(&syntax.ExpressionStatement{}))
	assert.Equal(t, FunctionDefinition, KindOf(&syntax.FunctionDefinition{}))
	assert.Equal(t, PublicFunctionDefinition, KindOf(&syntax.FunctionDefinition{Visibility: syntax.Public}))
}

func TestCheck_UsesInnermostScope(t *testing.T) {
	tbl := symbol.NewTable()
	root := tbl.New(symbol.SourceFile(ident.New("main"), nil), symbol.Public)
	ret := &syntax.Return{Rng: hcl.Range{}}

	s := stack.New()
	s.Open(stack.SourceFrame(root))
	s.Open(stack.BodyFrame())

	err := Check(s, ret)
	var ns *StatementNotSupportedError
	require.ErrorAs(t, err, &ns)
	assert.Equal(t, Return, ns.Statement)
	assert.Equal(t, stack.FrameSource, ns.Frame)
	assert.Equal(t, "Return is not supported in Source", ns.Error())

	s.Open(stack.CallFrame(root, nil, hcl.Range{}))
	s.Open(stack.NamespaceFrame(root))
	s.Open(stack.FunctionFrame(root))
	s.Open(stack.BodyFrame())
	assert.NoError(t, Check(s, ret))
}
