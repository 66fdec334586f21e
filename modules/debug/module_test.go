package debug

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tuple(t *testing.T, cond bool, msg string) *argmatch.Tuple {
	t.Helper()
	tp := argmatch.NewTuple()
	require.NoError(t, tp.Insert(argmatch.Named("condition", value.Boolean(cond)).ID, value.Boolean(cond)))
	require.NoError(t, tp.Insert(argmatch.Named("message", value.Str(msg)).ID, value.Str(msg)))
	return tp
}

func TestAssert(t *testing.T) {
	_, err := Assert(nil, tuple(t, true, "unused"), hcl.Range{})
	assert.NoError(t, err)

	_, err = Assert(nil, tuple(t, false, "size too small"), hcl.Range{})
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "size too small", ae.Message)
	assert.Equal(t, "Assertion failed", ae.Summary())
}
