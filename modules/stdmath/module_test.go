package stdmath

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testContext struct{}

func (testContext) Models() *model.Tree  { return model.NewTree() }
func (testContext) Output() io.Writer    { return io.Discard }
func (testContext) Logger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	r := registry.New()
	(&Module{}).Register(r)
	var in []argmatch.Argument
	for _, a := range args {
		in = append(in, argmatch.Positional(a))
	}
	for _, e := range r.Entries() {
		if e.Path.String() == "std.math."+name && e.Builtin != nil {
			return e.Builtin.Call(testContext{}, in, hcl.Range{})
		}
	}
	t.Fatalf("no builtin %s", name)
	return value.None(), nil
}

func TestMath(t *testing.T) {
	testCases := []struct {
		name string
		args []value.Value
		want value.Value
	}{
		{name: "sqrt", args: []value.Value{value.Float(16)}, want: value.Float(4)},
		{name: "abs", args: []value.Value{value.Float(-2)}, want: value.Float(2)},
		{name: "min", args: []value.Value{value.Int(3), value.Float(1.5)}, want: value.Float(1.5)},
		{name: "max", args: []value.Value{value.Int(3), value.Float(1.5)}, want: value.Float(3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := call(t, tc.name, tc.args...)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestMath_SqrtNegative(t *testing.T) {
	_, err := call(t, "sqrt", value.Float(-1))
	assert.Error(t, err)
}

func TestMath_Pi(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	for _, e := range r.Entries() {
		if e.Path.String() == "std.math.pi" {
			f, _ := e.Constant.AsFloat()
			assert.InDelta(t, 3.14159, f, 1e-5)
			return
		}
	}
	t.Fatal("pi not registered")
}
