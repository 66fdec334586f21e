package argmatch

import (
	"testing"

	identpkg "github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOf(name string) identpkg.Identifier { return identpkg.New(name) }

func integerParams() []Parameter {
	return []Parameter{
		MustParameter("foo", value.Integer, nil),
		MustParameter("bar", value.Integer, nil),
		MustParameter("baz", value.Scalar, Default(value.Float(4.0))),
	}
}

func TestFindMatchPositional_NamedThenPositional(t *testing.T) {
	args := []Argument{
		Positional(value.Int(1)),
		Named("foo", value.Int(2)),
		Named("baz", value.Float(3.0)),
	}

	got, err := FindMatchPositional(integerParams(), args)
	require.NoError(t, err)
	requireTuple(t, []value.NamedValue{
		{Name: "foo", Value: value.Int(2)},
		{Name: "bar", Value: value.Int(1)},
		{Name: "baz", Value: value.Float(3.0)},
	}, got)
}

func TestFindMatchPositional_Missing(t *testing.T) {
	args := []Argument{
		Positional(value.Int(1)),
		Named("baz", value.Float(3.0)),
	}

	_, err := FindMatchPositional(integerParams(), args)
	var missing *MissingArgumentsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"bar"}, missing.Names)
}

func TestFindMatchPositional_DefaultAndWidening(t *testing.T) {
	got, err := FindMatchPositional(integerParams(), []Argument{Positional(value.Int(1)), Positional(value.Int(2)), Positional(value.Int(3))})
	require.NoError(t, err)
	requireTuple(t, []value.NamedValue{
		{Name: "foo", Value: value.Int(1)},
		{Name: "bar", Value: value.Int(2)},
		{Name: "baz", Value: value.Float(3)},
	}, got)

	got, err = FindMatchPositional(integerParams(), []Argument{Positional(value.Int(1)), Positional(value.Int(2))})
	require.NoError(t, err)
	assert.True(t, got.MustGet("baz").Equal(value.Float(4)))
}

func TestFindMatchPositional_Errors(t *testing.T) {
	t.Run("unexpected named argument", func(t *testing.T) {
		_, err := FindMatchPositional(integerParams(), []Argument{Named("qux", value.Int(1))})
		var unexpected *UnexpectedArgumentError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, []string{"qux"}, unexpected.Names)
	})

	t.Run("named argument of the wrong type", func(t *testing.T) {
		_, err := FindMatchPositional(integerParams(), []Argument{Named("foo", value.Float(1.5))})
		var mismatch *ParameterTypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, []string{"foo"}, mismatch.Names())
	})

	t.Run("too many positional arguments", func(t *testing.T) {
		args := []Argument{Positional(value.Int(1)), Positional(value.Int(2)), Positional(value.Int(3)), Positional(value.Int(4))}
		_, err := FindMatchPositional(integerParams(), args)
		var tooMany *TooManyArgumentsError
		require.ErrorAs(t, err, &tooMany)
		assert.Equal(t, []string{"#4"}, tooMany.Names)
	})
}
