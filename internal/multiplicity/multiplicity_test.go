package multiplicity

import (
	"testing"

	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, params []argmatch.Parameter, args ...argmatch.Argument) *argmatch.Tuple {
	t.Helper()
	tuple, err := argmatch.FindMatch(params, args)
	require.NoError(t, err)
	return tuple
}

func TestNew_NoMultipliers(t *testing.T) {
	params := []argmatch.Parameter{argmatch.MustParameter("r", value.Length, nil)}
	_, ok := New(bind(t, params, argmatch.Positional(value.Mm(1))), params)
	assert.False(t, ok)
}

func TestNew_ListParameterIsNotAMultiplier(t *testing.T) {
	params := []argmatch.Parameter{argmatch.MustParameter("rs", value.ListOf(value.Length), nil)}
	_, ok := New(bind(t, params, argmatch.Positional(value.MustList(value.Mm(1), value.Mm(2)))), params)
	assert.False(t, ok)
}

func TestMultiplicity_Cardinality(t *testing.T) {
	params := []argmatch.Parameter{
		argmatch.MustParameter("x", value.Length, nil),
		argmatch.MustParameter("n", value.Integer, nil),
		argmatch.MustParameter("label", value.String, argmatch.Default(value.Str("p"))),
	}
	tuple := bind(t, params,
		argmatch.Named("x", value.MustList(value.Mm(1), value.Mm(2), value.Mm(3))),
		argmatch.Named("n", value.MustList(value.Int(10), value.Int(20))),
	)

	m, ok := New(tuple, params)
	require.True(t, ok)
	assert.Equal(t, 6, m.Len())
	require.Len(t, m.Multipliers(), 2)
	assert.Equal(t, "n", m.Multipliers()[0].Name, "multipliers are visited in name order")

	combos := m.Combinations()
	require.Len(t, combos, m.Len())

	var order []string
	for _, c := range combos {
		assert.Equal(t, 3, c.Len())
		assert.True(t, c.MustGet("label").Equal(value.Str("p")))
		order = append(order, c.MustGet("n").String()+"/"+c.MustGet("x").String())
	}
	assert.Equal(t, []string{
		"10/1.0mm", "20/1.0mm",
		"10/2.0mm", "20/2.0mm",
		"10/3.0mm", "20/3.0mm",
	}, order)
}

func TestMultiplicity_SingleItemList(t *testing.T) {
	params := []argmatch.Parameter{argmatch.MustParameter("r", value.Length, nil)}
	tuple := bind(t, params, argmatch.Positional(value.MustList(value.Mm(5))))

	m, ok := New(tuple, params)
	require.True(t, ok, "a single item list is still a multiplier")
	assert.Equal(t, 1, m.Len())

	got, err := m.Call(func(c *argmatch.Tuple) (value.Value, error) {
		return c.MustGet("r"), nil
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(value.Mm(5)), "one combination yields a single value")
}

func TestMultiplicity_CallCollectsResults(t *testing.T) {
	params := []argmatch.Parameter{argmatch.MustParameter("r", value.Scalar, nil)}
	tuple := bind(t, params, argmatch.Positional(value.MustList(value.Int(1), value.Int(2))))

	m, ok := New(tuple, params)
	require.True(t, ok)

	got, err := m.Call(func(c *argmatch.Tuple) (value.Value, error) {
		return value.Mul(c.MustGet("r"), value.Float(2))
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(value.MustList(value.Float(2), value.Float(4))))
}
