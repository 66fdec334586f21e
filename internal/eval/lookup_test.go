package eval

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finds(name string, sym symbol.Symbol) origin {
	return origin{name: name, lookup: func(ident.QualifiedName) (symbol.Symbol, error) { return sym, nil }}
}

func fails(name string, err error) origin {
	return origin{name: name, lookup: func(ident.QualifiedName) (symbol.Symbol, error) { return symbol.Symbol{}, err }}
}

func misses(name string) origin {
	return origin{name: name, lookup: func(q ident.QualifiedName) (symbol.Symbol, error) { return symbol.Symbol{}, notFound(q) }}
}

func reversed(in []origin) []origin {
	out := make([]origin, len(in))
	for i, o := range in {
		out[len(in)-1-i] = o
	}
	return out
}

func TestLookupIn(t *testing.T) {
	tbl := symbol.NewTable()
	local := tbl.New(symbol.Argument(ident.New("r"), value.Int(1)), symbol.Private)
	constant := tbl.New(symbol.Constant(ident.New("r"), value.Int(2), hcl.Range{}), symbol.Private)

	name := ident.MustParse("r")
	nested := &AmbiguousSymbolError{Name: ident.MustParse("r.x"), Origins: []string{"a", "b"}, Symbols: []string{"a", "b"}}
	fatal := errors.New("broken origin")

	testCases := []struct {
		name        string
		origins     []origin
		wantSym     symbol.Symbol
		wantFoundIn []string
		wantErr     error
	}{
		{
			name:        "single origin",
			origins:     []origin{finds("local", local), misses("module"), misses("global")},
			wantSym:     local,
			wantFoundIn: []string{"local"},
		},
		{
			name:        "redundant re-export agrees",
			origins:     []origin{finds("module", constant), finds("global", constant), misses("local")},
			wantSym:     constant,
			wantFoundIn: []string{"global", "module"},
		},
		{
			name:    "disagreeing origins",
			origins: []origin{finds("local", local), finds("module", constant)},
			wantErr: &AmbiguousSymbolError{Name: name, Origins: []string{"local", "module"}, Symbols: []string{"r", "r"}},
		},
		{
			name:    "nothing found",
			origins: []origin{misses("local"), misses("global")},
			wantErr: &symbol.SymbolNotFoundError{Name: name},
		},
		{
			name:    "nested ambiguity wins over a match",
			origins: []origin{finds("local", local), fails("module", nested)},
			wantErr: nested,
		},
		{
			name:    "fatal error short-circuits",
			origins: []origin{finds("local", local), fails("module", fatal), fails("workbench", nested)},
			wantErr: fatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, origins := range [][]origin{tc.origins, reversed(tc.origins)} {
				sym, foundIn, err := lookupIn(name, origins)
				if tc.wantErr != nil {
					require.Error(t, err)
					assert.Equal(t, tc.wantErr, err)
					continue
				}
				require.NoError(t, err)
				assert.True(t, sym.Same(tc.wantSym), "got %s", sym)
				assert.Equal(t, tc.wantFoundIn, foundIn)
			}
		})
	}
}

func TestLookupIn_AmbiguityIsSymmetric(t *testing.T) {
	tbl := symbol.NewTable()
	a := tbl.New(symbol.Argument(ident.New("x"), value.Int(1)), symbol.Private)
	b := tbl.New(symbol.Argument(ident.New("x"), value.Int(2)), symbol.Private)
	name := ident.MustParse("x")

	_, _, forward := lookupIn(name, []origin{finds("local", a), finds("property", b)})
	_, _, backward := lookupIn(name, []origin{finds("property", b), finds("local", a)})

	var amb *AmbiguousSymbolError
	require.ErrorAs(t, forward, &amb)
	assert.Equal(t, []string{"local", "property"}, amb.Origins)
	assert.Equal(t, forward.Error(), backward.Error())
}
