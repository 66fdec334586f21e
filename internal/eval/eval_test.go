package eval_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/app"
	"github.com/specialistvlad/hclcad/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Output(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name: "values and print",
			src: `
a = 2
b = a * 3
expr { value = print(b, "x", {n = mm(1)}) }
`,
			expected: "6 x n = 1.0mm\n",
		},
		{
			name: "expressions",
			src: `
items = [1, 2, 3]
tup   = { a = 1, b = "two" }
expr { value = print(items[1], tup.b, items[0] > 0 ? "pos" : "neg", "n=${items[2]}") }
`,
			expected: "2 two pos n=3\n",
		},
		{
			name: "function return",
			src: `
function "double" {
  param "x" { type = Scalar }
  return = x * 2
}
expr { value = print(double(2.5)) }
`,
			expected: "5.0\n",
		},
		{
			name: "default parameter",
			src: `
function "scale" {
  param "x" { type = Length }
  param "k" {
    type    = Scalar
    default = 2.0
  }
  return = x * k
}
expr { value = print(scale(mm(3))) }
`,
			expected: "6.0mm\n",
		},
		{
			name: "multiplied function call",
			src: `
function "double" {
  param "x" { type = Scalar }
  return = x * 2
}
expr { value = print(double([1.0, 2.0])) }
`,
			expected: "[2.0, 4.0]\n",
		},
		{
			name: "recursion and early return",
			src: `
function "fact" {
  param "n" { type = Integer }
  if {
    condition = n <= 1
    then {
      return = 1
    }
  }
  return = n * fact(n - 1)
}
expr { value = print(fact(5)) }
`,
			expected: "120\n",
		},
		{
			name: "if at source level",
			src: `
a = 3
if {
  condition = a > 1
  then {
    expr { value = print("big") }
  }
  else {
    expr { value = print("small") }
  }
}
`,
			expected: "big\n",
		},
		{
			name: "module members",
			src: `
module "geo" {
  pub { unit = mm(2) }
  function "twice" {
    visibility = "public"
    param "x" { type = Length }
    return = x * 2
  }
}
expr { value = print(geo::twice(geo.unit)) }
`,
			expected: "4.0mm\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunSource(t, tc.src)
			testutil.RequireClean(t, result)
			assert.Equal(t, tc.expected, result.Output)
		})
	}
}

func TestEval_Workbench(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.*" {}
part "washer" {
  param "outer" { type = Length }
  param "inner" {
    type    = Length
    default = 2.0
  }
  prop { hole = inner }
  expr { value = circle(outer) }
  expr { value = circle(inner) }
}
expr {
  value = washer(mm(10))
  color = "red"
}
`)
	testutil.RequireClean(t, result)

	expected := "workpiece washer(outer = 10.0mm, inner = 2.0mm) props(hole = 2.0mm) [color = red]\n" +
		"  primitive circle(radius = 10.0mm)\n" +
		"  primitive circle(radius = 2.0mm)\n"
	assert.Equal(t, expected, result.Output)
}

func TestEval_WorkbenchMultiplied(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.*" {}
part "ring" {
  param "r" { type = Length }
  expr { value = circle(r) }
}
expr { value = ring([mm(1), mm(2)]) }
`)
	testutil.RequireClean(t, result)
	require.Len(t, result.Result.Eval.Roots(), 2)
	assert.Equal(t, "workpiece ring(r = 1.0mm)\n  primitive circle(radius = 1.0mm)\n"+
		"workpiece ring(r = 2.0mm)\n  primitive circle(radius = 2.0mm)\n", result.Output)
}

func TestEval_Init(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.*" {}
part "disc" {
  param "radius" { type = Length }
  init {
    param "diameter" { type = Length }
    radius = diameter / 2
  }
  expr { value = circle(radius) }
}
expr { value = disc({diameter = mm(8)}) }
`)
	testutil.RequireClean(t, result)
	assert.Equal(t, "workpiece disc(radius = 4.0mm)\n  primitive circle(radius = 4.0mm)\n", result.Output)
}

func TestEval_InitMissingParameter(t *testing.T) {
	result := testutil.RunSource(t, `
part "disc" {
  param "radius" { type = Length }
  init {
    param "diameter" { type = Length }
    half = diameter / 2
  }
}
expr { value = disc({diameter = mm(8)}) }
`)
	require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
	testutil.AssertDiagnostic(t, result, "Missing arguments", "missing arguments: radius")
	testutil.AssertDiagnostic(t, result, "Missing arguments", "in disc called at")
}

// A refused statement is reported and its siblings still run.
func TestEval_ReturnOutsideFunction(t *testing.T) {
	result := testutil.RunSource(t, `
return = 1
expr { value = print("after") }
`)
	require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
	testutil.AssertDiagnostic(t, result, "Statement not supported", "Return is not supported in Source")
	assert.Equal(t, "after\n", result.Output)
}

func TestEval_PropOutsideWorkbench(t *testing.T) {
	result := testutil.RunSource(t, `
function "f" {
  prop { x = 1 }
  return = 2
}
expr { value = print(f()) }
`)
	require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
	testutil.AssertDiagnostic(t, result, "Statement not supported", "is not supported in Function")
	assert.Equal(t, "2\n", result.Output)
}

func TestEval_ExpressionInFunction(t *testing.T) {
	result := testutil.RunSource(t, `
function "f" {
  expr { value = print("inside") }
  return = 2
}
expr { value = print(f()) }
`)
	testutil.RequireClean(t, result)
	assert.Equal(t, "inside\n2\n", result.Output)
}

func TestEval_PropInsideInit(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.*" {}
part "disc" {
  param "radius" { type = Length }
  init {
    param "diameter" { type = Length }
    radius = diameter / 2
    prop { secret = 1 }
  }
  expr { value = circle(radius) }
}
expr { value = disc({diameter = mm(8)}) }
`)
	require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
	testutil.AssertDiagnostic(t, result, "Statement not supported", "PropAssignment is not supported in Init")
	assert.Equal(t, "workpiece disc(radius = 4.0mm)\n  primitive circle(radius = 4.0mm)\n", result.Output)
}

func TestEval_PublicFunctionInWorkbench(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.*" {}
part "p" {
  function "helper" {
    visibility = "public"
    return = 1
  }
  expr { value = circle(mm(1)) }
}
expr { value = p() }
`)
	require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
	testutil.AssertDiagnostic(t, result, "Statement not supported", "PublicFunctionDefinition is not supported in Workbench")
	assert.Equal(t, "workpiece p()\n  primitive circle(radius = 1.0mm)\n", result.Output)
}

func TestEval_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		summary string
		detail  string
	}{
		{
			name: "local shadows a constant",
			src: `
const { r = 1 }
function "f" {
  param "r" { type = Integer }
  return = r
}
expr { value = print(f(2)) }
`,
			summary: "Ambiguous symbol",
			detail:  "'r' is ambiguous",
		},
		{
			name: "assertion inside a call",
			src: `
function "check" {
  param "v" { type = Integer }
  return = assert(v > 10, "too small")
}
expr { value = check(3) }
`,
			summary: "Assertion failed",
			detail:  "in check called at",
		},
		{
			name: "constant read before it is set",
			src: `
expr { value = print(late) }
const { late = 1 }
`,
			summary: "Value not available",
			detail:  "value of 'late' is not available yet",
		},
		{
			name: "calling a constant",
			src: `
const { k = 1 }
expr { value = k(2) }
`,
			summary: "Not callable",
			detail:  "'k' is a constant",
		},
		{
			name:    "unknown name",
			src:     `expr { value = print(nowhere) }`,
			summary: "Symbol not found",
			detail:  "nowhere",
		},
		{
			name: "argument of the wrong type",
			src: `
use "std.geo2d.circle" {}
expr { value = circle("big") }
`,
			summary: "Missing arguments",
			detail:  "radius",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunSource(t, tc.src)
			require.ErrorIs(t, result.Err, app.ErrEvaluationFailed)
			testutil.AssertDiagnostic(t, result, tc.summary, tc.detail)
		})
	}
}

func TestEval_AttributeWarnings(t *testing.T) {
	result := testutil.RunSource(t, `
use "std.geo2d.circle" {}
expr {
  value  = circle(mm(1))
  weight = 3
  color  = 3
}
`)
	testutil.RequireClean(t, result)
	assert.Equal(t, []string{"Unknown attribute", "Invalid attribute"}, testutil.Summaries(result, hcl.DiagWarning))
	assert.Equal(t, "primitive circle(radius = 1.0mm)\n", result.Output)
}

func TestEval_Externals(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"main.hcl": `
use "lib.shapes.*" {}
expr { value = print(area(mm(2))) }
`,
		"lib/shapes.hcl": `
function "area" {
  visibility = "public"
  param "side" { type = Length }
  return = side * side
}
`,
	})
	testutil.RequireClean(t, result)
	assert.Equal(t, "4.0mm²\n", result.Output)
}

func TestEval_ReportUnused(t *testing.T) {
	result := testutil.RunSource(t, `
function "used" {
  return = 1
}
function "forgotten" {
  return = 2
}
expr { value = print(used()) }
`)
	testutil.RequireClean(t, result)

	var names []string
	for _, s := range result.Result.Eval.ReportUnused() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"forgotten"}, names)
}
