package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExprLeaf(t *testing.T) {
	e, err := ParseExpr("x")
	require.NoError(t, err)
	require.True(t, e.IsLeaf())
	require.Equal(t, "x", e.Op.String())
}

func TestParseExprCompound(t *testing.T) {
	e, err := ParseExpr("(add x (S y))")
	require.NoError(t, err)
	require.Equal(t, "(add x (S y))", Render(e))
}

func TestParseExprRoundTrip(t *testing.T) {
	inputs := []string{
		"Z",
		"(S Z)",
		"(add (S x) y)",
		"(app (app xs ys) zs)",
	}
	for _, in := range inputs {
		e, err := ParseExpr(in)
		require.NoError(t, err)
		require.Equal(t, in, Render(e))
	}
}

func TestParseExprErrors(t *testing.T) {
	_, err := ParseExpr("(add x")
	require.Error(t, err)
	_, err = ParseExpr("add x)")
	require.Error(t, err)
	_, err = ParseExpr("()")
	require.Error(t, err)
}

func TestParseExprsMultiple(t *testing.T) {
	es, err := ParseExprs("x (S x) Z")
	require.NoError(t, err)
	require.Len(t, es, 3)
	require.Equal(t, "x (S x) Z", RenderAll(es))
}
