package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatatypeTypeRoundTrip(t *testing.T) {
	ty := NewDatatype("Nat")
	require.False(t, ty.IsFunction())
	dt, err := ty.Datatype()
	require.NoError(t, err)
	require.Equal(t, "Nat", dt)
	require.Nil(t, ty.Args())
}

func TestFunctionTypeDatatypeErrors(t *testing.T) {
	ty := NewFunctionType("Nat", NewDatatype("Nat"))
	require.True(t, ty.IsFunction())
	_, err := ty.Datatype()
	require.Error(t, err)
	require.Len(t, ty.Args(), 1)
	require.Equal(t, "Nat", ty.Result())
}

func TestTypeEqual(t *testing.T) {
	a := NewFunctionType("Nat", NewDatatype("Nat"))
	b := NewFunctionType("Nat", NewDatatype("Nat"))
	c := NewFunctionType("Nat", NewDatatype("List"))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, NewDatatype("Nat").Equal(NewDatatype("Nat")))
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "Nat", NewDatatype("Nat").String())
	got := NewFunctionType("Nat", NewDatatype("Nat"), NewDatatype("Nat")).String()
	require.Equal(t, "Nat Nat -> Nat", got)
}
