package term

import (
	"fmt"
	"strings"
)

// Type is either a reference to a datatype or a function type
// T1 ... Tn -> T. The zero value is not a valid Type; use NewDatatype or
// NewFunctionType.
type Type struct {
	datatype string // non-empty for a datatype reference
	args     []Type // non-nil for a function type
	result   string // result datatype name for a function type
}

// NewDatatype builds a Type referencing datatype name.
func NewDatatype(name string) Type {
	return Type{datatype: name}
}

// NewFunctionType builds a function type over the given parameter types,
// returning a value of the named result datatype.
func NewFunctionType(result string, args ...Type) Type {
	return Type{result: result, args: args}
}

// IsFunction reports whether ty is a function type.
func (ty Type) IsFunction() bool { return ty.args != nil }

// Datatype returns the head datatype name when ty is not a function type.
// It returns an error if ty is a function type, per spec.md §3.
func (ty Type) Datatype() (string, error) {
	if ty.IsFunction() {
		return "", fmt.Errorf("type %s is a function type, has no single datatype", ty)
	}
	return ty.datatype, nil
}

// Args returns the parameter-type list of a function type. It returns nil
// for a non-function type.
func (ty Type) Args() []Type {
	return ty.args
}

// Result returns the result datatype name of a function type, or the
// datatype name itself for a non-function type.
func (ty Type) Result() string {
	if ty.IsFunction() {
		return ty.result
	}
	return ty.datatype
}

// String renders ty in the "T1 ... Tn -> T" surface form used in
// diagnostics.
func (ty Type) String() string {
	if !ty.IsFunction() {
		return ty.datatype
	}
	parts := make([]string, len(ty.args))
	for i, a := range ty.args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ") + " -> " + ty.result
}

// Equal reports structural equality of two types.
func (ty Type) Equal(other Type) bool {
	if ty.IsFunction() != other.IsFunction() {
		return false
	}
	if !ty.IsFunction() {
		return ty.datatype == other.datatype
	}
	if ty.result != other.result || len(ty.args) != len(other.args) {
		return false
	}
	for i := range ty.args {
		if !ty.args[i].Equal(other.args[i]) {
			return false
		}
	}
	return true
}

// BoolTy is the reserved Boolean datatype (spec.md §6).
var BoolTy = NewDatatype("Bool")
