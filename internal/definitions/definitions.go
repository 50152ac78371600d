// Package definitions loads the caller-supplied "definitions input" of
// spec.md §6 — the datatype environment E, the global context Γᵍ, the
// initial rewrite set R₀, and the conjecture to prove — from a small
// line-oriented text format built on pkg/term's S-expression reader.
// Grounded on funvibe-funxy/internal/parser's top-level declaration loop
// (tokenize a line, dispatch on its leading keyword, accumulate into a
// program), reduced to cyclegg's four declaration kinds.
package definitions

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aditya-giri/cyclegg/pkg/env"
	"github.com/aditya-giri/cyclegg/pkg/prover"
	"github.com/aditya-giri/cyclegg/pkg/rewrite"
	"github.com/aditya-giri/cyclegg/pkg/term"
	"github.com/pkg/errors"
)

// Conjecture is a parsed theorem declaration: a named goal to prove.
type Conjecture struct {
	Name   string
	LHS    term.Expr
	RHS    term.Expr
	Params []prover.Param
}

// Definitions is everything prover.Top (pkg/prover) needs, plus every
// parsed conjecture (a file may declare more than one theorem).
type Definitions struct {
	Env         *env.Env
	Global      *env.Context
	Rewrites    []rewrite.Rewrite
	Conjectures []Conjecture
}

// Source declaration grammar, one declaration per logical line (blank
// lines and lines starting with ";" are ignored):
//
//	datatype Nat = Z | S Nat
//	fun add Nat Nat -> Nat
//	rewrite add-z (add Z ?y) = ?y
//	theorem add-right-identity (x Nat) : (add x Z) = x
//
// "datatype" registers E and Γᵍ entries for each constructor; "fun"
// registers a Γᵍ entry for a user-defined function's type (needed only
// for diagnostics — the prover itself never looks up a non-constructor's
// type); "rewrite" contributes one R₀ entry; "theorem" contributes one
// Conjecture.
func Parse(src string) (*Definitions, error) {
	e := env.New()
	gam := env.NewContext()
	defs := &Definitions{Env: e, Global: gam}

	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if err := parseDeclaration(line, defs); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading definitions source")
	}
	return defs, nil
}

func parseDeclaration(line string, defs *Definitions) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "datatype":
		return parseDatatype(line, defs)
	case "fun":
		return parseFun(fields, defs)
	case "rewrite":
		return parseRewrite(line, defs)
	case "theorem":
		return parseTheorem(line, defs)
	default:
		return errors.Errorf("unknown declaration keyword %q", fields[0])
	}
}

// parseDatatype handles "datatype Name = C1 | C2 Arg1 Arg2 | ...".
// Each constructor's own type is registered in Γᵍ as a function type
// over its argument datatypes, and the datatype's ordered constructor
// list is registered in E — base (nullary) constructors should be listed
// first, per spec.md §3's "empirically improves proof search" guidance.
func parseDatatype(line string, defs *Definitions) error {
	rest := strings.TrimPrefix(line, "datatype")
	parts := strings.SplitN(rest, "=", 2)
	if len(parts) != 2 {
		return errors.Errorf("malformed datatype declaration: %q", line)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return errors.Errorf("datatype declaration missing name: %q", line)
	}

	var cons []term.Symbol
	for _, altStr := range strings.Split(parts[1], "|") {
		fields := strings.Fields(altStr)
		if len(fields) == 0 {
			return errors.Errorf("empty constructor alternative in %q", line)
		}
		conName := term.Intern(fields[0])
		cons = append(cons, conName)

		argTypes := make([]term.Type, len(fields)-1)
		for i, arg := range fields[1:] {
			argTypes[i] = term.NewDatatype(arg)
		}
		if len(argTypes) == 0 {
			defs.Global.Insert(conName, term.NewDatatype(name))
		} else {
			defs.Global.Insert(conName, term.NewFunctionType(name, argTypes...))
		}
	}
	defs.Env.Declare(name, cons...)
	return nil
}

// parseFun handles "fun name Arg1 ... Argn -> Result".
func parseFun(fields []string, defs *Definitions) error {
	if len(fields) < 3 {
		return errors.Errorf("malformed fun declaration: %q", strings.Join(fields, " "))
	}
	name := term.Intern(fields[1])
	rest := fields[2:]
	arrow := -1
	for i, f := range rest {
		if f == "->" {
			arrow = i
			break
		}
	}
	if arrow < 0 {
		return errors.Errorf("fun declaration missing '->': %q", strings.Join(fields, " "))
	}
	if arrow+1 >= len(rest) {
		return errors.Errorf("fun declaration missing result type: %q", strings.Join(fields, " "))
	}
	result := rest[arrow+1]
	argTypes := make([]term.Type, arrow)
	for i, a := range rest[:arrow] {
		argTypes[i] = term.NewDatatype(a)
	}
	defs.Global.Insert(name, term.NewFunctionType(result, argTypes...))
	return nil
}

// parseRewrite handles "rewrite name lhs-sexpr = rhs-sexpr", where
// lhs/rhs are S-expressions whose leaves beginning with "?" are wildcards.
func parseRewrite(line string, defs *Definitions) error {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "rewrite"))
	fields := strings.SplitN(rest, " ", 2)
	if len(fields) != 2 {
		return errors.Errorf("malformed rewrite declaration: %q", line)
	}
	name := fields[0]
	eqParts := strings.SplitN(fields[1], "=", 2)
	if len(eqParts) != 2 {
		return errors.Errorf("rewrite declaration missing '=': %q", line)
	}
	lhsExpr, err := term.ParseExpr(strings.TrimSpace(eqParts[0]))
	if err != nil {
		return errors.Wrapf(err, "rewrite %s: parsing lhs", name)
	}
	rhsExpr, err := term.ParseExpr(strings.TrimSpace(eqParts[1]))
	if err != nil {
		return errors.Wrapf(err, "rewrite %s: parsing rhs", name)
	}
	defs.Rewrites = append(defs.Rewrites, rewrite.New(name, term.Pattern{Expr: lhsExpr}, term.Pattern{Expr: rhsExpr}))
	return nil
}

// parseTheorem handles "theorem name (x1 T1) (x2 T2) ... : lhs-sexpr = rhs-sexpr".
func parseTheorem(line string, defs *Definitions) error {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "theorem"))
	nameParts := strings.SplitN(rest, " ", 2)
	if len(nameParts) != 2 {
		return errors.Errorf("malformed theorem declaration: %q", line)
	}
	name := nameParts[0]
	bodyParts := strings.SplitN(nameParts[1], ":", 2)
	if len(bodyParts) != 2 {
		return errors.Errorf("theorem %s missing ':': %q", name, line)
	}

	params, err := parseParams(bodyParts[0])
	if err != nil {
		return errors.Wrapf(err, "theorem %s: parsing parameters", name)
	}

	eqParts := strings.SplitN(bodyParts[1], "=", 2)
	if len(eqParts) != 2 {
		return errors.Errorf("theorem %s missing '='", name)
	}
	lhsExpr, err := term.ParseExpr(strings.TrimSpace(eqParts[0]))
	if err != nil {
		return errors.Wrapf(err, "theorem %s: parsing lhs", name)
	}
	rhsExpr, err := term.ParseExpr(strings.TrimSpace(eqParts[1]))
	if err != nil {
		return errors.Wrapf(err, "theorem %s: parsing rhs", name)
	}

	defs.Conjectures = append(defs.Conjectures, Conjecture{
		Name:   name,
		LHS:    lhsExpr,
		RHS:    rhsExpr,
		Params: params,
	})
	return nil
}

// parseParams parses a sequence of "(name Type)" binder groups.
func parseParams(s string) ([]prover.Param, error) {
	s = strings.TrimSpace(s)
	var params []prover.Param
	for len(s) > 0 {
		if s[0] != '(' {
			return nil, errors.Errorf("expected '(' at %q", s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, errors.Errorf("unterminated parameter group in %q", s)
		}
		group := strings.Fields(s[1:end])
		if len(group) != 2 {
			return nil, errors.Errorf("expected exactly one name and one type in %q", s[:end+1])
		}
		params = append(params, prover.Param{
			Name: term.Intern(group[0]),
			Type: term.NewDatatype(group[1]),
		})
		s = strings.TrimSpace(s[end+1:])
	}
	return params, nil
}

// DuplicateSymbolError formats an error reporting that sym is already
// declared. Parse does not call it; it does not check for duplicate
// declarations.
func DuplicateSymbolError(sym term.Symbol) error {
	return fmt.Errorf("symbol %s is already declared", sym)
}
