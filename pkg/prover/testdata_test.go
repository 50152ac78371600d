package prover

import (
	"github.com/aditya-giri/cyclegg/internal/config"
	"github.com/aditya-giri/cyclegg/pkg/env"
	"github.com/aditya-giri/cyclegg/pkg/rewrite"
	"github.com/aditya-giri/cyclegg/pkg/term"
)

// wc builds a wildcard leaf pattern expression for name (e.g. wc("x") is
// the pattern leaf "?x").
func wc(name string) term.Expr { return term.Leaf(term.ToWildcard(term.Intern(name))) }

func pat(e term.Expr) term.Pattern { return term.Pattern{Expr: e} }

// natEnv returns an Env/Context pair declaring Nat (Z, S) with S's
// argument type registered in the global context, matching the
// environment a definitions loader would produce for:
//
//	(data Nat (Z) (S Nat))
func natEnv() (*env.Env, *env.Context) {
	e := env.New()
	z := term.Intern("Z")
	s := term.Intern("S")
	e.Declare("Nat", z, s)

	gam := env.NewContext()
	gam.Insert(z, term.NewDatatype("Nat"))
	gam.Insert(s, term.NewFunctionType("Nat", term.NewDatatype("Nat")))
	return e, gam
}

// listEnv returns an Env/Context pair declaring List (Nil, Cons) over
// elements of Nat, plus Nat itself (Cons's second datatype dependency).
func listEnv() (*env.Env, *env.Context) {
	e, gam := natEnv()
	nil_ := term.Intern("Nil")
	cons := term.Intern("Cons")
	e.Declare("List", nil_, cons)
	gam.Insert(nil_, term.NewDatatype("List"))
	gam.Insert(cons, term.NewFunctionType("List", term.NewDatatype("Nat"), term.NewDatatype("List")))
	return e, gam
}

// addRewrites returns the two defining equations of addition over Nat:
//
//	add(Z, y)    = y
//	add(S(x), y) = S(add(x, y))
func addRewrites() []rewrite.Rewrite {
	add := term.Intern("add")
	z := term.Intern("Z")
	s := term.Intern("S")
	return []rewrite.Rewrite{
		rewrite.New("add-z",
			pat(term.App(add, term.Leaf(z), wc("y"))),
			pat(wc("y")),
		),
		rewrite.New("add-s",
			pat(term.App(add, term.App(s, wc("x")), wc("y"))),
			pat(term.App(s, term.App(add, wc("x"), wc("y")))),
		),
	}
}

// appRewrites returns the two defining equations of list append:
//
//	app(Nil, y)        = y
//	app(Cons(x,xs), y) = Cons(x, app(xs, y))
func appRewrites() []rewrite.Rewrite {
	app := term.Intern("app")
	nil_ := term.Intern("Nil")
	cons := term.Intern("Cons")
	return []rewrite.Rewrite{
		rewrite.New("app-nil",
			pat(term.App(app, term.Leaf(nil_), wc("y"))),
			pat(wc("y")),
		),
		rewrite.New("app-cons",
			pat(term.App(app, term.App(cons, wc("x"), wc("xs")), wc("y"))),
			pat(term.App(cons, wc("x"), term.App(app, wc("xs"), wc("y")))),
		),
	}
}

func testConfig(maxDepth int) config.Config {
	cfg := config.Default()
	cfg.MaxSplitDepth = maxDepth
	return cfg
}

func natLit(n int) term.Expr {
	e := term.Leaf(term.Intern("Z"))
	for i := 0; i < n; i++ {
		e = term.App(term.Intern("S"), e)
	}
	return e
}
