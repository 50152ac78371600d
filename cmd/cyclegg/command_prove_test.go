package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const addRightIdentitySource = `
datatype Nat = Z | S Nat
rewrite add-z (add Z ?y) = ?y
rewrite add-s (add (S ?x) ?y) = (S (add ?x ?y))
theorem add-right-identity (x Nat) : (add x Z) = x
`

func TestRunProveSucceedsOnValidTheorem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nat.cg")
	require.NoError(t, os.WriteFile(path, []byte(addRightIdentitySource), 0o644))

	status := run([]string{"prove", path})
	require.Equal(t, 0, status)
}

func TestRunProveFailsOnMissingFile(t *testing.T) {
	status := run([]string{"prove", "/nonexistent/path.cg"})
	require.Equal(t, 1, status)
}

func TestRunVersionSucceeds(t *testing.T) {
	status := run([]string{"version"})
	require.Equal(t, 0, status)
}
