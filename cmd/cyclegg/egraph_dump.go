package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/hashicorp/go-hclog"
)

// dotDumper renders an e-graph to a PNG via the external "dot" binary,
// the supplemented diagnostic feature from original_source/src/goal.rs's
// save_egraph (which called out to Graphviz through egg's own dot()
// helper). cyclegg has no e-graph-to-dot library dependency in the
// retrieved pack, so this shells out directly, matching the teacher's own
// "external binary as collaborator" posture for anything outside its core
// domain.
type dotDumper struct {
	dir    string
	logger hclog.Logger
}

func newDotDumper(dir string, logger hclog.Logger) *dotDumper {
	return &dotDumper{dir: dir, logger: logger}
}

// Dump implements config.EGraphDumper.
func (d *dotDumper) Dump(name string, g *egraph.EGraph) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("creating e-graph dump directory: %w", err)
	}
	dot := renderDot(g)
	safeName := strings.NewReplacer(":", "_", "/", "_", "=", "-").Replace(name)
	dotPath := filepath.Join(d.dir, safeName+".dot")
	if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dotPath, err)
	}

	pngPath := filepath.Join(d.dir, safeName+".png")
	cmd := exec.Command("dot", "-Tpng", "-o", pngPath, dotPath)
	if err := cmd.Run(); err != nil {
		d.logger.Warn("dot not available, leaving .dot file only", "error", err)
		return nil
	}
	return nil
}

// renderDot emits a Graphviz digraph with one node per e-node and one
// cluster per e-class, mirroring egg's own dot output shape closely
// enough for visual debugging.
func renderDot(g *egraph.EGraph) string {
	var b strings.Builder
	b.WriteString("digraph egraph {\n  compound=true;\n")
	for _, classID := range g.ClassIDs() {
		root := g.Find(classID)
		if root != classID {
			continue
		}
		fmt.Fprintf(&b, "  subgraph cluster_%d {\n    label=\"e%d\";\n", root, root)
		for i, n := range g.NodesOf(root) {
			fmt.Fprintf(&b, "    n%d_%d [label=%q];\n", root, i, n.String())
		}
		b.WriteString("  }\n")
		for i, n := range g.NodesOf(root) {
			for _, c := range n.Children {
				childRoot := g.Find(c)
				fmt.Fprintf(&b, "  n%d_%d -> n%d_0 [lhead=cluster_%d];\n", root, i, childRoot, childRoot)
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}
