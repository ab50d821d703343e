package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/markov"
)

// GraphOverlay marks the states of a walk on the graph.
type GraphOverlay struct {
	VisitedNodes []int
	CurrentNode  int // -1 for none
}

// OverlayFromWalk resolves the states of a walk back to their node indexes.
// The last state becomes the current node.
func OverlayFromWalk[T any](chain *markov.Chain[T], walk markov.Walk[T]) *GraphOverlay {
	overlay := &GraphOverlay{CurrentNode: -1}
	for _, s := range walk.States {
		if n, ok := chain.Find(s); ok {
			overlay.VisitedNodes = append(overlay.VisitedNodes, n.Index())
			overlay.CurrentNode = n.Index()
		}
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart from the nodes of a chain.
// Edges are labelled with their observation counts. Shapes:
// - First state: ((Circle))
// - Terminal: ([Stadium])
// - Default: [Rectangle]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid[T any](nodes []*markov.Node[T], label func(T) string, isTerminal func(T) bool, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		id := nodeID(node.Index())

		opener, closer := "[", "]"
		switch {
		case node.Index() == 0:
			opener, closer = "((", "))"
		case isTerminal != nil && isTerminal(node.Data()):
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, escapeLabel(label(node.Data())), closer)

		for _, f := range node.Frequencies() {
			fmt.Fprintf(&sb, "    %s -->|%d| %s\n", id, f.Count, nodeID(f.Target.Index()))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, idx := range overlay.VisitedNodes {
			if idx < 0 || idx >= len(nodes) || seen[idx] {
				continue
			}
			seen[idx] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(idx))
		}

		if overlay.CurrentNode >= 0 && overlay.CurrentNode < len(nodes) {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func nodeID(index int) string {
	return fmt.Sprintf("s%d", index)
}

// escapeLabel keeps a payload rendering inside a quoted Mermaid label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
