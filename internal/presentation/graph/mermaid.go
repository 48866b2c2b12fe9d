package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsacheck/pkg/automaton"
)

// GraphOverlay contains analysis results to visualize on the graph.
type GraphOverlay struct {
	Unreachable []string
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Initial: ((Circle))
// - Final: (((Double circle)))
// - Default: (Rounded)
// Edges carry their symbol as label. The table keeps one symbol per ordered
// pair of states, so each pair yields at most one edge.
func GenerateMermaid(reg *automaton.Registry, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	initial, _ := reg.Initial()
	states := reg.States()

	for _, id := range states {
		safeID := sanitizeMermaidID(id)

		opener, closer := "(", ")"
		switch {
		case reg.IsFinal(id):
			opener, closer = "(((", ")))"
		case id == initial:
			opener, closer = "((", "))"
		}
		label := strings.ReplaceAll(id, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	if initial != "" {
		sb.WriteString(fmt.Sprintf("    start_marker[ ] --> %s\n", sanitizeMermaidID(initial)))
		sb.WriteString("    style start_marker fill:none,stroke:none\n")
	}

	table := reg.Table()
	for from := range table {
		for to, symbol := range table[from] {
			if symbol == "" {
				continue
			}
			safeSymbol := strings.ReplaceAll(symbol, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
				sanitizeMermaidID(states[from]), safeSymbol, sanitizeMermaidID(states[to])))
		}
	}

	if overlay != nil && len(overlay.Unreachable) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef unreachable fill:#ffebee,stroke:#c62828,stroke-dasharray:4,color:#000;\n")
		seen := make(map[string]bool)
		for _, id := range overlay.Unreachable {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", safeID))
			}
		}
	}

	return sb.String()
}

// sanitizeMermaidID prefixes every ID so state names such as "end" or "0"
// never collide with Mermaid keywords.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteString(fmt.Sprintf("_%x_", r))
		}
	}
	return sb.String()
}
