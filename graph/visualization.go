package graph

import (
	"fmt"
	"slices"
	"strings"
)

// DrawMermaid renders the compiled graph as a Mermaid flowchart. Conditional
// routes are drawn dotted and labelled with the router output they match.
func (r *Runnable[S]) DrawMermaid() string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")
	sb.WriteString("    START([\"START\"])\n")
	for _, name := range r.order {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", name, name))
	}
	sb.WriteString("    END([\"END\"])\n")
	sb.WriteString(fmt.Sprintf("    START --> %s\n", r.entry))

	for _, name := range r.order {
		if to, ok := r.edges[name]; ok {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", name, to))
			continue
		}
		cond := r.cond[name]
		labels := make([]string, 0, len(cond.PathMap))
		for label := range cond.PathMap {
			labels = append(labels, label)
		}
		slices.Sort(labels)
		for _, label := range labels {
			sb.WriteString(fmt.Sprintf("    %s -. %s .-> %s\n", name, label, cond.PathMap[label]))
		}
	}

	sb.WriteString("    style START fill:#90EE90\n")
	sb.WriteString("    style END fill:#FFB6C1\n")
	return sb.String()
}
