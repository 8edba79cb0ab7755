package export

import (
	"fmt"
	"strings"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/reconcile"
)

// GenerateMermaid produces a Mermaid graph TD diagram of the entity graph.
// When a report is supplied, quiet entities get a muted class, missing
// entities appear as dashed nodes, and active entities are annotated with
// their mention count.
func GenerateMermaid(g entity.Graph, report *reconcile.Report) string {
	// Build node → ID mapping for Mermaid (alphanumeric only).
	nodeIDs := make(map[string]string)
	nextID := 0
	getID := func(id string) string {
		if mid, ok := nodeIDs[id]; ok {
			return mid
		}
		mid := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[id] = mid
		return mid
	}

	quiet := make(map[string]bool)
	mentions := make(map[string]int)
	if report != nil {
		for _, id := range report.Quiet {
			quiet[id] = true
		}
		for _, a := range report.Active {
			mentions[a.ID] = a.Mentions
		}
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, e := range g.Entities {
		label := e.ID
		if n := mentions[e.ID]; n > 0 {
			label = fmt.Sprintf("%s (%d)", e.ID, n)
		}
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", getID(e.ID), label))
	}

	// Missing entities are not declared by the graph but have relay
	// activity; render them dashed so the drift is visible.
	if report != nil {
		for _, id := range report.Missing {
			label := id
			if n := mentions[id]; n > 0 {
				label = fmt.Sprintf("%s (%d)", id, n)
			}
			sb.WriteString(fmt.Sprintf("  %s[\"%s\"]:::missing\n", getID(id), label))
		}
	}

	// Parent-child forest edges.
	for _, e := range g.Entities {
		for _, child := range e.Children {
			if !g.Has(child) {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s --- %s\n", getID(e.ID), getID(child)))
		}
	}

	// Relation edges.
	for _, r := range g.Relations {
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", getID(r.Source), getID(r.Target)))
	}

	if len(quiet) > 0 {
		for _, e := range g.Entities {
			if quiet[e.ID] {
				sb.WriteString(fmt.Sprintf("  class %s quiet\n", getID(e.ID)))
			}
		}
	}

	sb.WriteString("  classDef quiet fill:#eee,stroke:#999,color:#888\n")
	sb.WriteString("  classDef missing stroke-dasharray: 5 5\n")

	return sb.String()
}
