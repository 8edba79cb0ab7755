package reconcile

import (
	"fmt"
	"strings"
)

// Summary holds the headline counts of one reconciliation run.
type Summary struct {
	Messages  int `json:"messages"`
	Entities  int `json:"entities"`
	Relations int `json:"relations"`
	Active    int `json:"active"`
	Quiet     int `json:"quiet"`
	Missing   int `json:"missing"`
	Unmapped  int `json:"unmapped"`
}

// ActiveEntity is one entity with relay activity, annotated with whether the
// tracked graph does not declare it yet.
type ActiveEntity struct {
	ID       string `json:"id"`
	Mentions int    `json:"mentions"`
	New      bool   `json:"new,omitempty"`
}

// UnmappedTag is an observed tag with no tag-map entry.
type UnmappedTag struct {
	Tag      string `json:"tag"`
	Messages int    `json:"messages"`
}

// Report is the immutable drift snapshot of one reconciliation run.
type Report struct {
	Summary  Summary             `json:"summary"`
	Missing  []string            `json:"missing,omitempty"`
	Quiet    []string            `json:"quiet,omitempty"`
	Active   []ActiveEntity      `json:"active,omitempty"`
	Unmapped []UnmappedTag       `json:"unmapped,omitempty"`
	Activity map[string][]string `json:"activity,omitempty"`
}

// String renders the report as stable human-readable text: summary lines,
// then the four drift sections, each omitted entirely when empty. The same
// report always renders to the same text.
func (r Report) String() string {
	var sb strings.Builder

	sb.WriteString("relay reconciliation\n")
	fmt.Fprintf(&sb, "  messages:  %d\n", r.Summary.Messages)
	fmt.Fprintf(&sb, "  entities:  %d\n", r.Summary.Entities)
	fmt.Fprintf(&sb, "  relations: %d\n", r.Summary.Relations)
	fmt.Fprintf(&sb, "  active:    %d\n", r.Summary.Active)
	fmt.Fprintf(&sb, "  quiet:     %d\n", r.Summary.Quiet)
	fmt.Fprintf(&sb, "  missing:   %d\n", r.Summary.Missing)
	fmt.Fprintf(&sb, "  unmapped:  %d\n", r.Summary.Unmapped)

	if len(r.Missing) > 0 {
		sb.WriteString("\nmentioned but not in graph:\n")
		for _, id := range r.Missing {
			fmt.Fprintf(&sb, "  %s\n", id)
		}
	}

	if len(r.Quiet) > 0 {
		sb.WriteString("\nquiet entities:\n")
		for _, id := range r.Quiet {
			fmt.Fprintf(&sb, "  %s\n", id)
		}
	}

	if len(r.Active) > 0 {
		sb.WriteString("\nactive entities:\n")
		for _, a := range r.Active {
			marker := ""
			if a.New {
				marker = "  (new)"
			}
			fmt.Fprintf(&sb, "  %-24s %d%s\n", a.ID, a.Mentions, marker)
		}
	}

	if len(r.Unmapped) > 0 {
		sb.WriteString("\nunmapped tags:\n")
		for _, u := range r.Unmapped {
			fmt.Fprintf(&sb, "  %-24s %d\n", u.Tag, u.Messages)
		}
	}

	return sb.String()
}
