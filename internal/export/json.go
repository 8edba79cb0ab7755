package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vistaara/sutradhar/internal/layout"
	"github.com/vistaara/sutradhar/internal/reconcile"
)

// RunExport is the top-level JSON export of one reconciliation run,
// optionally carrying layout positions for the same entity set.
type RunExport struct {
	GeneratedAt string                   `json:"generatedAt"`
	Summary     reconcile.Summary        `json:"summary"`
	Missing     []string                 `json:"missing,omitempty"`
	Quiet       []string                 `json:"quiet,omitempty"`
	Active      []reconcile.ActiveEntity `json:"active,omitempty"`
	Unmapped    []reconcile.UnmappedTag  `json:"unmapped,omitempty"`
	Positions   map[string]layout.Vec3   `json:"positions,omitempty"`
}

// NewRunExport builds a RunExport from a report and optional positions.
func NewRunExport(r reconcile.Report, positions map[string]layout.Vec3) *RunExport {
	return &RunExport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:     r.Summary,
		Missing:     r.Missing,
		Quiet:       r.Quiet,
		Active:      r.Active,
		Unmapped:    r.Unmapped,
		Positions:   positions,
	}
}

// WriteJSON marshals v indented and writes it to w with a trailing newline.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
