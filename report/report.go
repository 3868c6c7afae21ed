// Package report renders filtered entities at one of four verbosity tiers
// into grouped text, aggregate counts, or structured JSON/XML. Rendering
// is a pure function of the entities, the criteria, and the reference
// data: it performs no traversal, filtering, or classification of its own.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mhaley/farmscan/stardew"
	"github.com/mhaley/farmscan/types"
)

// Renderer writes one report for one run.
type Renderer struct {
	Out  io.Writer
	Crit types.Criteria
	Data *stardew.Data
}

// New creates a renderer for the given sink, criteria, and reference data.
func New(out io.Writer, crit types.Criteria, data *stardew.Data) *Renderer {
	if data == nil {
		data = stardew.Default()
	}
	return &Renderer{Out: out, Crit: crit, Data: data}
}

// Render emits the report in the requested format.
func (r *Renderer) Render(entities []types.Entity) error {
	switch r.Crit.Format {
	case types.FormatJSON:
		return r.renderJSON(entities)
	case types.FormatXML:
		return r.renderXML(entities)
	default:
		if r.Crit.Count {
			return r.renderCounts(entities)
		}
		return r.renderText(entities)
	}
}

// unnamed is the placeholder for entities whose name did not resolve.
const unnamed = "(unnamed)"

// displayName is the group key: the resolved name or the placeholder.
func displayName(e types.Entity) string {
	if e.Name == "" {
		return unnamed
	}
	return e.Name
}

// renderText prints the grouped report: overall total first, then groups
// in alphabetical name order, each prefixed with its name and member
// count. Group members keep discovery order.
func (r *Renderer) renderText(entities []types.Entity) error {
	if _, err := fmt.Fprintf(r.Out, "%s %d\n", r.styleHeader("total"), len(entities)); err != nil {
		return err
	}
	groups := map[string][]types.Entity{}
	var names []string
	for _, e := range entities {
		key := displayName(e)
		if _, seen := groups[key]; !seen {
			names = append(names, key)
		}
		groups[key] = append(groups[key], e)
	}
	sort.Strings(names)
	for _, name := range names {
		members := groups[name]
		if _, err := fmt.Fprintf(r.Out, "%s: %d\n", r.styleName(name), len(members)); err != nil {
			return err
		}
		for _, e := range members {
			if _, err := fmt.Fprintf(r.Out, "  %s\n", r.entityLine(e)); err != nil {
				return err
			}
		}
	}
	return nil
}

// entityLine renders one entity at the configured level: map, name,
// position, then status notes and tier fields.
func (r *Renderer) entityLine(e types.Entity) string {
	var b strings.Builder
	b.WriteString(r.styleMap(e.Map))
	b.WriteString(" ")
	b.WriteString(r.styleName(displayName(e)))
	if e.Pos != nil {
		fmt.Fprintf(&b, " at (%s, %s)",
			r.stylePos(fmt.Sprintf("%d", e.Pos.X)),
			r.stylePos(fmt.Sprintf("%d", e.Pos.Y)))
	}
	if notes := r.entityNotes(e); len(notes) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(notes, "; "))
	}
	return b.String()
}

// entityNotes collects the status words and the tier fields visible at
// the configured level.
func (r *Renderer) entityNotes(e types.Entity) []string {
	var notes []string
	for _, cat := range e.Categories {
		if word := statusWords[cat]; word != "" {
			notes = append(notes, word)
		}
	}
	for _, spec := range fieldTables[e.Kind] {
		if spec.Tier > r.Crit.Level {
			continue
		}
		val := fieldValue(e, spec.Path)
		if val == "" {
			continue
		}
		val = r.substitute(spec.Subst, val)
		notes = append(notes, fmt.Sprintf("%s=%s", spec.Label, val))
	}
	return notes
}

// renderCounts prints aggregate name counts, overall or scoped to the
// requested maps, optionally sorted by descending count then name.
func (r *Renderer) renderCounts(entities []types.Entity) error {
	scope := "overall"
	if len(r.Crit.Maps) > 0 {
		scope = strings.Join(r.Crit.Maps, "+")
	}
	counts := map[string]int{}
	var order []string
	for _, e := range entities {
		key := displayName(e)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	if r.Crit.Sort {
		sort.Slice(order, func(i, j int) bool {
			if counts[order[i]] != counts[order[j]] {
				return counts[order[i]] > counts[order[j]]
			}
			return order[i] < order[j]
		})
	}
	for _, name := range order {
		_, err := fmt.Fprintf(r.Out, "%s %s %d\n",
			r.styleMap(scope), r.styleName(name), counts[name])
		if err != nil {
			return err
		}
	}
	return nil
}
