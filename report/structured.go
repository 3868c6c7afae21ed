package report

import (
	"encoding/json"
	"fmt"

	"github.com/beevik/etree"

	"github.com/mhaley/farmscan/types"
	"github.com/mhaley/farmscan/xmltree"
)

// jsonLocation mirrors the XML envelope's Location element.
type jsonLocation struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// jsonEntry is the five-field envelope around one surviving entity. Node
// holds the original tree node dumped to generic JSON, so the full tier
// is lossless.
type jsonEntry struct {
	Kind     string         `json:"Kind"`
	MapName  string         `json:"MapName"`
	Location *jsonLocation  `json:"Location"`
	Name     string         `json:"Name"`
	Node     map[string]any `json:"Node"`
}

// dumpOptions translates the requested formatters into dump behavior.
func (r *Renderer) dumpOptions() xmltree.DumpOptions {
	var opts xmltree.DumpOptions
	for _, f := range r.Crit.Formatters {
		switch f {
		case "false":
			opts.DropFalse = true
		case "zero":
			opts.DropZero = true
		case "points":
			opts.Points = true
		}
	}
	return opts
}

func (r *Renderer) renderJSON(entities []types.Entity) error {
	opts := r.dumpOptions()
	entries := make([]jsonEntry, 0, len(entities))
	for _, e := range entities {
		entry := jsonEntry{
			Kind:    string(e.Kind),
			MapName: e.Map,
			Name:    e.Name,
			Node:    xmltree.Dump(e.Raw, opts),
		}
		if e.Pos != nil {
			entry.Location = &jsonLocation{X: e.Pos.X, Y: e.Pos.Y}
		}
		entries = append(entries, entry)
	}
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// renderXML writes an Entries document: one Entry per entity carrying the
// fixed envelope plus a verbatim copy of the original node.
func (r *Renderer) renderXML(entities []types.Entity) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("Entries")
	for _, e := range entities {
		entry := root.CreateElement("Entry")
		entry.CreateElement("Kind").SetText(string(e.Kind))
		entry.CreateElement("MapName").SetText(e.Map)
		loc := entry.CreateElement("Location")
		if e.Pos != nil {
			loc.CreateElement("X").SetText(fmt.Sprintf("%d", e.Pos.X))
			loc.CreateElement("Y").SetText(fmt.Sprintf("%d", e.Pos.Y))
		}
		entry.CreateElement("Name").SetText(e.Name)
		entry.AddChild(e.Raw.Copy())
	}
	doc.Indent(2)
	_, err := doc.WriteTo(r.Out)
	return err
}
