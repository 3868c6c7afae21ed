// Package xmltree provides schema-agnostic helpers over etree elements:
// case-tolerant child lookup, slash-path descent, coordinate pairs,
// xsi:nil detection, display-name resolution, and a recursive node→map
// dump used for JSON output.
package xmltree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/mhaley/farmscan/types"
)

// AttrsKey is the map key under which element attributes are stored by Dump.
const AttrsKey = "__attrs"

// Child returns the first child element with the given tag, or nil.
// With fold set, tag comparison is case-insensitive.
func Child(e *etree.Element, tag string, fold bool) *etree.Element {
	if e == nil {
		return nil
	}
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
		if fold && strings.EqualFold(c.Tag, tag) {
			return c
		}
	}
	return nil
}

// HasChild reports whether the element has an immediate child with the tag.
func HasChild(e *etree.Element, tag string) bool {
	return Child(e, tag, false) != nil
}

// Text returns the element's own text content, or "" for nil elements.
func Text(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return e.Text()
}

// ChildText returns the text of the first child with the given tag.
func ChildText(e *etree.Element, tag string) string {
	return Text(Child(e, tag, false))
}

// Descend follows a slash-separated path of child tags, returning the node
// at the end of the path or nil if any step is missing.
func Descend(e *etree.Element, path string) *etree.Element {
	node := e
	for _, tag := range strings.Split(path, "/") {
		node = Child(node, tag, false)
		if node == nil {
			return nil
		}
	}
	return node
}

// IsNil reports whether the element is an xsi:nil placeholder with no
// children. Save files use these for empty dictionary slots.
func IsNil(e *etree.Element) bool {
	if e == nil {
		return true
	}
	if len(e.ChildElements()) > 0 {
		return false
	}
	return e.SelectAttrValue("xsi:nil", "") == "true"
}

// IsCoord reports whether the element holds exactly an X and a Y child.
func IsCoord(e *etree.Element) bool {
	if e == nil {
		return false
	}
	kids := e.ChildElements()
	if len(kids) != 2 {
		return false
	}
	tags := map[string]bool{kids[0].Tag: true, kids[1].Tag: true}
	return tags["X"] && tags["Y"]
}

// Coord converts a coordinate element into a tile point. Fractional
// coordinates are truncated. ok is false if either axis is missing.
func Coord(e *etree.Element) (types.Point, bool) {
	x, xok := intText(Child(e, "X", false))
	y, yok := intText(Child(e, "Y", false))
	if !xok || !yok {
		return types.Point{}, false
	}
	return types.Point{X: x, Y: y}, true
}

func intText(e *etree.Element) (int, bool) {
	if e == nil {
		return 0, false
	}
	s := strings.TrimSpace(e.Text())
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// ResolveName resolves a node's display name using the ordered fallback
// chain the save schema requires: an explicit xsi:type attribute first,
// then a lowercase name child, then a capitalized Name child. The empty
// string is a legal outcome, not an error; several structurally distinct
// nodes have no resolvable name, and several distinct interior rooms
// resolve to the same generic string.
func ResolveName(e *etree.Element) string {
	if e == nil {
		return ""
	}
	if v := e.SelectAttrValue("xsi:type", ""); v != "" {
		return v
	}
	if c := Child(e, "name", false); c != nil {
		return c.Text()
	}
	if c := Child(e, "Name", false); c != nil {
		return c.Text()
	}
	return ""
}

// DumpOptions control value cleanup during Dump.
type DumpOptions struct {
	DropFalse bool // drop false booleans and empty containers
	DropZero  bool // drop zero numbers
	Points    bool // fold X/Y pairs into [x, y] arrays
}

// Dump interprets an element as a generic map. Text leaves become bools,
// ints, floats, or strings; coordinate nodes optionally become two-element
// arrays; attributes land under AttrsKey. Repeated child tags collapse to
// a list under the shared tag.
func Dump(e *etree.Element, opts DumpOptions) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{e.Tag: dumpValue(e, opts)}
}

func dumpValue(e *etree.Element, opts DumpOptions) any {
	kids := e.ChildElements()
	if len(kids) == 0 {
		return scalar(e.Text())
	}
	if opts.Points && IsCoord(e) {
		if pt, ok := Coord(e); ok {
			return []any{pt.X, pt.Y}
		}
	}
	out := map[string]any{}
	for _, c := range kids {
		v := dumpValue(c, opts)
		if opts.DropFalse && isFalsy(v) {
			continue
		}
		if opts.DropZero && isZero(v) {
			continue
		}
		if prev, dup := out[c.Tag]; dup {
			if list, ok := prev.([]any); ok {
				out[c.Tag] = append(list, v)
			} else {
				out[c.Tag] = []any{prev, v}
			}
		} else {
			out[c.Tag] = v
		}
	}
	if attrs := e.Attr; len(attrs) > 0 {
		am := map[string]any{}
		for _, a := range attrs {
			am[a.FullKey()] = a.Value
		}
		out[AttrsKey] = am
	}
	return out
}

// scalar converts leaf text into a typed JSON value.
func scalar(s string) any {
	t := strings.TrimSpace(s)
	switch t {
	case "true":
		return true
	case "false":
		return false
	}
	if isNumeric(t) {
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return s
}

// isNumeric matches optionally negative integers, the way the original
// schema encodes them. Floats stay strings here on purpose.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case bool:
		return !t
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

func isZero(v any) bool {
	n, ok := v.(int)
	return ok && n == 0
}
