// Package query turns a raw criteria record into a validated inclusion
// set and narrows collected entities through the multi-axis filter
// pipeline. Normalization happens once, before traversal; filtering never
// mutates entities or their categories and preserves collection order.
package query

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mhaley/farmscan/match"
	"github.com/mhaley/farmscan/types"
)

// selectors recognized after alias expansion.
var selectors = map[string]bool{
	types.SelObjects:    true,
	types.SelMachines:   true,
	types.SelCrops:      true,
	types.SelSmall:      true,
	types.SelLarge:      true,
	types.SelTrees:      true,
	types.SelFruitTrees: true,
	types.SelAnimals:    true,
	types.SelSlimes:     true,
}

// aliases are pure set-rewrites applied before traversal.
var aliases = map[string][]string{
	"alltrees": {types.SelTrees, types.SelFruitTrees},
	"features": {types.SelSmall, types.SelLarge},
	"all": {
		types.SelObjects, types.SelMachines, types.SelCrops,
		types.SelSmall, types.SelLarge, types.SelTrees,
		types.SelFruitTrees, types.SelAnimals, types.SelSlimes,
	},
}

// categoryImplies maps each filterable category to the selector it pulls
// into the inclusion set. Applied during normalization, not during
// filtering.
var categoryImplies = map[string]string{
	string(types.CatForage):       types.SelObjects,
	string(types.CatArtifact):     types.SelObjects,
	string(types.CatObject):       types.SelObjects,
	string(types.CatCropReady):    types.SelCrops,
	string(types.CatCropDead):     types.SelCrops,
	string(types.CatCropUnfert):   types.SelCrops,
	string(types.CatFertNoCrop):   types.SelSmall,
	string(types.CatMachineReady): types.SelMachines,
}

// ConfigError collects every configuration problem found during
// normalization. The engine never traverses with an unrecognized
// inclusion target.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid criteria: %s", strings.Join(e.Problems, "; "))
}

// Normalize expands aliases, validates inclusion-set and category names,
// and applies the category→inclusion implication table. With no includes
// and no categories the default is the objects container.
func Normalize(c types.Criteria) (types.Inclusion, error) {
	ce := &ConfigError{}
	inc := types.Inclusion{}

	for _, name := range c.Include {
		switch {
		case selectors[name]:
			inc[name] = true
		case aliases[name] != nil:
			for _, sel := range aliases[name] {
				inc[sel] = true
			}
		default:
			ce.Problems = append(ce.Problems, unknownName("include", name, includeNames()))
		}
	}

	for _, cat := range c.Categories {
		sel, ok := categoryImplies[cat]
		if !ok {
			ce.Problems = append(ce.Problems, unknownName("category", cat, categoryNames()))
			continue
		}
		inc[sel] = true
	}

	if len(ce.Problems) > 0 {
		return nil, ce
	}
	if len(inc) == 0 {
		inc[types.SelObjects] = true
	}
	return inc, nil
}

// unknownName formats a validation problem, attaching the closest known
// name when one is within editing distance.
func unknownName(kind, name string, known []string) string {
	msg := fmt.Sprintf("unknown %s %q", kind, name)
	best := ""
	bestDist := 4 // anything further is noise
	for _, k := range known {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return msg
}

func includeNames() []string {
	names := make([]string, 0, len(selectors)+len(aliases))
	for s := range selectors {
		names = append(names, s)
	}
	for a := range aliases {
		names = append(names, a)
	}
	return names
}

func categoryNames() []string {
	names := make([]string, 0, len(categoryImplies))
	for c := range categoryImplies {
		names = append(names, c)
	}
	return names
}

// Kinds that define no sub-categories; they pass any category filter
// trivially.
var uncategorized = map[types.Kind]bool{
	types.KindTree:      true,
	types.KindFruitTree: true,
	types.KindAnimal:    true,
	types.KindSlime:     true,
}

// Filter applies the category, name, map, type, and position axes. Axes
// combine with AND; an absent criterion imposes no constraint. The result
// preserves collection order.
func Filter(entities []types.Entity, c types.Criteria) []types.Entity {
	out := make([]types.Entity, 0, len(entities))
	for _, e := range entities {
		if !passCategory(e, c.Categories) {
			continue
		}
		if !passName(e, c.Names) {
			continue
		}
		if !match.MatchAny(c.Maps, e.Map) {
			continue
		}
		if !passType(e, c.Types) {
			continue
		}
		if !passPosition(e, c.Positions) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func passCategory(e types.Entity, want []string) bool {
	if len(want) == 0 || uncategorized[e.Kind] {
		return true
	}
	for _, w := range want {
		for _, have := range e.Categories {
			if types.Category(w) == have {
				return true
			}
		}
	}
	return false
}

// passName applies name patterns. An entity without a resolved name never
// matches a positive pattern but is unaffected by purely negative ones.
func passName(e types.Entity, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	if e.Name == "" {
		for _, p := range patterns {
			if !strings.HasPrefix(p, "!") {
				return false
			}
		}
		return true
	}
	return match.MatchAny(patterns, e.Name)
}

// passType applies type-tag patterns. Entities lacking a type tag match
// vacuously only when no type pattern is given.
func passType(e types.Entity, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	if e.Type == "" {
		return false
	}
	return match.MatchAny(patterns, e.Type)
}

func passPosition(e types.Entity, want []types.Point) bool {
	if len(want) == 0 {
		return true
	}
	if e.Pos == nil {
		return false
	}
	for _, p := range want {
		if p == *e.Pos {
			return true
		}
	}
	return false
}
