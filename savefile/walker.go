package savefile

import (
	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	"github.com/mhaley/farmscan/classify"
	"github.com/mhaley/farmscan/stardew"
	"github.com/mhaley/farmscan/types"
	"github.com/mhaley/farmscan/xmltree"
)

// Location is a named top-level region of the save.
type Location struct {
	Name string
	Elem *etree.Element
}

// Locations returns every map location in document order. Unresolvable
// names fall back to the unknown-location placeholder.
func (s *Save) Locations(data *stardew.Data) []Location {
	var locs []Location
	for _, gloc := range s.doc.FindElements("//GameLocation") {
		name := xmltree.ResolveName(gloc)
		if name == "" {
			name = stardew.LocationUnknown
		}
		if !data.KnownLocation(name) {
			log.Warn("unknown game location", "name", name)
		}
		locs = append(locs, Location{Name: name, Elem: gloc})
	}
	return locs
}

// Collect walks every location and returns the entities selected by the
// inclusion set, in location-traversal discovery order. The walker applies
// no name/map/type/position filters; it only decides which containers to
// visit and assigns each entity the kind its container dictates.
func (s *Save) Collect(inc types.Inclusion, data *stardew.Data) []types.Entity {
	var out []types.Entity
	for _, loc := range s.Locations(data) {
		out = append(out, collectObjects(loc, inc, data)...)
		out = append(out, collectSmallFeatures(loc, inc, data)...)
		out = append(out, collectLargeFeatures(loc, inc, data)...)
		out = append(out, collectBuildings(loc, inc, data)...)
	}
	for i := range out {
		log.Default().Log(traceLevel, "entity",
			"kind", out[i].Kind, "map", out[i].Map, "name", out[i].Name)
	}
	log.Debug("collected entities", "count", len(out))
	return out
}

// traceLevel sits below debug; enabled by repeated verbosity flags.
const traceLevel = log.DebugLevel - 4

// collectObjects visits the placed-object map. Big craftables are
// machines; everything else is a plain object. The machines selector is a
// sub-split of the container, so either selector opens it.
func collectObjects(loc Location, inc types.Inclusion, data *stardew.Data) []types.Entity {
	if !inc[types.SelObjects] && !inc[types.SelMachines] {
		return nil
	}
	var out []types.Entity
	for _, item := range loc.Elem.FindElements("objects/item") {
		obj := xmltree.Descend(item, "value/Object")
		if xmltree.IsNil(obj) {
			continue
		}
		kind := types.KindObject
		if xmltree.ChildText(obj, "bigCraftable") == "true" {
			kind = types.KindMachine
		}
		switch kind {
		case types.KindMachine:
			if !inc[types.SelMachines] && !inc[types.SelObjects] {
				continue
			}
		default:
			if !inc[types.SelObjects] {
				continue
			}
		}
		e := types.Entity{
			Kind: kind,
			Map:  loc.Name,
			Name: xmltree.ResolveName(obj),
			Type: xmltree.ChildText(obj, "type"),
			Raw:  obj,
		}
		if pt, ok := xmltree.Coord(xmltree.Child(obj, "tileLocation", false)); ok {
			e.Pos = &pt
		} else if pt, ok := xmltree.Coord(xmltree.Descend(item, "key/Vector2")); ok {
			e.Pos = &pt
		}
		e.Categories = classify.Classify(&e, data)
		out = append(out, e)
	}
	return out
}

// collectSmallFeatures visits the small terrain feature map. Tilled soil
// with a live crop is the crop sub-split of this container.
func collectSmallFeatures(loc Location, inc types.Inclusion, data *stardew.Data) []types.Entity {
	if !inc[types.SelSmall] && !inc[types.SelCrops] {
		return nil
	}
	var out []types.Entity
	for _, item := range loc.Elem.FindElements("terrainFeatures/item") {
		feat := xmltree.Descend(item, "value/TerrainFeature")
		if xmltree.IsNil(feat) {
			continue
		}
		kind := types.KindSmallTerrain
		if isCrop(feat) {
			kind = types.KindCrop
		}
		switch kind {
		case types.KindCrop:
			if !inc[types.SelCrops] && !inc[types.SelSmall] {
				continue
			}
		default:
			if !inc[types.SelSmall] {
				continue
			}
		}
		e := types.Entity{
			Kind: kind,
			Map:  loc.Name,
			Name: xmltree.ResolveName(feat),
			Raw:  feat,
		}
		if pt, ok := xmltree.Coord(xmltree.Descend(item, "key/Vector2")); ok {
			e.Pos = &pt
		}
		e.Categories = classify.Classify(&e, data)
		out = append(out, e)
	}
	return out
}

// collectLargeFeatures visits the large terrain feature list. Trees and
// fruit trees are sub-splits of this container.
func collectLargeFeatures(loc Location, inc types.Inclusion, data *stardew.Data) []types.Entity {
	if !inc[types.SelLarge] && !inc[types.SelTrees] && !inc[types.SelFruitTrees] {
		return nil
	}
	container := xmltree.Child(loc.Elem, "largeTerrainFeatures", false)
	if container == nil {
		return nil
	}
	var out []types.Entity
	for _, feat := range container.ChildElements() {
		if xmltree.IsNil(feat) {
			continue
		}
		name := xmltree.ResolveName(feat)
		kind := types.KindLargeTerrain
		switch name {
		case "Tree":
			kind = types.KindTree
		case "FruitTree":
			kind = types.KindFruitTree
		}
		switch kind {
		case types.KindTree:
			if !inc[types.SelTrees] && !inc[types.SelLarge] {
				continue
			}
		case types.KindFruitTree:
			if !inc[types.SelFruitTrees] && !inc[types.SelLarge] {
				continue
			}
		default:
			if !inc[types.SelLarge] {
				continue
			}
		}
		e := types.Entity{
			Kind: kind,
			Map:  loc.Name,
			Name: name,
			Raw:  feat,
		}
		if pt, ok := xmltree.Coord(xmltree.Child(feat, "tilePosition", false)); ok {
			e.Pos = &pt
		}
		e.Categories = classify.Classify(&e, data)
		out = append(out, e)
	}
	return out
}

// Pixels per tile for character positions.
const tileSize = 64

// collectBuildings descends only into buildings whose interior matches the
// requested kind; generic buildings are skipped without inspection.
func collectBuildings(loc Location, inc types.Inclusion, data *stardew.Data) []types.Entity {
	if !inc[types.SelAnimals] && !inc[types.SelSlimes] {
		return nil
	}
	var out []types.Entity
	for _, b := range loc.Elem.FindElements("buildings/Building") {
		indoors := xmltree.Child(b, "indoors", false)
		if indoors == nil {
			continue
		}
		switch indoors.SelectAttrValue("xsi:type", "") {
		case "AnimalHouse":
			if !inc[types.SelAnimals] {
				continue
			}
			for _, fa := range indoors.FindElements("animals/item/value/FarmAnimal") {
				if xmltree.IsNil(fa) {
					continue
				}
				e := types.Entity{
					Kind: types.KindAnimal,
					Map:  loc.Name,
					Name: xmltree.ResolveName(fa),
					Type: xmltree.ChildText(fa, "type"),
					Raw:  fa,
				}
				if pt, ok := xmltree.Coord(xmltree.Child(fa, "homeLocation", false)); ok {
					e.Pos = &pt
				}
				e.Categories = classify.Classify(&e, data)
				out = append(out, e)
			}
		case "SlimeHutch":
			if !inc[types.SelSlimes] {
				continue
			}
			for _, npc := range indoors.FindElements("characters/NPC") {
				if xmltree.IsNil(npc) {
					continue
				}
				e := types.Entity{
					Kind: types.KindSlime,
					Map:  loc.Name,
					Name: xmltree.ResolveName(npc),
					Raw:  npc,
				}
				// Character positions are stored in pixels.
				if pt, ok := xmltree.Coord(xmltree.Child(npc, "Position", false)); ok {
					pt.X /= tileSize
					pt.Y /= tileSize
					e.Pos = &pt
				}
				e.Categories = classify.Classify(&e, data)
				out = append(out, e)
			}
		}
	}
	return out
}

// isCrop reports whether a terrain feature is tilled soil with a live
// crop attached.
func isCrop(feat *etree.Element) bool {
	if xmltree.ResolveName(feat) != "HoeDirt" {
		return false
	}
	seed := xmltree.Descend(feat, "crop/seedIndex")
	return seed != nil && xmltree.Text(seed) != "-1"
}
