package report

import (
	"strings"

	"github.com/mhaley/farmscan/types"
	"github.com/mhaley/farmscan/xmltree"
)

// friendly names a value substitution applied below the full tier. At
// full, raw numerics are always shown.
type friendly int

const (
	friendlyNone friendly = iota
	friendlyObjectName
	friendlyHappiness
	friendlyGrowthStage
	friendlyQuality
)

// fieldSpec is one renderable field of an entity kind: the label printed,
// the slash path into the raw node, and the first verbosity tier that
// includes it. Tiers are strictly additive, so a field visible at normal
// is visible at long and full too.
type fieldSpec struct {
	Label string
	Path  string
	Tier  types.Level
	Subst friendly
}

// fieldTables drives the level-aware renderer: data, not branching code.
var fieldTables = map[types.Kind][]fieldSpec{
	types.KindCrop: {
		{Label: "crop", Path: "crop/seedIndex", Tier: types.LevelBrief, Subst: friendlyObjectName},
		{Label: "seasons", Path: "crop/seasonsToGrowIn", Tier: types.LevelNormal},
		{Label: "forage", Path: "crop/forageCrop", Tier: types.LevelLong},
		{Label: "fertilizer", Path: "fertilizer", Tier: types.LevelLong, Subst: friendlyObjectName},
		{Label: "phase", Path: "crop/currentPhase", Tier: types.LevelFull},
		{Label: "day", Path: "crop/dayOfCurrentPhase", Tier: types.LevelFull},
		{Label: "min yield", Path: "crop/minHarvest", Tier: types.LevelFull},
		{Label: "max yield", Path: "crop/maxHarvest", Tier: types.LevelFull},
	},
	types.KindObject: {
		{Label: "type", Path: "type", Tier: types.LevelNormal},
		{Label: "quality", Path: "quality", Tier: types.LevelNormal, Subst: friendlyQuality},
		{Label: "stack", Path: "stack", Tier: types.LevelNormal},
		{Label: "price", Path: "price", Tier: types.LevelLong},
		{Label: "edibility", Path: "edibility", Tier: types.LevelLong},
		{Label: "id", Path: "parentSheetIndex", Tier: types.LevelFull},
		{Label: "raw category", Path: "category", Tier: types.LevelFull},
	},
	types.KindMachine: {
		{Label: "holding", Path: "heldObject/name", Tier: types.LevelNormal},
		{Label: "ready", Path: "readyForHarvest", Tier: types.LevelNormal},
		{Label: "minutes left", Path: "minutesUntilReady", Tier: types.LevelLong},
		{Label: "id", Path: "parentSheetIndex", Tier: types.LevelFull},
		{Label: "fragility", Path: "fragility", Tier: types.LevelFull},
	},
	types.KindTree: {
		{Label: "stage", Path: "growthStage", Tier: types.LevelNormal, Subst: friendlyGrowthStage},
		{Label: "seed", Path: "hasSeed", Tier: types.LevelNormal},
		{Label: "tapped", Path: "tapped", Tier: types.LevelNormal},
		{Label: "health", Path: "health", Tier: types.LevelLong},
		{Label: "type", Path: "treeType", Tier: types.LevelFull},
	},
	types.KindFruitTree: {
		{Label: "season", Path: "fruitSeason", Tier: types.LevelNormal},
		{Label: "stage", Path: "growthStage", Tier: types.LevelNormal, Subst: friendlyGrowthStage},
		{Label: "days to mature", Path: "daysUntilMature", Tier: types.LevelLong},
		{Label: "fruit", Path: "fruitsOnTree", Tier: types.LevelLong},
		{Label: "type", Path: "treeType", Tier: types.LevelFull},
	},
	types.KindAnimal: {
		{Label: "type", Path: "type", Tier: types.LevelBrief},
		{Label: "friendship", Path: "friendshipTowardFarmer", Tier: types.LevelNormal},
		{Label: "happiness", Path: "happiness", Tier: types.LevelNormal, Subst: friendlyHappiness},
		{Label: "age", Path: "age", Tier: types.LevelLong},
		{Label: "days owned", Path: "daysOwned", Tier: types.LevelLong},
		{Label: "fullness", Path: "fullness", Tier: types.LevelFull},
		{Label: "produce", Path: "currentProduce", Tier: types.LevelFull},
	},
	types.KindSlime: {
		{Label: "health", Path: "health", Tier: types.LevelNormal},
		{Label: "cute", Path: "cute", Tier: types.LevelNormal},
		{Label: "damage", Path: "damageToFarmer", Tier: types.LevelLong},
		{Label: "speed", Path: "speed", Tier: types.LevelFull},
		{Label: "coins", Path: "coinsToDrop", Tier: types.LevelFull},
	},
}

// statusWords maps categories to the status note shown at every tier.
var statusWords = map[types.Category]string{
	types.CatCropDead:     "dead",
	types.CatCropReady:    "ready",
	types.CatMachineReady: "ready",
	types.CatForage:       "forage",
	types.CatArtifact:     "artifact",
	types.CatCropUnfert:   "unfertilized",
	types.CatFertNoCrop:   "fertilized",
	types.CatObject:       "dig bonus",
}

// fieldValue resolves a field path against the raw node. Container
// elements (seasonsToGrowIn and friends) flatten to a comma-joined list
// of their leaf texts.
func fieldValue(e types.Entity, path string) string {
	node := xmltree.Descend(e.Raw, path)
	if node == nil {
		return ""
	}
	kids := node.ChildElements()
	if len(kids) == 0 {
		return strings.TrimSpace(node.Text())
	}
	parts := make([]string, 0, len(kids))
	for _, k := range kids {
		if t := strings.TrimSpace(k.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ",")
}

// treeStages names the growth stages a tree passes through.
var treeStages = map[string]string{
	"0": "seed",
	"1": "sprout",
	"2": "sapling",
	"3": "bush",
	"4": "small tree",
	"5": "mature",
}

var qualityNames = map[string]string{
	"0": "normal",
	"1": "silver",
	"2": "gold",
	"4": "iridium",
}

// substitute applies a friendly replacement to a raw value. Substitutions
// are suppressed at the full tier, where exact internals are shown.
func (r *Renderer) substitute(s friendly, raw string) string {
	if r.Crit.Level >= types.LevelFull {
		return raw
	}
	switch s {
	case friendlyObjectName:
		if name := r.Data.ObjectName(raw); name != "" {
			return name
		}
	case friendlyHappiness:
		if raw == "255" {
			return "max happiness"
		}
	case friendlyGrowthStage:
		if name := treeStages[raw]; name != "" {
			return name
		}
	case friendlyQuality:
		if name := qualityNames[raw]; name != "" {
			return name
		}
	}
	return raw
}
