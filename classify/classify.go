// Package classify derives semantic categories for collected entities.
// Classification is a pure function of the raw node, the entity's kind,
// and the reference data: repeated calls always yield the same set, and
// nothing is stored back on the tree.
package classify

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/mhaley/farmscan/stardew"
	"github.com/mhaley/farmscan/types"
	"github.com/mhaley/farmscan/xmltree"
)

// Names a machine-shaped node may carry that are not machines. Item
// pedestals hold an object and report ready, but displaying is not
// producing.
var pedestalNames = map[string]bool{
	"ItemPedestal":  true,
	"Item Pedestal": true,
}

// Classify returns the entity's categories in fixed rule order. Entities
// matching no rule get the other category; kinds with no sub-categories
// (trees, fruit trees, animals, slimes) always land there and are passed
// through category filters trivially by the pipeline.
func Classify(e *types.Entity, data *stardew.Data) []types.Category {
	var cats []types.Category

	switch e.Kind {
	case types.KindMachine:
		if machineReady(e) {
			cats = append(cats, types.CatMachineReady)
		}

	case types.KindObject:
		if data != nil && data.Forage[e.Name] {
			cats = append(cats, types.CatForage)
		}
		if data != nil && e.Name != "" && e.Name == data.ArtifactSpot {
			cats = append(cats, types.CatArtifact)
		} else if data != nil && data.DigSpots[e.Name] {
			cats = append(cats, types.CatObject)
		}

	case types.KindCrop:
		cats = append(cats, cropCategories(e.Raw)...)

	case types.KindSmallTerrain:
		if fertilizedBareSoil(e) {
			cats = append(cats, types.CatFertNoCrop)
		}
	}

	if len(cats) == 0 {
		cats = append(cats, types.CatOther)
	}
	return cats
}

// machineReady reports whether a machine is running with contents and has
// finished. Pedestals are carved out: they satisfy the shape but are not
// machines semantically.
func machineReady(e *types.Entity) bool {
	if pedestalNames[e.Name] {
		return false
	}
	held := xmltree.Child(e.Raw, "heldObject", false)
	if held == nil || xmltree.IsNil(held) {
		return false
	}
	return xmltree.ChildText(e.Raw, "readyForHarvest") == "true"
}

// cropCategories derives the crop sub-categories: harvestable, dead, and
// unfertilized soil.
func cropCategories(feat *etree.Element) []types.Category {
	var cats []types.Category
	crop := xmltree.Child(feat, "crop", false)
	if crop == nil {
		return cats
	}
	if xmltree.ChildText(crop, "fullyGrown") == "true" ||
		xmltree.ChildText(crop, "fullGrown") == "true" {
		cats = append(cats, types.CatCropReady)
	}
	if xmltree.ChildText(crop, "dead") == "true" {
		cats = append(cats, types.CatCropDead)
	}
	if fertilizer(feat) <= 0 {
		cats = append(cats, types.CatCropUnfert)
	}
	return cats
}

// fertilizedBareSoil reports tilled soil with fertilizer but no crop.
func fertilizedBareSoil(e *types.Entity) bool {
	if e.Name != "HoeDirt" {
		return false
	}
	seed := xmltree.Descend(e.Raw, "crop/seedIndex")
	if seed != nil && seed.Text() != "-1" {
		return false
	}
	return fertilizer(e.Raw) > 0
}

func fertilizer(feat *etree.Element) int {
	n, err := strconv.Atoi(xmltree.ChildText(feat, "fertilizer"))
	if err != nil {
		return 0
	}
	return n
}
