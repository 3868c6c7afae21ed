// Package types defines the shared data structures for the farmscan engine.
// This package contains only type definitions and trivial accessors — no
// traversal, filtering, or rendering logic.
package types

import "github.com/beevik/etree"

// Kind identifies which save-file collection an entity was found in.
// It is fully determined by the container (plus the crop/tree sub-split),
// never by filter state.
type Kind string

const (
	KindObject       Kind = "object"
	KindSmallTerrain Kind = "small-terrain"
	KindLargeTerrain Kind = "large-terrain"
	KindCrop         Kind = "crop"
	KindTree         Kind = "tree"
	KindFruitTree    Kind = "fruit-tree"
	KindAnimal       Kind = "animal"
	KindSlime        Kind = "slime"
	KindMachine      Kind = "machine"
)

// Category is a derived semantic tag, distinct from Kind, used for
// filtering. Categories are recomputed from the raw node on every run.
type Category string

const (
	CatForage       Category = "forage"
	CatArtifact     Category = "artifact"
	CatObject       Category = "object"
	CatMachineReady Category = "ready"
	CatCropReady    Category = "cropready"
	CatCropDead     Category = "cropdead"
	CatCropUnfert   Category = "nofert"
	CatFertNoCrop   Category = "fertnocrop"
	CatOther        Category = "other"
)

// Level is one of four increasing verbosity tiers. Each tier's rendered
// fields are a superset of the previous tier's.
type Level int

const (
	LevelBrief Level = iota
	LevelNormal
	LevelLong
	LevelFull
)

// Format selects the output representation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Point is a tile coordinate within a map.
type Point struct {
	X int
	Y int
}

// Entity is the engine's normalized handle over one in-tree node.
// Raw is retained for level-aware rendering; it is never mutated.
type Entity struct {
	Kind       Kind
	Map        string // owning location's canonical name
	Name       string // resolved display name; "" if unresolvable
	Pos        *Point // nil for entities that are not tile-bound
	Type       string // node-provided type tag; objects and machines only
	Categories []Category
	Raw        *etree.Element
}

// Inclusion is the set of entity selectors the walker will traverse into,
// derived from requested include options plus category-implied additions.
type Inclusion map[string]bool

// Selector names an Inclusion can hold after alias expansion.
const (
	SelObjects    = "objects"
	SelMachines   = "machines"
	SelCrops      = "crops"
	SelSmall      = "small"
	SelLarge      = "large"
	SelTrees      = "trees"
	SelFruitTrees = "fruittrees"
	SelAnimals    = "animals"
	SelSlimes     = "slimes"
)

// Criteria is the immutable configuration record for one run. It is built
// once from parsed options and passed explicitly through collection,
// filtering, and rendering.
type Criteria struct {
	Include    []string // inclusion-set names, before expansion
	Categories []string // requested category filters
	Names      []string // display-name patterns
	Maps       []string // map-name patterns
	Types      []string // type-tag patterns
	Positions  []Point  // explicit tile coordinates
	Level      Level
	Format     Format
	Count      bool     // aggregate counts instead of per-entity lines
	Sort       bool     // sort count output by descending count
	NoColor    bool     // disable styled text output
	Formatters []string // structured-output value cleanup: false, zero, points
}
