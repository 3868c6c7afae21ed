// Package stardew holds the static reference data the engine treats as
// opaque: recognized location names, forage item names, artifact and
// bonus-dig identifiers, and the object-id→name table used to label
// crops. Compiled defaults track the base game; a data directory of JSON
// files can override any of them so content-version drift is a data
// update, not an engine change. Missing or partial data degrades the
// affected classifications and never fails the run.
package stardew

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// LocationUnknown is the canonical name for a location whose node has no
// resolvable name.
const LocationUnknown = "<unknown>"

// Data is the immutable reference set shared across runs.
type Data struct {
	Locations    map[string]bool   // recognized map names
	Forage       map[string]bool   // forage object names
	DigSpots     map[string]bool   // bonus-dig object names (clay, fossils, ore nodes)
	ArtifactSpot string            // the artifact-spot object name
	Objects      map[string]string // object id → display name, for crop labels
}

// Default returns the compiled-in reference data.
func Default() *Data {
	return &Data{
		Locations:    toSet(defaultLocations),
		Forage:       toSet(defaultForage),
		DigSpots:     toSet(defaultDigSpots),
		ArtifactSpot: "Artifact Spot",
		Objects:      defaultObjects(),
	}
}

// Load returns the defaults overlaid with any JSON files found in dir:
// locations.json and forage.json ([]string), digspots.json ({"artifact":
// string, "bonus": []string}), and objects.json ({id: name}). An empty
// dir returns the defaults unchanged.
func Load(dir string) (*Data, error) {
	d := Default()
	if dir == "" {
		return d, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}

	var names []string
	if loadJSON(dir, "locations.json", &names) {
		d.Locations = toSet(names)
	}
	names = nil
	if loadJSON(dir, "forage.json", &names) {
		d.Forage = toSet(names)
	}
	var dig struct {
		Artifact string   `json:"artifact"`
		Bonus    []string `json:"bonus"`
	}
	if loadJSON(dir, "digspots.json", &dig) {
		d.ArtifactSpot = dig.Artifact
		d.DigSpots = toSet(dig.Bonus)
	}
	var objs map[string]string
	if loadJSON(dir, "objects.json", &objs) {
		d.Objects = objs
	}
	return d, nil
}

// ObjectName returns the display name for an object id, or "" when the
// table has no entry.
func (d *Data) ObjectName(id string) string {
	if d == nil {
		return ""
	}
	return d.Objects[id]
}

// KnownLocation reports whether the map name appears in the reference set.
func (d *Data) KnownLocation(name string) bool {
	return d != nil && d.Locations[name]
}

// loadJSON fills v from the named file, returning false when the file is
// absent. Unreadable or malformed files are logged and skipped; reference
// data is never fatal.
func loadJSON(dir, name string, v any) bool {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("skipping unreadable data file", "path", path, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn("skipping malformed data file", "path", path, "err", err)
		return false
	}
	log.Debug("loaded data file", "path", path)
	return true
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
