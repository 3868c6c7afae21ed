package stardew

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if !d.KnownLocation("Farm") {
		t.Error("Farm should be a known location")
	}
	if !d.KnownLocation(LocationUnknown) {
		t.Error("the unknown-location placeholder must be recognized")
	}
	if d.KnownLocation("Narnia") {
		t.Error("Narnia should not be a known location")
	}
	if !d.Forage["Leek"] {
		t.Error("Leek should be forage")
	}
	if d.ArtifactSpot != "Artifact Spot" {
		t.Errorf("ArtifactSpot = %q", d.ArtifactSpot)
	}
	if !d.DigSpots["Clay"] {
		t.Error("Clay should be a bonus dig spot")
	}
	if got := d.ObjectName("472"); got != "Parsnip" {
		t.Errorf("ObjectName(472) = %q, want Parsnip", got)
	}
}

func TestObjectNameMisses(t *testing.T) {
	d := Default()
	if got := d.ObjectName("no-such-id"); got != "" {
		t.Errorf("unknown id = %q, want empty", got)
	}
	var nilData *Data
	if got := nilData.ObjectName("472"); got != "" {
		t.Errorf("nil data = %q, want empty", got)
	}
}

func TestLoadEmptyDirUsesDefaults(t *testing.T) {
	d, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !d.KnownLocation("Farm") || !d.Forage["Leek"] {
		t.Error("empty data directory should keep the defaults")
	}
}

func TestLoadMissingDirFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for a missing data directory")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("locations.json", `["Farm", "ModdedCave"]`)
	write("forage.json", `["Space Shroom"]`)
	write("digspots.json", `{"artifact": "Odd Spot", "bonus": ["Geode"]}`)
	write("objects.json", `{"9000": "Star Fruit"}`)

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !d.KnownLocation("ModdedCave") {
		t.Error("override location missing")
	}
	if d.Forage["Leek"] || !d.Forage["Space Shroom"] {
		t.Error("forage override should replace the defaults")
	}
	if d.ArtifactSpot != "Odd Spot" || !d.DigSpots["Geode"] {
		t.Error("digspots override not applied")
	}
	if d.ObjectName("9000") != "Star Fruit" || d.ObjectName("472") != "" {
		t.Error("objects override should replace the defaults")
	}
}

// Malformed files are skipped; the defaults survive.
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "forage.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !d.Forage["Leek"] {
		t.Error("malformed forage.json should leave defaults in place")
	}
}
