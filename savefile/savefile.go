// Package savefile locates and loads save-game documents and walks their
// location tree into flat entity records. Loading is read-only: the
// document is never mutated, and every run re-derives its entities from
// the tree.
package savefile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"
)

// Save is a loaded, read-only save document.
type Save struct {
	Path string
	doc  *etree.Document
}

// DefaultPath returns the platform's save directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "StardewValley", "Saves")
		}
	}
	return filepath.Join(home, ".config", "StardewValley", "Saves")
}

// Deduce determines a save file path from just the farm name. Save
// directories are named "<Farm>_<id>"; the save file inside repeats the
// directory name.
func Deduce(farm, root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("scanning save path %s: %w", root, err)
	}
	for _, e := range entries {
		if !e.IsDir() || strings.Count(e.Name(), "_") != 1 {
			continue
		}
		name, id, _ := strings.Cut(e.Name(), "_")
		log.Debug("candidate farm", "name", name, "id", id)
		if name == farm {
			return filepath.Join(root, e.Name(), e.Name()), nil
		}
	}
	return "", fmt.Errorf("no save found for farm %q in %s", farm, root)
}

// List returns the paths of all save files under root.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scanning save path %s: %w", root, err)
	}
	var saves []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name(), e.Name())
		if _, err := os.Stat(path); err == nil {
			saves = append(saves, path)
		}
	}
	return saves, nil
}

// Open loads a save document from a file path or a save directory.
func Open(path string) (*Save, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, filepath.Base(path))
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", path, err)
	}
	return &Save{Path: path, doc: doc}, nil
}

// Parse loads a save document from in-memory XML.
func Parse(data []byte) (*Save, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing save document: %w", err)
	}
	return &Save{doc: doc}, nil
}
