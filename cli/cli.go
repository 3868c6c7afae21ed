// Package cli wires command-line flags into an immutable criteria record
// and runs the walk → filter → render pipeline against one save document.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhaley/farmscan/query"
	"github.com/mhaley/farmscan/report"
	"github.com/mhaley/farmscan/savefile"
	"github.com/mhaley/farmscan/stardew"
	"github.com/mhaley/farmscan/types"
)

// traceLevel sits below debug for per-entity walk output.
const traceLevel = log.DebugLevel - 4

// options collects raw flag values before they are normalized into a
// criteria record. Nothing reads these after buildCriteria runs.
type options struct {
	farm     string
	file     string
	savePath string
	dataDir  string
	list     bool

	include    []string
	categories []string
	names      []string
	maps       []string
	typeTags   []string
	positions  []string

	level      int
	format     string
	count      bool
	sortOut    bool
	noColor    bool
	formatters []string
	verbose    int
}

// NewRoot builds the farmscan root command.
func NewRoot(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "farmscan",
		Short: "inspect and query save-game documents",
		Long: `farmscan inspects a save-game document and reports the objects,
terrain features, crops, trees, animals, slimes, and machines that match
the given criteria.

The -n, -m, and -t flags accept simple glob patterns: '*' matches any run
of characters, and a leading '!' excludes matches. Repeating a flag ORs
its patterns together; different flags combine with AND.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.farm, "farm", "", "farm name to search the save path for")
	f.StringVarP(&opts.file, "file", "f", "", "path to a save file or save directory")
	f.BoolVar(&opts.list, "list", false, "list available save files and exit")
	f.StringVarP(&opts.savePath, "save-path", "P", savefile.DefaultPath(), "path to the saves directory")
	f.StringVar(&opts.dataDir, "data", "", "directory of reference data overrides")

	f.StringArrayVarP(&opts.include, "include", "i", nil,
		"entity selectors: objects, machines, crops, small, large, trees, fruittrees, animals, slimes, alltrees, features, all")
	f.StringArrayVarP(&opts.categories, "category", "C", nil,
		"category filters: forage, artifact, object, cropready, cropdead, nofert, fertnocrop, ready")
	f.StringArrayVarP(&opts.names, "name", "n", nil, "select entities by display name")
	f.StringArrayVarP(&opts.maps, "map", "m", nil, "limit to specific maps")
	f.StringArrayVarP(&opts.typeTags, "type", "t", nil, "limit to specific type tags")
	f.StringArrayVar(&opts.positions, "at-pos", nil, "limit to tile coordinates, as X,Y")

	f.IntVarP(&opts.level, "level", "l", 0, "verbosity tier: 0=brief 1=normal 2=long 3=full")
	f.StringVarP(&opts.format, "format", "o", "text", "output format: text, json, xml")
	f.BoolVarP(&opts.count, "count", "c", false, "show aggregate name counts")
	f.BoolVarP(&opts.sortOut, "sort", "s", false, "sort count output by descending count")
	f.StringArrayVarP(&opts.formatters, "formatter", "F", nil,
		"structured-output cleanup: false, zero, points")
	f.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	f.CountVarP(&opts.verbose, "verbose", "v", "verbose logging; repeat for per-entity detail")

	return cmd
}

// Execute runs the root command and returns a process exit code.
func Execute(version string) int {
	log.SetOutput(os.Stderr)
	if err := NewRoot(version).Execute(); err != nil {
		log.Error(err.Error())
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, opts *options) error {
	switch opts.verbose {
	case 0:
		log.SetLevel(log.InfoLevel)
	case 1:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(traceLevel)
	}

	if opts.list {
		saves, err := savefile.List(opts.savePath)
		if err != nil {
			return err
		}
		for _, s := range saves {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	}

	path, err := resolveSave(opts)
	if err != nil {
		return err
	}

	crit, err := buildCriteria(opts)
	if err != nil {
		return err
	}

	// Normalization fails fast, before any file is opened.
	inc, err := query.Normalize(crit)
	if err != nil {
		return err
	}

	data, err := stardew.Load(opts.dataDir)
	if err != nil {
		return err
	}

	save, err := savefile.Open(path)
	if err != nil {
		return err
	}
	log.Debug("loaded save", "path", save.Path)

	entities := save.Collect(inc, data)
	filtered := query.Filter(entities, crit)
	log.Debug("filtered entities", "in", len(entities), "out", len(filtered))

	return report.New(cmd.OutOrStdout(), crit, data).Render(filtered)
}

// resolveSave picks the save file: explicit path first, then farm-name
// deduction against the save path.
func resolveSave(opts *options) (string, error) {
	if opts.file != "" {
		return opts.file, nil
	}
	if opts.farm != "" {
		return savefile.Deduce(opts.farm, opts.savePath)
	}
	return "", fmt.Errorf("no save selected: pass --farm, --file, or --list")
}

// buildCriteria validates scalar options and freezes the criteria record.
func buildCriteria(opts *options) (types.Criteria, error) {
	crit := types.Criteria{
		Include:    opts.include,
		Categories: opts.categories,
		Names:      opts.names,
		Maps:       opts.maps,
		Types:      opts.typeTags,
		Count:      opts.count,
		Sort:       opts.sortOut,
		NoColor:    opts.noColor,
		Formatters: opts.formatters,
	}

	if opts.level < int(types.LevelBrief) || opts.level > int(types.LevelFull) {
		return crit, fmt.Errorf("level must be between 0 and 3, got %d", opts.level)
	}
	crit.Level = types.Level(opts.level)

	switch types.Format(opts.format) {
	case types.FormatText, types.FormatJSON, types.FormatXML:
		crit.Format = types.Format(opts.format)
	default:
		return crit, fmt.Errorf("unknown format %q (want text, json, or xml)", opts.format)
	}

	for _, raw := range opts.positions {
		pt, err := parsePoint(raw)
		if err != nil {
			return crit, err
		}
		crit.Positions = append(crit.Positions, pt)
	}
	return crit, nil
}

// parsePoint parses an "X,Y" flag value into a tile coordinate.
func parsePoint(raw string) (types.Point, error) {
	xs, ys, ok := strings.Cut(raw, ",")
	if !ok {
		return types.Point{}, fmt.Errorf("invalid position %q (want X,Y)", raw)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return types.Point{}, fmt.Errorf("invalid position %q (want X,Y)", raw)
	}
	return types.Point{X: x, Y: y}, nil
}
