package xmltree

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/mhaley/farmscan/types"
)

// parse returns the root element of an XML snippet.
func parse(t *testing.T, src string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		t.Fatalf("parsing snippet: %v", err)
	}
	return doc.Root()
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "attribute wins",
			src:  `<Object xsi:type="Chest"><name>ignored</name></Object>`,
			want: "Chest",
		},
		{
			name: "lowercase name child",
			src:  `<GameLocation><name>Farm</name></GameLocation>`,
			want: "Farm",
		},
		{
			name: "capitalized name child",
			src:  `<Object><Name>Clay</Name></Object>`,
			want: "Clay",
		},
		{
			name: "lowercase beats capitalized",
			src:  `<Object><name>lower</name><Name>upper</Name></Object>`,
			want: "lower",
		},
		{
			name: "unresolvable is empty not error",
			src:  `<Object><other>x</other></Object>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(parse(t, tt.src)); got != tt.want {
				t.Errorf("ResolveName = %q, want %q", got, tt.want)
			}
		})
	}
}

// Name resolution must not depend on anything but the node itself:
// resolving twice yields the same string.
func TestResolveNameStable(t *testing.T) {
	e := parse(t, `<Object xsi:type="Chest"/>`)
	if ResolveName(e) != ResolveName(e) {
		t.Error("ResolveName is not stable")
	}
}

func TestDescend(t *testing.T) {
	e := parse(t, `<TerrainFeature><crop><seedIndex>472</seedIndex></crop></TerrainFeature>`)
	if got := Text(Descend(e, "crop/seedIndex")); got != "472" {
		t.Errorf("Descend text = %q, want 472", got)
	}
	if Descend(e, "crop/missing") != nil {
		t.Error("Descend should return nil for a missing path")
	}
	if Descend(nil, "crop") != nil {
		t.Error("Descend of nil should be nil")
	}
}

func TestChildFold(t *testing.T) {
	e := parse(t, `<Object><Name>Clay</Name></Object>`)
	if Child(e, "name", false) != nil {
		t.Error("exact lookup should not match Name")
	}
	if Child(e, "name", true) == nil {
		t.Error("folded lookup should match Name")
	}
}

func TestIsNil(t *testing.T) {
	if !IsNil(parse(t, `<Object xsi:nil="true"/>`)) {
		t.Error("xsi:nil element should be nil")
	}
	if IsNil(parse(t, `<Object><name>x</name></Object>`)) {
		t.Error("element with children is not nil")
	}
	if !IsNil(nil) {
		t.Error("missing element counts as nil")
	}
}

func TestCoord(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   types.Point
		wantOK bool
	}{
		{name: "ints", src: `<tileLocation><X>12</X><Y>13</Y></tileLocation>`, want: types.Point{X: 12, Y: 13}, wantOK: true},
		{name: "floats truncate", src: `<Position><X>832.5</X><Y>448</Y></Position>`, want: types.Point{X: 832, Y: 448}, wantOK: true},
		{name: "missing axis", src: `<tileLocation><X>12</X></tileLocation>`, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coord(parse(t, tt.src))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Coord = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDump(t *testing.T) {
	src := `<Object xsi:type="Chest">
		<name>Chest</name>
		<stack>1</stack>
		<isRecipe>false</isRecipe>
		<tileLocation><X>3</X><Y>4</Y></tileLocation>
	</Object>`

	got := Dump(parse(t, src), DumpOptions{})
	want := map[string]any{
		"Object": map[string]any{
			"name":     "Chest",
			"stack":    1,
			"isRecipe": false,
			"tileLocation": map[string]any{
				"X": 3,
				"Y": 4,
			},
			AttrsKey: map[string]any{"xsi:type": "Chest"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpOptions(t *testing.T) {
	src := `<Object>
		<isRecipe>false</isRecipe>
		<speed>0</speed>
		<stack>2</stack>
		<tileLocation><X>3</X><Y>4</Y></tileLocation>
	</Object>`

	got := Dump(parse(t, src), DumpOptions{DropFalse: true, DropZero: true, Points: true})
	want := map[string]any{
		"Object": map[string]any{
			"stack":        2,
			"tileLocation": []any{3, 4},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpRepeatedChildren(t *testing.T) {
	src := `<seasonsToGrowIn><string>spring</string><string>summer</string></seasonsToGrowIn>`
	got := Dump(parse(t, src), DumpOptions{})
	want := map[string]any{
		"seasonsToGrowIn": map[string]any{
			"string": []any{"spring", "summer"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

func TestScalarNegativeNumbers(t *testing.T) {
	e := parse(t, `<seedIndex>-1</seedIndex>`)
	got := Dump(e, DumpOptions{})
	if got["seedIndex"] != -1 {
		t.Errorf("negative int = %v, want -1", got["seedIndex"])
	}
}
