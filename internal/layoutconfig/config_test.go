package layoutconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kittech/kbproximity/internal/keylayout"
)

const sampleYAML = `
keyboard_width: 300
keyboard_height: 160
grid_width: 3
grid_height: 1
most_common_key_width: 100
most_common_key_height: 160
keys:
  - code: "q"
    x: 0
    y: 0
    width: 100
    height: 160
    sweet_spot_x: 50
    sweet_spot_y: 80
    sweet_spot_radius: 10
  - code: "w"
    x: 100
    y: 0
    width: 100
    height: 160
    sweet_spot_x: 150
    sweet_spot_y: 80
    sweet_spot_radius: 10
  - code: "e"
    x: 200
    y: 0
    width: 100
    height: 160
    sweet_spot_x: 250
    sweet_spot_y: 80
    sweet_spot_radius: 10
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesKeys(t *testing.T) {
	doc, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Keys) != 3 {
		t.Fatalf("len(Keys) = %d, want 3", len(doc.Keys))
	}
	if doc.Keys[1].Code != "w" {
		t.Errorf("Keys[1].Code = %q, want \"w\"", doc.Keys[1].Code)
	}
}

func TestLoadRejectsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("grid_width: 1\ngrid_height: 1\nmost_common_key_width: 10\nmost_common_key_height: 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with no keys = nil error, want error")
	}
}

func TestBuildDerivesProximityGrid(t *testing.T) {
	doc, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	params := doc.Build()

	// The middle cell [100,200) is within one key-width margin of all three keys.
	middle := params.ProximityChars[keylayout.MaxProximityCharsSize : keylayout.MaxProximityCharsSize+3]
	if string(middle) != "qwe" {
		t.Errorf("middle cell candidates = %q, want \"qwe\"", string(middle))
	}

	l := keylayout.New(params)
	idx, ok := l.KeyIndexOf('w')
	if !ok || idx != 1 {
		t.Fatalf("KeyIndexOf('w') = (%d, %v), want (1, true)", idx, ok)
	}
	if !l.HasTouchPositionCorrectionData() {
		t.Error("expected correction data from the sample's sweet spots")
	}
}
