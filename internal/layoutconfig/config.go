// Package layoutconfig loads a keyboard layout description from YAML and
// builds the keylayout.LayoutParams a host would otherwise assemble from
// flat primitive arrays.
package layoutconfig

import (
	"fmt"
	"os"

	"github.com/kittech/kbproximity/internal/keylayout"
	"gopkg.in/yaml.v3"
)

// KeySpec describes one key's rectangle and, optionally, its calibrated
// sweet spot.
type KeySpec struct {
	Code            string  `yaml:"code"`
	X               int32   `yaml:"x"`
	Y               int32   `yaml:"y"`
	Width           int32   `yaml:"width"`
	Height          int32   `yaml:"height"`
	SweetSpotX      float32 `yaml:"sweet_spot_x"`
	SweetSpotY      float32 `yaml:"sweet_spot_y"`
	SweetSpotRadius float32 `yaml:"sweet_spot_radius"`
}

// Document is the on-disk YAML shape of a keyboard layout description. The
// proximity grid is not stored in the file; Build derives it from the key
// rectangles, since that is the part a layout author would otherwise have
// to keep in sync by hand.
type Document struct {
	KeyboardWidth       int32     `yaml:"keyboard_width"`
	KeyboardHeight      int32     `yaml:"keyboard_height"`
	GridWidth           int32     `yaml:"grid_width"`
	GridHeight          int32     `yaml:"grid_height"`
	MostCommonKeyWidth  int32     `yaml:"most_common_key_width"`
	MostCommonKeyHeight int32     `yaml:"most_common_key_height"`
	Keys                []KeySpec `yaml:"keys"`
}

// Load reads and parses a layout description from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layoutconfig: reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("layoutconfig: parsing %s: %w", path, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("layoutconfig: %s: %w", path, err)
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if d.GridWidth <= 0 || d.GridHeight <= 0 {
		return fmt.Errorf("grid_width and grid_height must be positive")
	}
	if d.MostCommonKeyWidth <= 0 || d.MostCommonKeyHeight <= 0 {
		return fmt.Errorf("most_common_key_width and most_common_key_height must be positive")
	}
	if len(d.Keys) == 0 {
		return fmt.Errorf("at least one key is required")
	}
	return nil
}

// Build converts the document into keylayout.LayoutParams, deriving the
// per-cell proximity grid from the key rectangles: a key is listed in a
// cell's candidates whenever its rectangle (expanded by one most-common key
// width on every side) overlaps that cell.
func (d *Document) Build() keylayout.LayoutParams {
	n := len(d.Keys)
	p := keylayout.LayoutParams{
		KeyboardWidth: d.KeyboardWidth, KeyboardHeight: d.KeyboardHeight,
		GridWidth: d.GridWidth, GridHeight: d.GridHeight,
		MostCommonKeyWidth: d.MostCommonKeyWidth, MostCommonKeyHeight: d.MostCommonKeyHeight,
		KeyCodes: make([]rune, n),
		KeyX:     make([]int32, n), KeyY: make([]int32, n),
		KeyWidth: make([]int32, n), KeyHeight: make([]int32, n),
		SweetSpotX: make([]float32, n), SweetSpotY: make([]float32, n), SweetSpotRadius: make([]float32, n),
	}
	for i, k := range d.Keys {
		r := []rune(k.Code)
		if len(r) > 0 {
			p.KeyCodes[i] = r[0]
		}
		p.KeyX[i], p.KeyY[i] = k.X, k.Y
		p.KeyWidth[i], p.KeyHeight[i] = k.Width, k.Height
		p.SweetSpotX[i], p.SweetSpotY[i], p.SweetSpotRadius[i] = k.SweetSpotX, k.SweetSpotY, k.SweetSpotRadius
	}
	p.ProximityChars = d.buildProximityGrid()
	return p
}

func (d *Document) buildProximityGrid() []rune {
	cellWidth := ceilDiv(d.KeyboardWidth, d.GridWidth)
	cellHeight := ceilDiv(d.KeyboardHeight, d.GridHeight)
	margin := d.MostCommonKeyWidth

	grid := make([]rune, int(d.GridWidth)*int(d.GridHeight)*keylayout.MaxProximityCharsSize)
	for row := int32(0); row < d.GridHeight; row++ {
		for col := int32(0); col < d.GridWidth; col++ {
			cellLeft, cellTop := col*cellWidth, row*cellHeight
			cellRight, cellBottom := cellLeft+cellWidth, cellTop+cellHeight
			base := int((row*d.GridWidth + col) * keylayout.MaxProximityCharsSize)

			slot := 0
			for _, k := range d.Keys {
				if slot >= keylayout.MaxProximityCharsSize {
					break
				}
				if k.X-margin >= cellRight || k.X+k.Width+margin <= cellLeft ||
					k.Y-margin >= cellBottom || k.Y+k.Height+margin <= cellTop {
					continue
				}
				r := []rune(k.Code)
				if len(r) == 0 {
					continue
				}
				grid[base+slot] = r[0]
				slot++
			}
		}
	}
	return grid
}

func ceilDiv(a, b int32) int32 {
	return (a + b - 1) / b
}
