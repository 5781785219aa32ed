// Package keylayout implements the immutable per-layout keyboard geometry
// model (ProximityInfo in the specification): key rectangles, the per-cell
// proximity grid, sweet-spot centers, and the symmetric key-to-key distance
// matrix derived from them.
package keylayout

import (
	"fmt"
	"math"

	"github.com/kittech/kbproximity/internal/geometry"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// LayoutParams bundles the flat per-key arrays a host supplies when
// describing a keyboard layout, mirroring the layout_create boundary
// operation. All per-key slices must have equal length (capped at
// MaxKeyCount); ProximityChars must have length
// GridWidth*GridHeight*MaxProximityCharsSize.
type LayoutParams struct {
	KeyboardWidth, KeyboardHeight         int32
	GridWidth, GridHeight                 int32
	MostCommonKeyWidth, MostCommonKeyHeight int32
	ProximityChars                         []rune

	KeyCodes                   []rune
	KeyX, KeyY                 []int32
	KeyWidth, KeyHeight        []int32
	SweetSpotX, SweetSpotY     []float32
	SweetSpotRadius            []float32
}

// Layout is the immutable keyboard geometry model for one rendered layout.
// It is safe for concurrent reads from multiple goroutines once New returns.
type Layout struct {
	gridWidth, gridHeight                    int32
	cellWidth, cellHeight                    int32
	mostCommonKeyWidth, mostCommonKeyHeight  int32
	mostCommonKeyWidthSquare                 int32
	normalizedSquaredMostCommonKeyHypotenuse float32
	keyboardWidth, keyboardHeight            int32
	keyboardHypotenuse                       float32
	keyCount                                 int
	hasTouchPositionCorrectionData           bool

	proximityChars []rune

	keyX, keyY          []int32
	keyWidth, keyHeight []int32
	keyCharCodes        []rune

	sweetSpotCenterX, sweetSpotCenterY []float32
	sweetSpotRadius                    []float32
	sweetSpotCenterYg                  []float32

	lowerCodePointToKeyIndex map[rune]int
	keyIndexToOriginalCode   []rune
	keyIndexToLowerCode      []rune

	centerXg, centerYg []int32
	keyKeyDistancesG   [][]int32
}

// New builds an immutable Layout from the given parameters. It panics if
// ProximityChars has the wrong length or if any per-key slice is shorter
// than the (capped) key count -- a LayoutInvariantViolation is fatal at
// construction, per the specification's error taxonomy.
func New(p LayoutParams) *Layout {
	expectedProxLen := int(p.GridWidth) * int(p.GridHeight) * MaxProximityCharsSize
	if len(p.ProximityChars) != expectedProxLen {
		panic(fmt.Sprintf("keylayout: invalid proximity_chars length %d, want %d", len(p.ProximityChars), expectedProxLen))
	}

	keyCount := len(p.KeyCodes)
	if keyCount > MaxKeyCount {
		keyCount = MaxKeyCount
	}
	requireLen := func(name string, n int) {
		if n < keyCount {
			panic(fmt.Sprintf("keylayout: %s has length %d, want at least %d", name, n, keyCount))
		}
	}
	requireLen("KeyX", len(p.KeyX))
	requireLen("KeyY", len(p.KeyY))
	requireLen("KeyWidth", len(p.KeyWidth))
	requireLen("KeyHeight", len(p.KeyHeight))
	requireLen("SweetSpotX", len(p.SweetSpotX))
	requireLen("SweetSpotY", len(p.SweetSpotY))
	requireLen("SweetSpotRadius", len(p.SweetSpotRadius))

	hasCorrection := false
	if keyCount > 0 {
		for _, r := range p.SweetSpotRadius[:keyCount] {
			if r > 0 {
				hasCorrection = true
				break
			}
		}
	}

	l := &Layout{
		gridWidth:          p.GridWidth,
		gridHeight:         p.GridHeight,
		cellWidth:          ceilDiv(p.KeyboardWidth, p.GridWidth),
		cellHeight:         ceilDiv(p.KeyboardHeight, p.GridHeight),
		mostCommonKeyWidth: p.MostCommonKeyWidth,
		mostCommonKeyHeight: p.MostCommonKeyHeight,
		mostCommonKeyWidthSquare: p.MostCommonKeyWidth * p.MostCommonKeyWidth,
		normalizedSquaredMostCommonKeyHypotenuse: geometry.Square(
			float32(p.MostCommonKeyHeight) / float32(p.MostCommonKeyWidth)),
		keyboardWidth:                   p.KeyboardWidth,
		keyboardHeight:                  p.KeyboardHeight,
		keyboardHypotenuse:              hypot32(p.KeyboardWidth, p.KeyboardHeight),
		keyCount:                        keyCount,
		hasTouchPositionCorrectionData:  hasCorrection,
		proximityChars:                  p.ProximityChars,
		keyX:                            p.KeyX[:keyCount],
		keyY:                            p.KeyY[:keyCount],
		keyWidth:                        p.KeyWidth[:keyCount],
		keyHeight:                       p.KeyHeight[:keyCount],
		keyCharCodes:                    p.KeyCodes[:keyCount],
		sweetSpotCenterX:                p.SweetSpotX[:keyCount],
		sweetSpotCenterY:                p.SweetSpotY[:keyCount],
		sweetSpotRadius:                 p.SweetSpotRadius[:keyCount],
		sweetSpotCenterYg:               make([]float32, keyCount),
		lowerCodePointToKeyIndex:        make(map[rune]int, keyCount),
		keyIndexToOriginalCode:          make([]rune, keyCount),
		keyIndexToLowerCode:             make([]rune, keyCount),
		centerXg:                        make([]int32, keyCount),
		centerYg:                        make([]int32, keyCount),
		keyKeyDistancesG:                make([][]int32, keyCount),
	}
	for i := range l.keyKeyDistancesG {
		l.keyKeyDistancesG[i] = make([]int32, keyCount)
	}

	l.initializeGeometry()
	return l
}

func ceilDiv(a, b int32) int32 {
	return (a + b - 1) / b
}

func hypot32(w, h int32) float32 {
	return float32(math.Hypot(float64(w), float64(h)))
}

func (l *Layout) initializeGeometry() {
	for i := 0; i < l.keyCount; i++ {
		code := l.keyCharCodes[i]
		lower := lowerRune(code)
		l.centerXg[i] = l.keyX[i] + l.keyWidth[i]/2
		l.centerYg[i] = l.keyY[i] + l.keyHeight[i]/2
		if l.hasTouchPositionCorrectionData {
			gapY := l.sweetSpotCenterY[i] - float32(l.centerYg[i])
			l.sweetSpotCenterYg[i] = float32(l.centerYg[i]) + gapY*VerticalSweetSpotScaleG
		}
		l.lowerCodePointToKeyIndex[lower] = i
		l.keyIndexToOriginalCode[i] = code
		l.keyIndexToLowerCode[i] = lower
	}

	for i := 0; i < l.keyCount; i++ {
		l.keyKeyDistancesG[i][i] = 0
		for j := i + 1; j < l.keyCount; j++ {
			var d int32
			if l.hasTouchPositionCorrectionData {
				d = geometry.DistanceFloat(
					l.sweetSpotCenterX[i], l.sweetSpotCenterYg[i],
					l.sweetSpotCenterX[j], l.sweetSpotCenterYg[j])
			} else {
				d = geometry.DistanceInt(l.centerXg[i], l.centerYg[i], l.centerXg[j], l.centerYg[j])
			}
			l.keyKeyDistancesG[i][j] = d
			l.keyKeyDistancesG[j][i] = d
		}
	}
}

func lowerRune(r rune) rune {
	s := lowerCaser.String(string(r))
	for _, rr := range s {
		return rr
	}
	return r
}

// KeyCount returns the number of keys in the layout (after the MaxKeyCount cap).
func (l *Layout) KeyCount() int { return l.keyCount }

// MostCommonKeyWidth returns the configured most-common key width.
func (l *Layout) MostCommonKeyWidth() int32 { return l.mostCommonKeyWidth }

// MostCommonKeyHeight returns the configured most-common key height.
func (l *Layout) MostCommonKeyHeight() int32 { return l.mostCommonKeyHeight }

// MostCommonKeyWidthSquare returns MostCommonKeyWidth^2.
func (l *Layout) MostCommonKeyWidthSquare() int32 { return l.mostCommonKeyWidthSquare }

// NormalizedSquaredMostCommonKeyHypotenuse returns (height/width)^2 of the
// most common key, used to normalize point-to-key distances.
func (l *Layout) NormalizedSquaredMostCommonKeyHypotenuse() float32 {
	return l.normalizedSquaredMostCommonKeyHypotenuse
}

// CellWidth returns the grid cell width in device pixels.
func (l *Layout) CellWidth() int32 { return l.cellWidth }

// CellHeight returns the grid cell height in device pixels.
func (l *Layout) CellHeight() int32 { return l.cellHeight }

// GridWidth returns the number of grid columns.
func (l *Layout) GridWidth() int32 { return l.gridWidth }

// GridHeight returns the number of grid rows.
func (l *Layout) GridHeight() int32 { return l.gridHeight }

// KeyboardWidth returns the keyboard width in device pixels.
func (l *Layout) KeyboardWidth() int32 { return l.keyboardWidth }

// KeyboardHeight returns the keyboard height in device pixels.
func (l *Layout) KeyboardHeight() int32 { return l.keyboardHeight }

// KeyboardHypotenuse returns hypot(width, height).
func (l *Layout) KeyboardHypotenuse() float32 { return l.keyboardHypotenuse }

// HasTouchPositionCorrectionData reports whether any key carries calibrated
// sweet-spot data.
func (l *Layout) HasTouchPositionCorrectionData() bool { return l.hasTouchPositionCorrectionData }

// KeyKeyDistance returns the precomputed symmetric distance between two key indices.
func (l *Layout) KeyKeyDistance(i, j int) int32 { return l.keyKeyDistancesG[i][j] }

// CodePointOf returns the lowercased code point of a key index.
func (l *Layout) CodePointOf(keyIndex int) (rune, bool) {
	if keyIndex < 0 || keyIndex >= l.keyCount {
		return 0, false
	}
	return l.keyIndexToLowerCode[keyIndex], true
}

// OriginalCodePointOf returns the original (non-lowercased) code point of a key index.
func (l *Layout) OriginalCodePointOf(keyIndex int) (rune, bool) {
	if keyIndex < 0 || keyIndex >= l.keyCount {
		return 0, false
	}
	return l.keyIndexToOriginalCode[keyIndex], true
}

// HasSweetSpotData reports whether the given key has nonzero calibration radius.
func (l *Layout) HasSweetSpotData(keyIndex int) bool {
	return l.sweetSpotRadius[keyIndex] > 0
}

// SweetSpotRadiusAt returns the calibrated sweet-spot radius of a key.
func (l *Layout) SweetSpotRadiusAt(keyIndex int) float32 { return l.sweetSpotRadius[keyIndex] }

// SweetSpotCenterXAt returns the calibrated sweet-spot center X of a key.
func (l *Layout) SweetSpotCenterXAt(keyIndex int) float32 { return l.sweetSpotCenterX[keyIndex] }

// SweetSpotCenterYAt returns the calibrated sweet-spot center Y of a key.
func (l *Layout) SweetSpotCenterYAt(keyIndex int) float32 { return l.sweetSpotCenterY[keyIndex] }
