package keylayout

import "testing"

// buildQwerty constructs a small 3-key QWERTY-ish layout used across tests:
// keys 'q','w','e' laid out left to right on a single row, each 100x160,
// on a 1080x400 keyboard with a 32x5 grid.
func buildQwerty(withSweetSpots bool) *Layout {
	const (
		kw, kh         = 1080, 400
		gw, gh         = 32, 5
		mostW, mostH   = 100, 160
	)
	codes := []rune{'q', 'w', 'e'}
	xs := []int32{0, 100, 200}
	ys := []int32{0, 0, 0}
	widths := []int32{100, 100, 100}
	heights := []int32{160, 160, 160}

	sweetX := make([]float32, len(codes))
	sweetY := make([]float32, len(codes))
	sweetR := make([]float32, len(codes))
	for i := range codes {
		sweetX[i] = float32(xs[i]) + float32(widths[i])/2
		sweetY[i] = float32(ys[i]) + float32(heights[i])/2
		if withSweetSpots {
			sweetR[i] = 10
		}
	}

	proxLen := gw * gh * MaxProximityCharsSize
	prox := make([]rune, proxLen)
	for i := range prox {
		prox[i] = 0
	}
	// Populate proximity list for the cell under each key's center with all
	// three keys, so adjacency queries have something to find.
	cellWidth := ceilDiv(kw, gw)
	cellHeight := ceilDiv(kh, gh)
	for _, cx := range xs {
		col := (cx + 50) / cellWidth
		row := int32(80) / cellHeight
		base := int((row*gw + col) * MaxProximityCharsSize)
		for i, c := range codes {
			prox[base+i] = c
		}
	}

	return New(LayoutParams{
		KeyboardWidth: kw, KeyboardHeight: kh,
		GridWidth: gw, GridHeight: gh,
		MostCommonKeyWidth: mostW, MostCommonKeyHeight: mostH,
		ProximityChars: prox,
		KeyCodes:       codes,
		KeyX:           xs, KeyY: ys,
		KeyWidth: widths, KeyHeight: heights,
		SweetSpotX: sweetX, SweetSpotY: sweetY, SweetSpotRadius: sweetR,
	})
}

func TestKeyKeyDistanceSymmetric(t *testing.T) {
	l := buildQwerty(true)
	for i := 0; i < l.KeyCount(); i++ {
		if d := l.KeyKeyDistance(i, i); d != 0 {
			t.Errorf("KeyKeyDistance(%d,%d) = %d, want 0", i, i, d)
		}
		for j := 0; j < l.KeyCount(); j++ {
			if l.KeyKeyDistance(i, j) != l.KeyKeyDistance(j, i) {
				t.Errorf("KeyKeyDistance(%d,%d)=%d != KeyKeyDistance(%d,%d)=%d",
					i, j, l.KeyKeyDistance(i, j), j, i, l.KeyKeyDistance(j, i))
			}
		}
	}
}

func TestQwertyBasics(t *testing.T) {
	l := buildQwerty(true)

	idx, ok := l.KeyIndexOf('Q')
	if !ok || idx != 0 {
		t.Fatalf("KeyIndexOf('Q') = (%d, %v), want (0, true)", idx, ok)
	}

	centerX := l.KeyCenterXOf(idx, nil)
	wantX := int32(l.sweetSpotCenterX[idx])
	if centerX != wantX {
		t.Errorf("KeyCenterXOf() = %d, want sweet spot X %d", centerX, wantX)
	}
}

func TestHasTouchPositionCorrectionDataRequiresPositiveRadius(t *testing.T) {
	withRadii := buildQwerty(true)
	if !withRadii.HasTouchPositionCorrectionData() {
		t.Error("expected correction data when sweet spot radii are positive")
	}

	noRadii := buildQwerty(false)
	if noRadii.HasTouchPositionCorrectionData() {
		t.Error("expected no correction data when all sweet spot radii are zero")
	}
}

func TestProximityGridAdjacency(t *testing.T) {
	l := buildQwerty(true)

	x, y := int32(150), int32(80) // center of 'w'
	if l.HasSpaceProximity(x, y) {
		t.Error("HasSpaceProximity() = true, want false (no space key in this layout)")
	}

	proximities := l.InitializeProximities([]rune{'w'}, []int32{x}, []int32{y}, "en-US")
	got := proximities[0]
	if len(got) == 0 || got[0] != 'w' {
		t.Fatalf("InitializeProximities()[0] = %q, want to start with 'w'", got)
	}
	found := map[rune]bool{}
	for _, c := range got {
		found[c] = true
	}
	if !found['q'] || !found['e'] {
		t.Errorf("InitializeProximities()[0] = %q, want to include adjacent 'q' and 'e'", got)
	}
}

func TestHasSpaceProximityNegativeCoordinateFallback(t *testing.T) {
	l := buildQwerty(true)
	if l.HasSpaceProximity(-1, 5) {
		t.Error("HasSpaceProximity() with negative x should return false")
	}
}
