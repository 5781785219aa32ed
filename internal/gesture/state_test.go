package gesture

import (
	"testing"

	"github.com/kittech/kbproximity/internal/keylayout"
)

// buildRowLayout builds a single-row layout with n keys, each 100x160, laid
// out left to right with no gaps, no calibration data.
func buildRowLayout(codes []rune) *keylayout.Layout {
	const (
		keyW, keyH = 100, 160
		gw, gh     = 32, 5
	)
	n := len(codes)
	kw := int32(n * keyW)
	kh := int32(400)

	xs := make([]int32, n)
	ys := make([]int32, n)
	widths := make([]int32, n)
	heights := make([]int32, n)
	sweetX := make([]float32, n)
	sweetY := make([]float32, n)
	sweetR := make([]float32, n)
	for i := range codes {
		xs[i] = int32(i * keyW)
		ys[i] = 0
		widths[i] = keyW
		heights[i] = keyH
	}

	proxLen := gw * gh * keylayout.MaxProximityCharsSize
	prox := make([]rune, proxLen)
	cellWidth := (kw + gw - 1) / gw
	cellHeight := (kh + gh - 1) / gh
	for _, x := range xs {
		col := (x + keyW/2) / cellWidth
		row := int32(80) / cellHeight
		base := int((row*gw + col) * keylayout.MaxProximityCharsSize)
		for i, c := range codes {
			prox[base+i] = c
		}
	}

	return keylayout.New(keylayout.LayoutParams{
		KeyboardWidth: kw, KeyboardHeight: kh,
		GridWidth: gw, GridHeight: gh,
		MostCommonKeyWidth: keyW, MostCommonKeyHeight: keyH,
		ProximityChars: prox,
		KeyCodes:       codes,
		KeyX:           xs, KeyY: ys,
		KeyWidth: widths, KeyHeight: heights,
		SweetSpotX: sweetX, SweetSpotY: sweetY, SweetSpotRadius: sweetR,
	})
}

func TestSampledArrayLengths(t *testing.T) {
	layout := buildRowLayout([]rune{'q', 'w', 'e', 'r'})
	var s State
	xs := []int32{0, 50, 100, 150, 200, 250, 300, 350}
	ys := make([]int32, len(xs))
	for i := range ys {
		ys[i] = 80
	}
	times := make([]int32, len(xs))
	for i := range times {
		times[i] = int32(i * 20)
	}
	pointerIDs := make([]int, len(xs))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs, Ys: ys, Times: times, PointerIDs: pointerIDs,
	})

	n := s.Size()
	if n == 0 {
		t.Fatal("Size() = 0, want at least one sampled point")
	}
	if len(s.sampledY) != n || len(s.sampledT) != n || len(s.sampledInputIndex) != n || len(s.sampledLengthCache) != n {
		t.Fatalf("sampled array lengths diverge: x=%d y=%d t=%d idx=%d len=%d",
			n, len(s.sampledY), len(s.sampledT), len(s.sampledInputIndex), len(s.sampledLengthCache))
	}
	if len(s.directions) != n-1 {
		t.Errorf("len(directions) = %d, want %d", len(s.directions), n-1)
	}
}

func TestContinuousSuggestionPrefixStable(t *testing.T) {
	layout := buildRowLayout([]rune{'q', 'w', 'e', 'r'})
	var s State
	xs := []int32{0, 50, 100, 150, 200}
	ys := []int32{80, 80, 80, 80, 80}
	times := []int32{0, 20, 40, 60, 80}
	pointerIDs := make([]int, len(xs))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs, Ys: ys, Times: times, PointerIDs: pointerIDs,
	})
	firstPass := append([]int32(nil), s.sampledX...)

	xs2 := append(append([]int32(nil), xs...), 250, 300)
	ys2 := append(append([]int32(nil), ys...), 80, 80)
	times2 := append(append([]int32(nil), times...), 100, 120)
	pointerIDs2 := make([]int, len(xs2))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs2, Ys: ys2, Times: times2, PointerIDs: pointerIDs2,
	})

	if !s.isContinuousSuggestionPossible {
		t.Fatal("expected continuous suggestion to be possible on an unchanged-prefix extension")
	}
	if len(firstPass) > len(s.sampledX) {
		t.Fatalf("sampled points shrank from %d to %d across a continuation", len(firstPass), len(s.sampledX))
	}
	shared := min(len(firstPass), len(s.sampledX)-2)
	for i := 0; i < shared; i++ {
		if s.sampledX[i] != firstPass[i] {
			t.Errorf("sampledX[%d] = %d, want %d (prefix changed across continuation)", i, s.sampledX[i], firstPass[i])
		}
	}
}

func TestAverageSpeedWeightedMean(t *testing.T) {
	layout := buildRowLayout([]rune{'q', 'w', 'e', 'r'})
	var s State
	xs := []int32{0, 100, 200, 300}
	ys := []int32{80, 80, 80, 80}
	times := []int32{0, 100, 200, 300}
	pointerIDs := make([]int, len(xs))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs, Ys: ys, Times: times, PointerIDs: pointerIDs,
	})

	if s.averageSpeed <= 0 {
		t.Fatalf("averageSpeed = %v, want > 0 for constant-speed travel", s.averageSpeed)
	}
	for i := 0; i < s.Size(); i++ {
		if s.speedRates[i] <= 0 {
			t.Errorf("speedRates[%d] = %v, want > 0", i, s.speedRates[i])
		}
	}
	if s.averageSpeed != 1.0 {
		t.Errorf("averageSpeed = %v, want 1.0 (300px over 300ms)", s.averageSpeed)
	}
	var weighted, total float32
	for i := 0; i+1 < s.Size(); i++ {
		dt := float32(s.sampledT[i+1] - s.sampledT[i])
		weighted += s.speedRates[i] * dt
		total += dt
	}
	if total <= 0 {
		t.Fatal("no elapsed time between sampled points")
	}
	if mean := weighted / total; mean < 0.95 || mean > 1.05 {
		t.Errorf("duration-weighted mean speed rate = %v, want about 1.0", mean)
	}
}

func TestCornerSampling(t *testing.T) {
	layout := buildRowLayout([]rune{'q', 'w', 'e', 'r'})
	var s State

	// Straight run along y=80 then a sharp turn downward: a decoder should
	// retain a sample at (or near) the corner rather than smoothing through it.
	xs := []int32{0, 50, 100, 150, 200, 200, 200, 200}
	ys := []int32{80, 80, 80, 80, 80, 150, 220, 290}
	times := make([]int32, len(xs))
	for i := range times {
		times[i] = int32(i * 20)
	}
	pointerIDs := make([]int, len(xs))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs, Ys: ys, Times: times, PointerIDs: pointerIDs,
	})

	foundCorner := false
	for i := 0; i < s.Size(); i++ {
		if s.sampledX[i] == 200 && s.sampledY[i] > 80 {
			foundCorner = true
		}
	}
	if !foundCorner {
		t.Error("expected at least one sampled point past the corner at x=200")
	}
}

func TestStrongDoubleLetter(t *testing.T) {
	layout := buildRowLayout([]rune{'q', 'w', 'e', 'r'})
	var s State

	// Two touches at the same key far apart in time: elapsed time exceeds
	// StrongDoubleLetterTimeMillis, so the repeat reads as a strong double
	// letter.
	xs := []int32{50, 50}
	ys := []int32{80, 80}
	times := []int32{0, StrongDoubleLetterTimeMillis + 50}
	pointerIDs := make([]int, len(xs))

	s.InitInputParams(InputParams{
		Layout: layout, IsGeometric: true, MaxPointToKeyLength: 10,
		Xs: xs, Ys: ys, Times: times, PointerIDs: pointerIDs,
	})

	if s.Size() == 0 {
		t.Fatal("expected at least one sampled point")
	}
	last := s.Size() - 1
	if got := s.DoubleLetterLevel(last); got != DoubleLetterStrong {
		t.Errorf("DoubleLetterLevel(%d) = %v, want DoubleLetterStrong", last, got)
	}
}
