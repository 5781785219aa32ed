package boundary

import (
	"errors"
	"testing"

	"github.com/kittech/kbproximity/internal/keylayout"
)

func tinyLayout() *keylayout.Layout {
	prox := make([]rune, 1*1*keylayout.MaxProximityCharsSize)
	return keylayout.New(keylayout.LayoutParams{
		KeyboardWidth: 100, KeyboardHeight: 100,
		GridWidth: 1, GridHeight: 1,
		MostCommonKeyWidth: 100, MostCommonKeyHeight: 100,
		ProximityChars: prox,
		KeyCodes:       []rune{'q'},
		KeyX:           []int32{0}, KeyY: []int32{0},
		KeyWidth: []int32{100}, KeyHeight: []int32{100},
		SweetSpotX: []float32{50}, SweetSpotY: []float32{50}, SweetSpotRadius: []float32{0},
	})
}

func TestReleaseThenGetIsStale(t *testing.T) {
	var reg LayoutRegistry
	h := reg.Create(tinyLayout())

	if _, err := reg.Get(h); err != nil {
		t.Fatalf("Get() on a live handle returned error: %v", err)
	}
	if err := reg.Release(h); err != nil {
		t.Fatalf("Release() returned error: %v", err)
	}
	if _, err := reg.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get() after Release() = %v, want ErrStaleHandle", err)
	}
}

func TestDoubleReleaseErrors(t *testing.T) {
	var reg LayoutRegistry
	h := reg.Create(tinyLayout())

	if err := reg.Release(h); err != nil {
		t.Fatalf("first Release() returned error: %v", err)
	}
	if err := reg.Release(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Release() = %v, want ErrStaleHandle", err)
	}
}

func TestHandleSlotReuseBumpsGeneration(t *testing.T) {
	var reg LayoutRegistry
	h1 := reg.Create(tinyLayout())
	if err := reg.Release(h1); err != nil {
		t.Fatalf("Release() returned error: %v", err)
	}
	h2 := reg.Create(tinyLayout())

	if h2.generation == h1.generation {
		t.Errorf("reused slot kept the same generation: %d", h2.generation)
	}
	if _, err := reg.Get(h1); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get(h1) after slot reuse = %v, want ErrStaleHandle", err)
	}
	if _, err := reg.Get(h2); err != nil {
		t.Errorf("Get(h2) = %v, want no error", err)
	}
}
