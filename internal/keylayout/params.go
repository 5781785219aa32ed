package keylayout

// Tunable geometry constants. The retrieved original source only imports
// these names from a sibling `proximity_info_params` module that was not
// itself part of the retrieval pack; concrete values are chosen here to
// preserve the qualitative relationships the specification describes. See
// DESIGN.md for the reasoning behind each value.
const (
	// MaxProximityCharsSize is the number of code points considered "near"
	// any single touch cell.
	MaxProximityCharsSize = 16

	// MaxKeyCount is the hard cap on keys in a single keyboard layout.
	MaxKeyCount = 64

	// KeycodeSpace is the code point used for the space bar.
	KeycodeSpace rune = ' '

	// VerticalSweetSpotScaleG scales the gap between a key's geometric
	// center and its calibrated sweet spot, producing the "geometric sweet
	// spot" Y used for gesture (as opposed to tap) input.
	VerticalSweetSpotScaleG float32 = 0.5
)
