package keylayout

import "github.com/kittech/kbproximity/internal/geometry"

// HasSpaceProximity reports whether the space code point appears among the
// 16 proximity-char slots of the grid cell containing (x,y). Negative
// coordinates are an InvalidCoordinate and fall back to false.
func (l *Layout) HasSpaceProximity(x, y int32) bool {
	if x < 0 || y < 0 {
		return false
	}
	start := l.cellStartIndex(x, y)
	for i := 0; i < MaxProximityCharsSize; i++ {
		if l.proximityChars[start+i] == KeycodeSpace {
			return true
		}
	}
	return false
}

func (l *Layout) cellStartIndex(x, y int32) int {
	row := y / l.cellHeight
	col := x / l.cellWidth
	return int((row*l.gridWidth + col) * MaxProximityCharsSize)
}

// KeyIndexOf returns the key index whose lowercased code point matches c, or
// (0, false) if the layout has no coordinate data or no such key.
func (l *Layout) KeyIndexOf(c rune) (int, bool) {
	if l.keyCount == 0 {
		return 0, false
	}
	idx, ok := l.lowerCodePointToKeyIndex[lowerRune(c)]
	return idx, ok
}

// IsCodePointOnKeyboard reports whether c resolves to a key on this layout.
func (l *Layout) IsCodePointOnKeyboard(c rune) bool {
	_, ok := l.KeyIndexOf(c)
	return ok
}

// NormalizedSquaredDistanceFromCenter returns the squared distance from
// (x,y) to key keyID's center, normalized by the squared most-common key
// width, with the y-axis term scaled by NormalizedSquaredMostCommonKeyHypotenuse
// ((height/width)^2 of the most common key).
func (l *Layout) NormalizedSquaredDistanceFromCenter(keyID int, x, y int32, isGeometric bool) float32 {
	centerX := float32(l.KeyCenterXOf(keyID, &x))
	centerY := float32(l.KeyCenterYOf(keyID, &y, isGeometric))
	return (geometry.Square(float32(x)-centerX) +
		geometry.Square(float32(y)-centerY)*l.normalizedSquaredMostCommonKeyHypotenuse) /
		float32(l.mostCommonKeyWidthSquare)
}

// KeyCenterXOf returns the X center to use for keyID. refX, when non-nil, is
// used only for keys wider than the most common key width: the center is
// clamped to a line segment around the key's true center and the clamp picks
// the side nearer to refX (ties return refX itself).
func (l *Layout) KeyCenterXOf(keyID int, refX *int32) int32 {
	var centerX int32
	if l.hasTouchPositionCorrectionData {
		centerX = int32(l.sweetSpotCenterX[keyID])
	} else {
		centerX = l.centerXg[keyID]
	}
	keyWidth := l.keyWidth[keyID]
	if refX != nil && keyWidth > l.mostCommonKeyWidth {
		halfDiff := (keyWidth - l.mostCommonKeyWidth) / 2
		switch {
		case *refX > centerX+halfDiff:
			centerX += halfDiff
		case *refX < centerX-halfDiff:
			centerX -= halfDiff
		default:
			centerX = *refX
		}
	}
	return centerX
}

// KeyCenterYOf returns the Y center to use for keyID. The base value is
// chosen by correction-data/geometric-input precedence (no correction data
// -> geometric center; correction + geometric -> geometric sweet-spot Y;
// correction + non-geometric -> sweet-spot Y). When refY is supplied and the
// key sits in the bottom row, the hit region is extended to the screen edge.
func (l *Layout) KeyCenterYOf(keyID int, refY *int32, isGeometric bool) int32 {
	var centerY int32
	switch {
	case !l.hasTouchPositionCorrectionData:
		centerY = l.centerYg[keyID]
	case isGeometric:
		centerY = int32(l.sweetSpotCenterYg[keyID])
	default:
		centerY = int32(l.sweetSpotCenterY[keyID])
	}
	if refY != nil {
		if centerY+l.keyHeight[keyID] > l.keyboardHeight && centerY < *refY {
			return *refY
		}
	}
	return centerY
}

// InitializeProximities produces, for each input index, an ordered list of
// candidate code points: the primary code first, followed by any distinct
// nearby code point whose key rectangle is touched or nearly touched by
// (x,y). locale is accepted for forward compatibility with locale-aware
// candidate filtering; the current scoring is locale-independent.
func (l *Layout) InitializeProximities(codes []rune, xs, ys []int32, locale string) [][]rune {
	result := make([][]rune, len(codes))
	for i := range codes {
		result[i] = l.calculateProximities(xs[i], ys[i], codes[i])
	}
	return result
}

func (l *Layout) calculateProximities(x, y int32, primary rune) []rune {
	proximities := []rune{primary}
	if x < 0 || y < 0 {
		return proximities
	}

	start := l.cellStartIndex(x, y)
	for i := 0; i < MaxProximityCharsSize; i++ {
		c := l.proximityChars[start+i]
		if c < KeycodeSpace || c == primary {
			continue
		}
		keyID, ok := l.KeyIndexOf(c)
		if !ok {
			continue
		}
		onKey := l.isOnKey(keyID, x, y)
		dist := l.squaredLengthToEdge(keyID, x, y)
		if onKey || dist < l.mostCommonKeyWidthSquare {
			proximities = append(proximities, c)
			if len(proximities) >= MaxProximityCharsSize {
				return proximities
			}
		}
	}
	return proximities
}

func (l *Layout) squaredLengthToEdge(keyID int, x, y int32) int32 {
	left := l.keyX[keyID]
	top := l.keyY[keyID]
	right := left + l.keyWidth[keyID]
	bottom := top + l.keyHeight[keyID]
	return geometry.ClampToRect(x, y, left, top, right, bottom)
}

func (l *Layout) isOnKey(keyID int, x, y int32) bool {
	left := l.keyX[keyID]
	top := l.keyY[keyID]
	right := left + l.keyWidth[keyID] + 1
	bottom := top + l.keyHeight[keyID]
	return left < right && top < bottom && x >= left && x < right && y >= top && y < bottom
}
