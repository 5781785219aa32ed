// Package gesture implements the gesture-input sampling engine
// (ProximityInfoState in the specification): it sub-samples a raw touch
// trace against a keylayout.Layout into the smaller point set a word
// decoder consumes, carrying state across incremental updates so a
// continuing gesture does not need to be resampled from scratch.
package gesture

import (
	"github.com/kittech/kbproximity/internal/geometry"
	"github.com/kittech/kbproximity/internal/keylayout"
)

// DoubleLetterLevel classifies how quickly a repeated letter was traced.
type DoubleLetterLevel int

const (
	DoubleLetterNone DoubleLetterLevel = iota
	DoubleLetterWeak
	DoubleLetterStrong
)

// InputParams describes one call to InitInputParams: the full raw touch
// trace seen so far for a single pointer, plus the primary code points the
// host has already resolved for each raw sample (used for non-geometric,
// i.e. tap, input).
type InputParams struct {
	PointerID           int
	Layout              *keylayout.Layout
	Locale              string
	IsGeometric         bool
	MaxPointToKeyLength float32

	InputCodes []rune  // primary code point per raw sample, for tap input
	Xs, Ys     []int32 // raw coordinates per raw sample; negative = unknown
	Times      []int32 // raw elapsed-time per sample, or nil if unavailable
	PointerIDs []int   // pointer id per raw sample
}

// State is the gesture sampling engine. A zero-value State is ready to use.
type State struct {
	layout                         *keylayout.Layout
	maxPointToKeyLength             float32
	touchPositionCorrectionEnabled  bool
	hasBeenUpdatedByGeometricInput  bool
	isContinuousSuggestionPossible  bool

	inputProximities [][]rune

	sampledX, sampledY        []int32
	sampledT                  []int32
	sampledInputIndex         []int
	sampledLengthCache        []int32
	speedRates                []float32
	directions                []float32
	beelineSpeedPercentiles   []float32
	normalizedSquaredLenCache []float32 // flattened [sampleIdx*keyCount + keyIdx]

	averageSpeed float32
}

// Size returns the number of sub-sampled points currently held.
func (s *State) Size() int { return len(s.sampledX) }

// InputX returns the sampled X coordinate at i.
func (s *State) InputX(i int) int32 { return s.sampledX[i] }

// InputY returns the sampled Y coordinate at i.
func (s *State) InputY(i int) int32 { return s.sampledY[i] }

// LengthCache returns the cumulative path length up to and including sample i.
func (s *State) LengthCache(i int) int32 { return s.sampledLengthCache[i] }

// SpeedRate returns the local speed at sample i, normalized by the average
// speed of the whole gesture (1.0 = average).
func (s *State) SpeedRate(i int) float32 { return s.speedRates[i] }

// Direction returns the travel angle from sample i to sample i+1.
func (s *State) Direction(i int) float32 { return s.directions[i] }

// BeelineSpeedPercentile returns the beeline-speed ratio computed around
// sample i; see DoubleLetterLevel for how it classifies double letters.
func (s *State) BeelineSpeedPercentile(i int) float32 { return s.beelineSpeedPercentiles[i] }

// DoubleLetterLevel classifies the repeated-letter speed at sample i.
func (s *State) DoubleLetterLevel(i int) DoubleLetterLevel {
	p := s.beelineSpeedPercentiles[i]
	switch {
	case p == 0:
		return DoubleLetterStrong
	case p < MinDoubleLetterBeelineSpeedPercentile:
		return DoubleLetterWeak
	default:
		return DoubleLetterNone
	}
}

// PrimaryCodePointAt returns the first (primary) proximity candidate at raw
// input index i.
func (s *State) PrimaryCodePointAt(i int) rune {
	if i < 0 || i >= len(s.inputProximities) || len(s.inputProximities[i]) == 0 {
		return 0
	}
	return s.inputProximities[i][0]
}

// SameAsTyped reports whether word (already lowercased by the caller if
// desired) equals the sequence of primary code points at raw indices
// [0, len(word)).
func (s *State) SameAsTyped(word []rune) bool {
	if len(word) != len(s.inputProximities) {
		return false
	}
	for i, c := range word {
		if s.PrimaryCodePointAt(i) != c {
			return false
		}
	}
	return true
}

// ExistsCodePointInProximityAt reports whether c is among the proximity
// candidates recorded at raw input index i.
func (s *State) ExistsCodePointInProximityAt(i int, c rune) bool {
	if i < 0 || i >= len(s.inputProximities) {
		return false
	}
	for _, p := range s.inputProximities[i] {
		if p == c {
			return true
		}
	}
	return false
}

// ExistsAdjacentProximityChars reports whether raw index i has more than one
// proximity candidate, i.e. the touch was ambiguous between multiple keys.
func (s *State) ExistsAdjacentProximityChars(i int) bool {
	return i >= 0 && i < len(s.inputProximities) && len(s.inputProximities[i]) > 1
}

// HasSpaceProximity reports whether the raw touch at (x,y) has the space
// key among its proximity candidates, using the currently bound layout.
func (s *State) HasSpaceProximity(x, y int32) bool {
	if s.layout == nil {
		return false
	}
	return s.layout.HasSpaceProximity(x, y)
}

// GetXYDirection returns the travel angle between two sampled points
// identified by their index into the sampled arrays.
func (s *State) GetXYDirection(from, to int) float32 {
	return geometry.Angle(s.sampledX[from], s.sampledY[from], s.sampledX[to], s.sampledY[to])
}

// InitInputParams (re)initializes the sampler for the given raw trace.
// When the trace is a strict, unchanged-prefix continuation of the
// previously seen trace for the same input mode, the engine trims its last
// two sampled points and resumes sub-sampling from there instead of
// starting over.
func (s *State) InitInputParams(p InputParams) {
	inputSize := len(p.Xs)
	s.isContinuousSuggestionPossible = s.hasBeenUpdatedByGeometricInput == p.IsGeometric &&
		s.checkContinuity(p)

	s.layout = p.Layout
	s.maxPointToKeyLength = p.MaxPointToKeyLength
	s.touchPositionCorrectionEnabled = p.Layout != nil && p.Layout.HasTouchPositionCorrectionData()

	if !p.IsGeometric && p.PointerID == 0 {
		s.inputProximities = p.Layout.InitializeProximities(p.InputCodes, p.Xs, p.Ys, p.Locale)
	} else {
		s.inputProximities = nil
	}

	var pushStart, lastSavedInputSize int
	if s.isContinuousSuggestionPossible && len(s.sampledInputIndex) >= 2 {
		pushStart = s.trimLastTwoTouchPoints()
		lastSavedInputSize = len(s.sampledX)
	} else {
		s.sampledX = s.sampledX[:0]
		s.sampledY = s.sampledY[:0]
		s.sampledT = s.sampledT[:0]
		s.sampledInputIndex = s.sampledInputIndex[:0]
		s.sampledLengthCache = s.sampledLengthCache[:0]
		s.normalizedSquaredLenCache = s.normalizedSquaredLenCache[:0]
		s.speedRates = s.speedRates[:0]
		s.directions = s.directions[:0]
		s.beelineSpeedPercentiles = s.beelineSpeedPercentiles[:0]
		pushStart = 0
		lastSavedInputSize = 0
	}

	lastInputIndex := pushStart
	for i := pushStart; i < inputSize; i++ {
		if p.PointerIDs == nil || p.PointerIDs[i] == p.PointerID {
			lastInputIndex = i
		}
	}

	proximityOnly := !p.IsGeometric && len(p.Xs) > 0 && (p.Xs[0] < 0 || p.Ys[0] < 0)

	cur := newNearKeyDistances(p.Layout.KeyCount())
	prev := newNearKeyDistances(p.Layout.KeyCount())
	prevprev := newNearKeyDistances(p.Layout.KeyCount())
	sumAngle := float32(0)

	for i := pushStart; i <= lastInputIndex && i < inputSize; i++ {
		if p.PointerIDs != nil && p.PointerIDs[i] != p.PointerID {
			continue
		}
		x, y := p.Xs[i], p.Ys[i]
		if proximityOnly {
			x, y = -1, -1
		}
		if i > 1 {
			a1 := geometry.Angle(p.Xs[i-2], p.Ys[i-2], p.Xs[i-1], p.Ys[i-1])
			a2 := geometry.Angle(p.Xs[i-1], p.Ys[i-1], x, y)
			sumAngle += geometry.AngleDiff(a1, a2)
		}

		var nodeCode *rune
		if !p.IsGeometric {
			c := s.PrimaryCodePointAt(i)
			nodeCode = &c
		}

		var t int32
		if p.Times != nil {
			t = p.Times[i]
		}

		popped := s.pushTouchPoint(i, nodeCode, x, y, t, p.IsGeometric, i == lastInputIndex, sumAngle, cur, prev, prevprev)
		if popped {
			prev, cur = cur, prev
		} else {
			prevprev, prev, cur = prev, cur, prevprev
			cur.Reset()
			sumAngle = 0
		}
	}

	s.hasBeenUpdatedByGeometricInput = p.IsGeometric

	if s.Size() > 0 && p.IsGeometric {
		s.refreshSpeedRates(lastSavedInputSize, p)
		s.refreshBeelineSpeedRates(p)
		s.refreshNormalizedSquaredLengthCache(lastSavedInputSize, p.IsGeometric)
	}
}

func (s *State) checkContinuity(p InputParams) bool {
	size := len(s.sampledInputIndex)
	if size == 0 {
		return false
	}
	if len(p.Xs) < size {
		return false
	}
	for i := 0; i < size; i++ {
		idx := s.sampledInputIndex[i]
		if idx >= len(p.Xs) {
			return false
		}
		if p.Xs[idx] != s.sampledX[i] || p.Ys[idx] != s.sampledY[i] {
			return false
		}
		if p.Times != nil && idx < len(p.Times) && p.Times[idx] != s.sampledT[i] {
			return false
		}
	}
	return true
}

// trimLastTwoTouchPoints pops the two most recently sampled points (which
// may need re-scoring against newly arrived raw samples) and returns the
// raw input index sub-sampling should resume from.
func (s *State) trimLastTwoTouchPoints() int {
	size := len(s.sampledInputIndex)
	nextStart := s.sampledInputIndex[size-2]
	s.popInputData()
	s.popInputData()
	return nextStart
}

func (s *State) popInputData() {
	n := len(s.sampledX)
	if n == 0 {
		return
	}
	s.sampledX = s.sampledX[:n-1]
	s.sampledY = s.sampledY[:n-1]
	s.sampledT = s.sampledT[:n-1]
	s.sampledInputIndex = s.sampledInputIndex[:n-1]
	s.sampledLengthCache = s.sampledLengthCache[:n-1]

	// speedRates/directions/beelineSpeedPercentiles are derived caches keyed
	// by sample index, same as sampledLengthCache above; refreshSpeedRates
	// and refreshBeelineSpeedRates only grow them, so they must be trimmed
	// here or a later incremental update that resamples to fewer points
	// leaves stale trailing values behind.
	if len(s.speedRates) > n-1 {
		s.speedRates = s.speedRates[:n-1]
	}
	if len(s.directions) > max(n-2, 0) {
		s.directions = s.directions[:max(n-2, 0)]
	}
	if len(s.beelineSpeedPercentiles) > n-1 {
		s.beelineSpeedPercentiles = s.beelineSpeedPercentiles[:n-1]
	}
}

func (s *State) pushTouchPoint(
	inputIndex int, nodeCode *rune, x, y, t int32, isGeometric, isLastPoint bool,
	sumAngle float32, cur, prev, prevprev *nearKeyDistances,
) bool {
	popped := false
	if nodeCode == nil {
		nearest := s.updateNearKeysDistances(x, y, isGeometric, cur)
		score := s.getPointScore(x, y, nearest, sumAngle, cur, prev, prevprev)
		if score < 0 {
			s.popInputData()
			popped = true
		}
		if isLastPoint {
			if size := len(s.sampledX); size > 0 {
				d := geometry.DistanceInt(x, y, s.sampledX[size-1], s.sampledY[size-1])
				if float32(d)*LastPointSkipDistanceScale < float32(s.layout.MostCommonKeyWidth()) {
					return popped
				}
			}
		}
	}

	if nodeCode != nil && (x < 0 || y < 0) {
		if keyID, ok := s.layout.KeyIndexOf(*nodeCode); ok {
			x = s.layout.KeyCenterXOf(keyID, nil)
			y = s.layout.KeyCenterYOf(keyID, nil, isGeometric)
		}
	}

	if size := len(s.sampledX); size > 0 {
		d := geometry.DistanceInt(x, y, s.sampledX[size-1], s.sampledY[size-1])
		s.sampledLengthCache = append(s.sampledLengthCache, s.sampledLengthCache[size-1]+d)
	} else {
		s.sampledLengthCache = append(s.sampledLengthCache, 0)
	}
	s.sampledX = append(s.sampledX, x)
	s.sampledY = append(s.sampledY, y)
	s.sampledT = append(s.sampledT, t)
	s.sampledInputIndex = append(s.sampledInputIndex, inputIndex)
	return popped
}

func (s *State) updateNearKeysDistances(x, y int32, isGeometric bool, cur *nearKeyDistances) float32 {
	cur.Reset()
	nearest := s.maxPointToKeyLength
	for k := 0; k < s.layout.KeyCount(); k++ {
		d := s.layout.NormalizedSquaredDistanceFromCenter(k, x, y, isGeometric)
		if d < NearKeyThresholdForDistance {
			cur.Set(k, d)
		}
		if d < nearest {
			nearest = d
		}
	}
	return nearest
}

func (s *State) getPointScore(x, y int32, nearest, sumAngle float32, cur, prev, prevprev *nearKeyDistances) float32 {
	size := len(s.sampledX)
	if size <= 1 || prev.Len() == 0 {
		return 0
	}

	baseSampleRate := float32(s.layout.MostCommonKeyWidth())
	distPrev := float32(geometry.DistanceInt(s.sampledX[size-1], s.sampledY[size-1], s.sampledX[size-2], s.sampledY[size-2])) * DistanceBaseScale

	score := float32(0)
	if !isPrevLocalMin(prev, prevprev, cur) {
		score += NotLocalMinDistanceScore
	} else if nearest < NearKeyThresholdForPointScore {
		score += LocalMinDistanceAndNearToKeyScore
	}

	angle1 := geometry.Angle(x, y, s.sampledX[size-1], s.sampledY[size-1])
	angle2 := geometry.Angle(s.sampledX[size-1], s.sampledY[size-1], s.sampledX[size-2], s.sampledY[size-2])
	diff := geometry.AngleDiff(angle1, angle2)
	if distPrev > baseSampleRate*CornerCheckDistanceThresholdScale &&
		(sumAngle > CornerSumAngleThreshold || diff > CornerAngleThresholdForPointScore) {
		score += CornerScore
	}
	return score
}

// isPrevLocalMin reports whether some near key recorded in prev has a
// distance that is exceeded by more than MarginForPrevLocalMin (or is absent)
// in both prevprev and cur: if so, prev sits at a local minimum of
// distance-to-key and is worth keeping.
func isPrevLocalMin(prev, prevprev, cur *nearKeyDistances) bool {
	for _, k := range prev.Keys() {
		d, _ := prev.Get(k)

		prevPrevD, prevPrevOK := prevprev.Get(k)
		isPrevPrevNear := !prevPrevOK || prevPrevD > d+MarginForPrevLocalMin

		curD, curOK := cur.Get(k)
		isCurNear := !curOK || curD > d+MarginForPrevLocalMin

		if isPrevPrevNear && isCurNear {
			return true
		}
	}
	return false
}

func (s *State) refreshSpeedRates(lastSavedInputSize int, p InputParams) {
	size := len(s.sampledX)
	for len(s.speedRates) < size {
		s.speedRates = append(s.speedRates, 0)
	}
	for len(s.directions) < size-1 {
		s.directions = append(s.directions, 0)
	}

	if p.Times == nil {
		s.averageSpeed = 1.0
		for i := lastSavedInputSize; i < size; i++ {
			s.speedRates[i] = 1.0
		}
	} else {
		firstT, lastT := s.sampledT[0], s.sampledT[size-1]
		firstLen, lastLen := s.sampledLengthCache[0], s.sampledLengthCache[size-1]
		sumDuration := lastT - firstT
		sumLength := lastLen - firstLen
		if sumDuration <= 0 {
			s.averageSpeed = 1.0
		} else {
			s.averageSpeed = float32(sumLength) / float32(sumDuration)
		}

		for i := lastSavedInputSize; i < size; i++ {
			idx := s.sampledInputIndex[i]
			lowerBound := 0
			if i > 0 {
				lowerBound = s.sampledInputIndex[i-1]
			}
			upperBound := len(p.Xs) - 1
			if i < size-1 {
				upperBound = s.sampledInputIndex[i+1]
			}
			start := idx - NumPointsForSpeedCalculation
			if start < lowerBound {
				start = lowerBound
			}
			end := idx + NumPointsForSpeedCalculation
			if end > upperBound {
				end = upperBound
			}
			if end <= start {
				s.speedRates[i] = 1.0
				continue
			}
			duration := p.Times[end] - p.Times[start]
			var length int32
			for k := start; k < end; k++ {
				length += geometry.DistanceInt(p.Xs[k], p.Ys[k], p.Xs[k+1], p.Ys[k+1])
			}
			if duration <= 0 || s.averageSpeed == 0 {
				s.speedRates[i] = 1.0
			} else {
				s.speedRates[i] = (float32(length) / float32(duration)) / s.averageSpeed
			}
		}
	}

	for i := lastSavedInputSize; i < size-1; i++ {
		s.directions[i] = s.GetXYDirection(i, i+1)
	}
	if from := lastSavedInputSize - 1; from >= 0 && from < size-1 {
		s.directions[from] = s.GetXYDirection(from, from+1)
	}
}

func (s *State) refreshBeelineSpeedRates(p InputParams) {
	size := len(s.sampledX)
	for len(s.beelineSpeedPercentiles) < size {
		s.beelineSpeedPercentiles = append(s.beelineSpeedPercentiles, 1.0)
	}
	if p.Times == nil {
		for i := range s.beelineSpeedPercentiles {
			s.beelineSpeedPercentiles[i] = 1.0
		}
		return
	}

	lookupRadius := float32(s.layout.MostCommonKeyWidth()) * float32(LookupRadiusPercentile) / float32(MaxPercentile)
	inputSize := len(p.Xs)

	for id := 0; id < size; id++ {
		actual := s.sampledInputIndex[id]
		px, py := s.sampledX[id], s.sampledY[id]

		start := actual
		for start > 0 {
			d := float32(geometry.DistanceInt(px, py, p.Xs[start-1], p.Ys[start-1]))
			if d > lookupRadius {
				start--
				break
			}
			start--
		}
		end := actual
		for end < inputSize-1 {
			d := float32(geometry.DistanceInt(px, py, p.Xs[end+1], p.Ys[end+1]))
			if d > lookupRadius {
				end++
				break
			}
			end++
		}

		if start > 0 && start < actual {
			start++
		}
		if end > actual && end < inputSize-1 {
			end--
		}

		if start >= end {
			s.beelineSpeedPercentiles[id] = 1.0
			continue
		}

		beeline := float32(geometry.DistanceInt(p.Xs[start], p.Ys[start], p.Xs[end], p.Ys[end]))
		elapsed := p.Times[end] - p.Times[start]
		if start == 0 {
			elapsed += FirstPointTimeOffsetMillis
		}
		if end == inputSize-1 {
			elapsed += FirstPointTimeOffsetMillis
		}

		if elapsed >= StrongDoubleLetterTimeMillis {
			s.beelineSpeedPercentiles[id] = 0
			continue
		}
		if elapsed <= 0 || s.averageSpeed == 0 {
			s.beelineSpeedPercentiles[id] = 1.0
			continue
		}
		s.beelineSpeedPercentiles[id] = beeline / float32(elapsed) / s.averageSpeed
	}
}

func (s *State) refreshNormalizedSquaredLengthCache(lastSavedInputSize int, isGeometric bool) {
	keyCount := s.layout.KeyCount()
	s.normalizedSquaredLenCache = s.normalizedSquaredLenCache[:min(len(s.normalizedSquaredLenCache), lastSavedInputSize*keyCount)]
	for i := lastSavedInputSize; i < len(s.sampledX); i++ {
		for k := 0; k < keyCount; k++ {
			s.normalizedSquaredLenCache = append(s.normalizedSquaredLenCache,
				s.layout.NormalizedSquaredDistanceFromCenter(k, s.sampledX[i], s.sampledY[i], isGeometric))
		}
	}
}

// NormalizedSquaredLength returns the cached normalized squared distance
// from sampled point i to key k's center.
func (s *State) NormalizedSquaredLength(i, k int) float32 {
	return s.normalizedSquaredLenCache[i*s.layout.KeyCount()+k]
}
