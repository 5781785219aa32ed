package gesture

// Tunable scoring constants for the sub-sampling and speed-rate pipeline.
// Like internal/keylayout's params.go, these names are referenced
// symbolically by the specification but their concrete values live in a
// sibling module that was not part of the retrieval pack. The values below
// are chosen to satisfy the qualitative relationships the specification
// describes (rarely-popped near a key, reliably-popped far from every key,
// corners flagged on a large direction change after real travel); see
// DESIGN.md for the reasoning behind each one.
const (
	// NearKeyThresholdForDistance is the normalized squared distance below
	// which a key counts as "near" a touch point and is tracked in the
	// rotating near-keys maps.
	NearKeyThresholdForDistance float32 = 2.0

	// NearKeyThresholdForPointScore is the (tighter) normalized squared
	// distance below which a local-minimum point scores a bonus for sitting
	// right on top of a key.
	NearKeyThresholdForPointScore float32 = 0.2

	// NotLocalMinDistanceScore is added when the previous point is not a
	// local minimum of any near key's distance -- it is likely mid-stroke
	// and safe to drop.
	NotLocalMinDistanceScore float32 = -1.0

	// LocalMinDistanceAndNearToKeyScore is added when the previous point is
	// both a local minimum and close enough to a key to be meaningful.
	LocalMinDistanceAndNearToKeyScore float32 = 1.0

	// DistanceBaseScale scales the raw pixel distance between consecutive
	// sampled points before it is compared against corner thresholds.
	DistanceBaseScale float32 = 1.0

	// CornerCheckDistanceThresholdScale, multiplied by the most-common key
	// width, is the minimum travel distance required before a direction
	// change is even considered for a corner bonus.
	CornerCheckDistanceThresholdScale float32 = 0.23

	// CornerSumAngleThreshold (radians) is the accumulated turning angle
	// since the last sampled point above which a corner is flagged even if
	// the single-step angle difference is small.
	CornerSumAngleThreshold float32 = 2.0

	// CornerAngleThresholdForPointScore (radians) is the single-step
	// direction change above which a corner is flagged outright.
	CornerAngleThresholdForPointScore float32 = 0.75

	// CornerScore is added to a point's score when a corner is detected.
	CornerScore float32 = 1.0

	// MarginForPrevLocalMin is the slack added when comparing a
	// near-key distance against its neighbours in the local-minimum check,
	// so that near-equal distances don't flicker the verdict.
	MarginForPrevLocalMin float32 = 0.01

	// LastPointSkipDistanceScale multiplies the distance from the final touch
	// point to the last retained sample; when the product is below the
	// most-common key width, the final point is discarded as redundant.
	LastPointSkipDistanceScale float32 = 4.0

	// NumPointsForSpeedCalculation is the number of raw samples looked at
	// on either side of a sampled point's input index when estimating local
	// speed.
	NumPointsForSpeedCalculation = 2

	// LookupRadiusPercentile, as a percentage of the most-common key width,
	// is the radius used when searching outward from a sampled point for
	// the beeline-speed window.
	LookupRadiusPercentile int32 = 55

	// MaxPercentile is the percentile denominator (100%).
	MaxPercentile int32 = 100

	// MinDoubleLetterBeelineSpeedPercentile is the beeline-speed ratio
	// threshold below which a repeated letter is treated as a (non-strong)
	// double letter.
	MinDoubleLetterBeelineSpeedPercentile float32 = 0.5

	// StrongDoubleLetterTimeMillis is the elapsed time at or above which the
	// beeline-speed window around a sampled point is recorded as 0, i.e. a
	// strong double letter, whatever the beeline distance.
	StrongDoubleLetterTimeMillis int32 = 600

	// FirstPointTimeOffsetMillis pads the elapsed-time estimate used by the
	// beeline-speed calculation when the lookup window touches either end
	// of the raw input stream, where the true "time before/after" is
	// unknown.
	FirstPointTimeOffsetMillis int32 = 20
)
