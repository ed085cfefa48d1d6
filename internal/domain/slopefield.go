package domain

// Slope-field grid dimensions and the fixed t-extent of each segment.
// Interior grid nodes only; edges of the plot carry no segment.
const (
	FieldGridT       = 25
	FieldGridS       = 20
	FieldSegmentSpan = 0.024
)

// SlopeSegment is one drift-field line segment, centered on its grid node.
type SlopeSegment struct {
	T0 float64 `json:"t0"`
	S0 float64 `json:"s0"`
	T1 float64 `json:"t1"`
	S1 float64 `json:"s1"`
}

// SlopeField is the deterministic drift-field grid for one drift value.
// It has no random component: each segment's slope is drift*S at its node.
type SlopeField struct {
	Drift    float64        `json:"drift"`
	Segments []SlopeSegment `json:"segments"`
}
