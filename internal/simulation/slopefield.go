package simulation

import "github.com/gbmviz/gbm-visualizer/internal/domain"

// SlopeField computes the drift-field grid for a drift value: one line
// segment per interior grid node, with slope drift*S at the node. Pure
// function of drift; no randomness and no dependence on the seed.
func SlopeField(drift float64) domain.SlopeField {
	segments := make([]domain.SlopeSegment, 0, (domain.FieldGridT-1)*(domain.FieldGridS-1))

	for i := 1; i < domain.FieldGridT; i++ {
		for j := 1; j < domain.FieldGridS; j++ {
			t := domain.TimeMin + float64(i)/domain.FieldGridT*(domain.TimeMax-domain.TimeMin)
			s := domain.PriceMin + float64(j)/domain.FieldGridS*(domain.PriceMax-domain.PriceMin)

			slope := drift * s
			dtDir := domain.FieldSegmentSpan
			dsDir := slope * dtDir

			segments = append(segments, domain.SlopeSegment{
				T0: t - dtDir/2,
				S0: s - dsDir/2,
				T1: t + dtDir/2,
				S1: s + dsDir/2,
			})
		}
	}

	return domain.SlopeField{Drift: drift, Segments: segments}
}
