package growth

import "math"

// SaturatingCurve returns an adoption curve with diminishing returns:
// probability 1 − e^(−bonus/scale). Small bonuses move adoption quickly,
// large ones asymptote toward certainty. scale sets the dollar amount at
// which adoption reaches roughly 63%.
func SaturatingCurve(scale float64) AdoptionFunc {
	return func(bonus int) float64 {
		if scale <= 0 {
			return 0
		}
		return 1 - math.Exp(-float64(bonus)/scale)
	}
}

// LinearCurve returns an adoption curve that grows linearly with the bonus,
// clamped to [0, 1]: probability min(1, slope · bonus).
func LinearCurve(slope float64) AdoptionFunc {
	return func(bonus int) float64 {
		p := slope * float64(bonus)
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	}
}
