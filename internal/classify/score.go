package classify

// Score maps a feature vector to the probability that the line is a
// heading. It is a fixed weighted combination, deterministic and
// total: the result is always within [0, 0.99].
func Score(f FeatureVector) float64 {
	fontProb := 0.8 - f[featFontRank]*0.15
	if fontProb < 0 {
		fontProb = 0
	}

	styleScore := 0.4*f[featBold] +
		0.3*f[featCapsRatio] +
		0.2*f[featNumericPrefix] +
		0.15*f[featEndsColon] +
		0.25*f[featCentered]

	positionScore := 0.2*(1-f[featLeftIndent]) +
		0.15*f[featTopSpacing] +
		0.1*f[featIsPage1] +
		0.2*f[featWhitespaceAfter] +
		0.25*f[featIsolation]

	textLen := f[featTextLen]
	var lengthPenalty float64
	switch {
	case textLen < 3:
		lengthPenalty = 0.8
	case textLen < 6:
		lengthPenalty = 0.9
	case textLen < 60:
		lengthPenalty = 1.0
	case textLen < 100:
		lengthPenalty = 0.7
	default:
		lengthPenalty = 0.3
	}

	consistencyBonus := 0.15 * f[featConsistency]

	total := (0.35*fontProb + 0.30*styleScore + 0.25*positionScore + 0.10*consistencyBonus) * lengthPenalty

	if f[featTooLong] > 0 {
		total *= 0.3
	}

	// Never report certainty.
	if total > 0.99 {
		total = 0.99
	}
	return total
}
