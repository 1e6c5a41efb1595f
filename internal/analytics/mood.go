package analytics

// negativeEmotions is the fixed set whose combined presence drags the mood
// score down. The penalty is their average share, not the sum, so it stays
// on the same 0-100 scale as the sentiment percentages.
var negativeEmotions = []string{"anger", "disgust", "fear", "sadness"}

// MoodScore combines sentiment and emotion distributions into a single
// 0-100 health score, rounded to one decimal. Neutral input centers at 50;
// positive sentiment pulls up, negative sentiment and negative-emotion
// presence pull down, with emotion weighted at 30% of its raw magnitude.
// Total function: missing labels contribute zero.
func MoodScore(sentiment, emotion Distribution) float64 {
	positive := sentiment.Get("POSITIVE")
	negative := sentiment.Get("NEGATIVE")

	var penalty float64
	for _, e := range negativeEmotions {
		penalty += emotion.Get(e)
	}
	penalty /= float64(len(negativeEmotions))

	adjusted := (positive - negative) - 0.3*penalty

	score := 50 + adjusted/2
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round1(score)
}

// VolatilityIndex measures how scattered the emotion distribution is,
// 0-100 with one decimal. An empty distribution returns exactly 0. A
// single-emotion corpus also returns 0: the one observed label holds 100%
// and every unobserved label holds 0, so the spread is maximal and the
// corpus registers as fully concentrated. The max-minus-min spread is a
// deliberately crude dispersion proxy, kept over variance or entropy to
// preserve reference behavior.
func VolatilityIndex(emotion Distribution) float64 {
	if len(emotion) == 0 {
		return 0
	}

	first := true
	var max, min float64
	for _, v := range emotion {
		if first {
			max, min = v, v
			first = false
			continue
		}
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	if len(emotion) == 1 {
		min = 0 // unobserved labels count as zero share
	}

	concentration := (max - min) / 100
	return round1(100 * (1 - concentration))
}
