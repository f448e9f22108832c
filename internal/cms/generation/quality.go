package generation

import (
	"strings"
	"unicode"

	"github.com/siteforge-dev/siteforge/pkg/models"
)

// Weights for the overall quality rollup.
const (
	weightReadability = 0.4
	weightSEO         = 0.35
	weightEngagement  = 0.25
)

// ScoreContent derives a deterministic quality assessment from the generated
// body fields. The heuristics are intentionally simple: the scores feed
// editorial dashboards, not ranking decisions.
func ScoreContent(body map[string]any) models.QualityScore {
	text := flatten(body)
	score := models.QualityScore{
		Readability: readability(text),
		SEO:         seo(body, text),
		Engagement:  engagement(text),
	}
	score.Overall = weightReadability*score.Readability +
		weightSEO*score.SEO +
		weightEngagement*score.Engagement
	return score
}

func flatten(body map[string]any) string {
	var b strings.Builder
	for _, v := range body {
		if s, ok := v.(string); ok {
			b.WriteString(s)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// readability approximates reading ease from average sentence length.
func readability(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	sentences := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}
	avg := float64(words) / float64(sentences)
	// 15 words per sentence scores best; very long sentences degrade
	// linearly down to 0.2.
	switch {
	case avg <= 15:
		return 1.0
	case avg >= 40:
		return 0.2
	default:
		return 1.0 - 0.8*(avg-15)/25
	}
}

// seo rewards the structural fields search engines consume.
func seo(body map[string]any, text string) float64 {
	score := 0.4
	if _, ok := body["metaDescription"]; ok {
		score += 0.2
	}
	if _, ok := body["headline"]; ok {
		score += 0.2
	}
	words := len(strings.Fields(text))
	if words >= 300 {
		score += 0.2
	} else if words >= 100 {
		score += 0.1
	}
	if score > 1 {
		score = 1
	}
	return score
}

// engagement rewards questions and direct address, which correlate with
// time-on-page in the editorial analytics.
func engagement(text string) float64 {
	if text == "" {
		return 0
	}
	score := 0.5
	if strings.Contains(text, "?") {
		score += 0.2
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "you") {
		score += 0.2
	}
	// All-caps shouting hurts.
	letters, uppers := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters > 0 && float64(uppers)/float64(letters) > 0.3 {
		score -= 0.3
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}
