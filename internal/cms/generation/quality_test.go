package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreContent_Deterministic(t *testing.T) {
	body := map[string]any{
		"headline":        "A headline",
		"metaDescription": "A description.",
		"body":            "Short sentences. Do you like them? You should.",
	}
	first := ScoreContent(body)
	second := ScoreContent(body)
	assert.Equal(t, first, second)
}

func TestScoreContent_OverallIsWeightedMean(t *testing.T) {
	body := map[string]any{"body": "One sentence here. Another one there."}
	s := ScoreContent(body)
	want := weightReadability*s.Readability + weightSEO*s.SEO + weightEngagement*s.Engagement
	assert.InDelta(t, want, s.Overall, 1e-9)
}

func TestScoreContent_EmptyBody(t *testing.T) {
	s := ScoreContent(map[string]any{})
	assert.Zero(t, s.Readability)
	assert.Zero(t, s.Engagement)
	assert.LessOrEqual(t, s.Overall, 1.0)
}

func TestScoreContent_Bounds(t *testing.T) {
	bodies := []map[string]any{
		{"body": "SHOUTING ALL THE TIME IS BAD."},
		{"headline": "h", "metaDescription": "m", "body": "You? Yes you. Great."},
		{"body": "one extremely long run-on sentence that never seems to end and keeps going well past the point where any reasonable reader would have lost the thread entirely and given up on it"},
	}
	for _, b := range bodies {
		s := ScoreContent(b)
		for name, v := range map[string]float64{"readability": s.Readability, "seo": s.SEO, "engagement": s.Engagement, "overall": s.Overall} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}
