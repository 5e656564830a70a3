package scoring

import (
	"math"
	"sort"
)

// Answer is one recorded response with its catalog context resolved
// server-side: the question's category and the authoritative option value.
type Answer struct {
	QuestionID  uint
	CategoryID  uint
	OptionValue int
}

// CategoryScore is the aggregate for one category touched by an attempt.
type CategoryScore struct {
	CategoryID uint
	Score      int
	Answered   int
	Percent    float64
}

// Outcome is the full result of scoring one attempt.
type Outcome struct {
	Scores             []CategoryScore
	TotalScore         int
	DominantCategoryID *uint
}

// Compute aggregates answers into per-category scores. The percentage for a
// category normalizes against the questions actually answered in it, not the
// category's full question count, so partially completed attempts still score
// fairly. maxOptionValue is the live scale ceiling (highest active option
// value); with answered questions and maxOptionValue > 0 the percentage is
//
//	round(score / (answered × maxOptionValue) × 100, 2)
//
// and 0 otherwise. The dominant category is the one with the strictly highest
// percentage; exact ties resolve to the lowest category id so the outcome
// never depends on iteration order. An empty answer set is a valid outcome
// with no scores and no dominant category.
func Compute(answers []Answer, maxOptionValue int) Outcome {
	type bucket struct {
		score    int
		answered int
	}
	buckets := make(map[uint]*bucket)
	for _, a := range answers {
		b, ok := buckets[a.CategoryID]
		if !ok {
			b = &bucket{}
			buckets[a.CategoryID] = b
		}
		b.score += a.OptionValue
		b.answered++
	}

	outcome := Outcome{Scores: make([]CategoryScore, 0, len(buckets))}
	for categoryID, b := range buckets {
		ceiling := b.answered * maxOptionValue
		percent := 0.0
		if ceiling > 0 {
			percent = round2(float64(b.score) / float64(ceiling) * 100)
		}
		outcome.Scores = append(outcome.Scores, CategoryScore{
			CategoryID: categoryID,
			Score:      b.score,
			Answered:   b.answered,
			Percent:    percent,
		})
		outcome.TotalScore += b.score
	}

	// Highest percentage first; equal percentages ordered by category id so
	// both the listing and the dominant pick are deterministic.
	sort.Slice(outcome.Scores, func(i, j int) bool {
		if outcome.Scores[i].Percent != outcome.Scores[j].Percent {
			return outcome.Scores[i].Percent > outcome.Scores[j].Percent
		}
		return outcome.Scores[i].CategoryID < outcome.Scores[j].CategoryID
	})

	if len(outcome.Scores) > 0 {
		dominant := outcome.Scores[0].CategoryID
		outcome.DominantCategoryID = &dominant
	}
	return outcome
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
