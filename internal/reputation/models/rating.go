package models

import (
	"sort"
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is one rater's score for one user; (RaterID, RatedUserID) is
// unique and re-rating updates the row in place.
type Rating struct {
	ID            id.RatingID `json:"id"`
	RaterID       id.UserID   `json:"rater_id"`
	RatedUserID   id.UserID   `json:"rated_user_id"`
	RelatedCaseID *id.CaseID  `json:"related_case_id,omitempty"`
	Score         int         `json:"score"`
	Comment       string      `json:"comment,omitempty"`
	Category      string      `json:"category,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return dErrors.New(dErrors.CodeInvalidScore, "score must be between 1 and 5")
	}
	return nil
}

func NewRating(ratingID id.RatingID, raterID, ratedID id.UserID, score int, comment, category string, caseID *id.CaseID, now time.Time) (*Rating, error) {
	if raterID == ratedID {
		return nil, dErrors.New(dErrors.CodeSelfRating, "users cannot rate themselves")
	}
	if err := ValidateScore(score); err != nil {
		return nil, err
	}
	return &Rating{
		ID:            ratingID,
		RaterID:       raterID,
		RatedUserID:   ratedID,
		RelatedCaseID: clonePtr(caseID),
		Score:         score,
		Comment:       strings.TrimSpace(comment),
		Category:      strings.TrimSpace(category),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyRevision copies the mutable fields of next onto an existing row,
// keeping its identity and creation time.
func (r *Rating) ApplyRevision(next *Rating) {
	r.Score = next.Score
	r.Comment = next.Comment
	r.Category = next.Category
	r.RelatedCaseID = clonePtr(next.RelatedCaseID)
	r.UpdatedAt = next.UpdatedAt
}

func (r *Rating) Clone() *Rating {
	if r == nil {
		return nil
	}
	c := *r
	c.RelatedCaseID = clonePtr(r.RelatedCaseID)
	return &c
}

// Aggregate is the derived rating summary for one user.
type Aggregate struct {
	Average float64
	Count   int
}

// Summarize computes the arithmetic mean and count over ratings.
func Summarize(ratings []*Rating) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}
	total := 0
	for _, r := range ratings {
		total += r.Score
	}
	return Aggregate{Average: float64(total) / float64(len(ratings)), Count: len(ratings)}
}

type RateRequest struct {
	Score    int    `json:"score"`
	Comment  string `json:"comment,omitempty"`
	Category string `json:"category,omitempty"`
	CaseID   string `json:"case_id,omitempty"`
}

func (r RateRequest) ParseCase() (*id.CaseID, error) {
	return parseOptionalCase(r.CaseID)
}

// HighScore is the lowest score counted as a high rating.
const HighScore = 4

// CategoryTally is the raw per-category aggregate a rating store returns.
// Uncategorized ratings carry an empty Category.
type CategoryTally struct {
	Category string
	Count    int
	Sum      int
	High     int
	Perfect  int
}

// Tally folds ratings into per-category tallies ordered by category.
func Tally(ratings []*Rating) []CategoryTally {
	byCategory := make(map[string]*CategoryTally)
	for _, r := range ratings {
		t, ok := byCategory[r.Category]
		if !ok {
			t = &CategoryTally{Category: r.Category}
			byCategory[r.Category] = t
		}
		t.Count++
		t.Sum += r.Score
		if r.Score >= HighScore {
			t.High++
		}
		if r.Score == MaxScore {
			t.Perfect++
		}
	}
	out := make([]CategoryTally, 0, len(byCategory))
	for _, t := range byCategory {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

type CategoryStatistics struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// Statistics summarizes every rating a user has received.
type Statistics struct {
	UserID                  id.UserID            `json:"user_id"`
	OverallAverage          float64              `json:"overall_average"`
	TotalRatings            int                  `json:"total_ratings"`
	Categories              []CategoryStatistics `json:"categories"`
	HighRatings             int                  `json:"high_ratings"`
	PerfectRatings          int                  `json:"perfect_ratings"`
	HighRatingPercentage    float64              `json:"high_rating_percentage"`
	PerfectRatingPercentage float64              `json:"perfect_rating_percentage"`
}

// BuildStatistics derives the summary from per-category tallies. Ratings
// without a category count toward the totals only.
func BuildStatistics(userID id.UserID, tallies []CategoryTally) Statistics {
	st := Statistics{UserID: userID, Categories: make([]CategoryStatistics, 0, len(tallies))}
	sum := 0
	for _, t := range tallies {
		if t.Count == 0 {
			continue
		}
		st.TotalRatings += t.Count
		st.HighRatings += t.High
		st.PerfectRatings += t.Perfect
		sum += t.Sum
		if t.Category != "" {
			st.Categories = append(st.Categories, CategoryStatistics{
				Category: t.Category,
				Average:  float64(t.Sum) / float64(t.Count),
				Count:    t.Count,
			})
		}
	}
	if st.TotalRatings > 0 {
		total := float64(st.TotalRatings)
		st.OverallAverage = float64(sum) / total
		st.HighRatingPercentage = float64(st.HighRatings) / total * 100
		st.PerfectRatingPercentage = float64(st.PerfectRatings) / total * 100
	}
	return st
}
