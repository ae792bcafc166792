package hydration

import "time"

// WaterIntake is a single logged drink of water.
type WaterIntake struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	AmountMl   int       `json:"amountMl"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Stats is the hydration summary over a window of days.
type Stats struct {
	TotalMl    int            `json:"totalMl"`
	DailyAvgMl float64        `json:"dailyAvgMl"`
	PerDay     map[string]int `json:"perDay"`
}

type Recommendation struct {
	RecommendedMl int `json:"recommendedMl"`
	// Basis tells whether the recommendation was derived from the
	// user's body weight or is the generic default.
	Basis string `json:"basis"`
}

const (
	RecommendationBasisWeight  = "weight"
	RecommendationBasisDefault = "default"
)
