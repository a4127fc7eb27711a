package domain

var (
	ErrDonorStatsNotFound     = NotFound("STATS_NOT_FOUND", "Donor statistics not found")
	ErrRecipientStatsNotFound = NotFound("STATS_NOT_FOUND", "Recipient statistics not found")
	ErrLogisticsStatsNotFound = NotFound("STATS_NOT_FOUND", "Logistics statistics not found")
)

// GlobalStats is assembled from independent aggregate queries at request
// time; nothing is cached or incrementally maintained.
type GlobalStats struct {
	TotalDonations      int64 `json:"totalDonations"`
	TotalMealsProvided  int64 `json:"totalMealsProvided"`
	TotalUsers          int64 `json:"totalUsers"`
	ActiveDeliveries    int64 `json:"activeDeliveries"`
	CompletedDeliveries int64 `json:"completedDeliveries"`
	TotalClaims         int64 `json:"totalClaims"`
	ActiveDonations     int64 `json:"activeDonations"`
}
