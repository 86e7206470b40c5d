package request_models

type RecommendRequest struct {
	Budget   float64 `json:"budget"`
	People   int     `json:"people"`
	Start    string  `json:"start" binding:"required"`
	RadiusM  float64 `json:"radius"`
	Category string  `json:"category"`
	Limit    int     `json:"limit"`
	Source   string  `json:"source"`
}
