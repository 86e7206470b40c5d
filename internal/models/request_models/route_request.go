package request_models

type StartCoordinate struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type RoutePlace struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	Popularity *float64 `json:"popularity"`
}

type RouteRequest struct {
	Start     StartCoordinate `json:"start"`
	Places    []RoutePlace    `json:"places" binding:"required,max=6"`
	Budget    float64         `json:"budget"`
	People    int             `json:"people"`
	Itinerary bool            `json:"itinerary"`
}
