package dto

type PlanRequest struct {
	Start       string   `json:"start"`
	Budget      int      `json:"budget"`
	Hours       float64  `json:"hours"`
	Categories  []string `json:"categories"`
	Vibes       []string `json:"vibes"`
	Query       string   `json:"query"`
	IncludePath bool     `json:"include_path"`
}

type CoordsResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TransportResponse struct {
	Mode    string `json:"mode"`
	Fare    int    `json:"fare"`
	Minutes int    `json:"minutes"`
}

type CostBreakdownResponse struct {
	Transport int `json:"transport"`
	Entry     int `json:"entry"`
	Food      int `json:"food"`
	Total     int `json:"total"`
}

type TimeBreakdownResponse struct {
	Travel int `json:"travel"`
	Visit  int `json:"visit"`
	Total  int `json:"total"`
}

type StopResponse struct {
	PlaceID       string                `json:"place_id"`
	Name          string                `json:"name"`
	Category      string                `json:"category"`
	Neighbourhood string                `json:"neighbourhood"`
	Coords        CoordsResponse        `json:"coords"`
	Score         float64               `json:"score"`
	Transport     TransportResponse     `json:"transport"`
	Cost          CostBreakdownResponse `json:"cost"`
	Time          TimeBreakdownResponse `json:"time"`
}

type PlanResponse struct {
	Stops            []StopResponse   `json:"stops"`
	RemainingBudget  int              `json:"remaining_budget"`
	RemainingMinutes int              `json:"remaining_minutes"`
	Path             []CoordsResponse `json:"path,omitempty"`
}
