package dto

type PlaceResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Neighbourhood string         `json:"neighbourhood"`
	Coords        CoordsResponse `json:"coords"`
	EntryFee      int            `json:"entryFee"`
	AvgFood       int            `json:"avgFood"`
	DurationMin   int            `json:"durationMin"`
	Rating        float64        `json:"rating"`
	PriceTier     string         `json:"priceTier"`
	Tags          []string       `json:"tags"`
	Vibes         []string       `json:"vibes"`
	Popularity    float64        `json:"popularity"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type NeighbourhoodResponse struct {
	Name   string         `json:"name"`
	Center CoordsResponse `json:"center"`
}

type ListNeighbourhoodsResponse struct {
	Neighbourhoods []NeighbourhoodResponse `json:"neighbourhoods"`
}
