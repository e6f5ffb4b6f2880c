package domain

// Named area with a representative center used as the unit of spatial and
// transport reasoning.
type Neighbourhood struct {
	Name   string
	Center Coordinates
}

// A single visitable place loaded from the catalogue.
// Immutable for the duration of a planning run.
type Place struct {
	ID            string
	Name          string
	Category      string
	Neighbourhood string
	Coords        Coordinates
	EntryFee      int
	AvgFood       int
	DurationMin   int
	Rating        float64
	PriceTier     string
	Tags          []string
	Vibes         []string
	Popularity    float64
}

// IntrinsicCost is the cost of visiting the place itself, excluding transport.
func (p Place) IntrinsicCost() int { return p.EntryFee + p.AvgFood }

// Transport cost and time between two neighbourhoods for a given mode.
type TransportEdge struct {
	Mode    string
	Fare    int
	Minutes int
}

// EdgeKey builds the ordered-pair key used by the transport table.
func EdgeKey(origin, destination string) string {
	return origin + "|" + destination
}

// Catalogue is an immutable snapshot of the place and transport dataset.
// It is constructed once per load and passed by reference into every
// planning call; concurrent planning requests share it without coordination.
type Catalogue struct {
	Neighbourhoods map[string]Neighbourhood
	Places         []Place
	TransportTable map[string]TransportEdge
}

// Center resolves a neighbourhood's representative coordinate by name.
func (c *Catalogue) Center(name string) (Coordinates, bool) {
	n, ok := c.Neighbourhoods[name]
	if !ok {
		return Coordinates{}, false
	}
	return n.Center, true
}

// Edge looks up an explicit transport edge for an ordered neighbourhood pair.
func (c *Catalogue) Edge(origin, destination string) (TransportEdge, bool) {
	e, ok := c.TransportTable[EdgeKey(origin, destination)]
	return e, ok
}
