package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite catalogue schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createNeighbourhoodsQuery := `
	CREATE TABLE IF NOT EXISTS neighbourhoods (
		name TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		neighbourhood TEXT NOT NULL REFERENCES neighbourhoods(name),
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		entry_fee INTEGER NOT NULL DEFAULT 0,
		avg_food INTEGER NOT NULL DEFAULT 0,
		duration_min INTEGER NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		price_tier TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		vibes TEXT NOT NULL DEFAULT '[]',
		popularity REAL
	);
	`

	createTransportEdgesQuery := `
	CREATE TABLE IF NOT EXISTS transport_edges (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT 'Matatu',
		fare INTEGER NOT NULL,
		minutes INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_neighbourhood
	ON places(neighbourhood);
	`

	statements := []string{
		createNeighbourhoodsQuery,
		createPlacesQuery,
		createTransportEdgesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type NeighbourhoodSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type PlaceSeed struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Neighbourhood string   `json:"neighbourhood"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	EntryFee      int      `json:"entry_fee"`
	AvgFood       int      `json:"avg_food"`
	DurationMin   int      `json:"duration_min"`
	Rating        float64  `json:"rating"`
	PriceTier     string   `json:"price_tier"`
	Tags          []string `json:"tags"`
	Vibes         []string `json:"vibes"`
	// Pointer so an omitted popularity stays distinguishable from 0.
	Popularity *float64 `json:"popularity"`
}

type TransportEdgeSeed struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Fare        int    `json:"fare"`
	Minutes     int    `json:"minutes"`
}

type CatalogueSeed struct {
	Neighbourhoods []NeighbourhoodSeed `json:"neighbourhoods"`
	Places         []PlaceSeed         `json:"places"`
	TransportEdges []TransportEdgeSeed `json:"transport_edges"`
}

// Populate the SQLite database with catalogue data from a JSON file.
// Existing rows with matching keys are replaced, so reseeding is idempotent.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalogue: read %q: %w", jsonPath, err)
	}

	var seed CatalogueSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed catalogue: parse json: %w", err)
	}

	known := make(map[string]struct{}, len(seed.Neighbourhoods))
	for i, n := range seed.Neighbourhoods {
		if strings.TrimSpace(n.Name) == "" {
			return fmt.Errorf("seed catalogue: neighbourhood at index %d has empty name", i)
		}
		known[n.Name] = struct{}{}
	}

	for i, p := range seed.Places {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("seed catalogue: place at index %d has empty id", i)
		}
		if _, ok := known[p.Neighbourhood]; !ok {
			return fmt.Errorf("seed catalogue: place %q references unknown neighbourhood %q", p.ID, p.Neighbourhood)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalogue: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedNeighbourhoods(tx, seed.Neighbourhoods); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}
	if err := seedPlaces(tx, seed.Places); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}
	if err := seedTransportEdges(tx, seed.TransportEdges); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalogue: commit tx: %w", err)
	}

	return nil
}

func seedNeighbourhoods(tx *sql.Tx, rows []NeighbourhoodSeed) error {
	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO neighbourhoods (name, lat, lng)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("prepare neighbourhood insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range rows {
		if _, err := stmt.Exec(n.Name, n.Lat, n.Lng); err != nil {
			return fmt.Errorf("insert neighbourhood %q: %w", n.Name, err)
		}
	}
	return nil
}

func seedPlaces(tx *sql.Tx, rows []PlaceSeed) error {
	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO places (
		id, name, category, neighbourhood, lat, lng,
		entry_fee, avg_food, duration_min, rating, price_tier,
		tags, vibes, popularity
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("prepare place insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags for %q: %w", p.ID, err)
		}
		vibes, err := json.Marshal(p.Vibes)
		if err != nil {
			return fmt.Errorf("marshal vibes for %q: %w", p.ID, err)
		}

		var popularity any
		if p.Popularity != nil {
			popularity = *p.Popularity
		}

		_, err = stmt.Exec(
			p.ID, p.Name, p.Category, p.Neighbourhood, p.Lat, p.Lng,
			p.EntryFee, p.AvgFood, p.DurationMin, p.Rating, p.PriceTier,
			string(tags), string(vibes), popularity,
		)
		if err != nil {
			return fmt.Errorf("insert place %q: %w", p.ID, err)
		}
	}
	return nil
}

func seedTransportEdges(tx *sql.Tx, rows []TransportEdgeSeed) error {
	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO transport_edges (origin, destination, mode, fare, minutes)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("prepare transport edge insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range rows {
		mode := e.Mode
		if mode == "" {
			mode = "Matatu"
		}
		if _, err := stmt.Exec(e.Origin, e.Destination, mode, e.Fare, e.Minutes); err != nil {
			return fmt.Errorf("insert transport edge %q->%q: %w", e.Origin, e.Destination, err)
		}
	}
	return nil
}
