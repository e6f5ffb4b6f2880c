package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"geospend-itinerary-service/internal/domain"
	"geospend-itinerary-service/internal/platform/obs"
)

// SQL-backed implementation of the CatalogueRepository port.
//
// The catalogue reads are plain SELECTs, so the same implementation serves
// both the SQLite store used locally and Postgres deployments (the driver
// is chosen by the composition root). Places with a NULL popularity get
// defaultPopularity, keeping the neutral default explicit.
type SQLCatalogueRepository struct {
	DB                *sql.DB
	DefaultPopularity float64
}

func NewSQLCatalogueRepository(db *sql.DB, defaultPopularity float64) *SQLCatalogueRepository {
	return &SQLCatalogueRepository{DB: db, DefaultPopularity: defaultPopularity}
}

// Load the full catalogue snapshot.
func (s *SQLCatalogueRepository) LoadCatalogue(ctx context.Context) (_ *domain.Catalogue, err error) {
	defer obs.Time(ctx, "repositories.LoadCatalogue")(&err)

	if s.DB == nil {
		return nil, errors.New("catalogue repository: DB is nil")
	}

	neighbourhoods, err := s.loadNeighbourhoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	places, err := s.loadPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	transportTable, err := s.loadTransportEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	return &domain.Catalogue{
		Neighbourhoods: neighbourhoods,
		Places:         places,
		TransportTable: transportTable,
	}, nil
}

func (s *SQLCatalogueRepository) loadNeighbourhoods(ctx context.Context) (map[string]domain.Neighbourhood, error) {
	query := `
	SELECT name, lat, lng
	FROM neighbourhoods
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query neighbourhoods table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Neighbourhood, 16)
	for rows.Next() {
		var name string
		var lat, lng float64
		if err := rows.Scan(&name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("scan neighbourhood row: %w", err)
		}
		out[name] = domain.Neighbourhood{
			Name:   name,
			Center: domain.Coordinates{Lat: lat, Lng: lng},
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("neighbourhood row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLCatalogueRepository) loadPlaces(ctx context.Context) ([]domain.Place, error) {
	query := `
	SELECT
		id, name, category, neighbourhood, lat, lng,
		entry_fee, avg_food, duration_min, rating, price_tier,
		tags, vibes, popularity
	FROM places
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		var p domain.Place
		var lat, lng float64
		var tagsRaw, vibesRaw string
		var popularity sql.NullFloat64

		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Neighbourhood, &lat, &lng,
			&p.EntryFee, &p.AvgFood, &p.DurationMin, &p.Rating, &p.PriceTier,
			&tagsRaw, &vibesRaw, &popularity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan place row: %w", err)
		}

		p.Coords = domain.Coordinates{Lat: lat, Lng: lng}

		if err := json.Unmarshal([]byte(tagsRaw), &p.Tags); err != nil {
			return nil, fmt.Errorf("parse tags for place %q: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(vibesRaw), &p.Vibes); err != nil {
			return nil, fmt.Errorf("parse vibes for place %q: %w", p.ID, err)
		}

		if popularity.Valid {
			p.Popularity = popularity.Float64
		} else {
			p.Popularity = s.DefaultPopularity
		}

		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("place row iteration: %w", err)
	}

	return places, nil
}

func (s *SQLCatalogueRepository) loadTransportEdges(ctx context.Context) (map[string]domain.TransportEdge, error) {
	query := `
	SELECT origin, destination, mode, fare, minutes
	FROM transport_edges;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transport_edges table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.TransportEdge, 64)
	for rows.Next() {
		var origin, destination string
		var edge domain.TransportEdge
		if err := rows.Scan(&origin, &destination, &edge.Mode, &edge.Fare, &edge.Minutes); err != nil {
			return nil, fmt.Errorf("scan transport edge row: %w", err)
		}
		out[domain.EdgeKey(origin, destination)] = edge
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transport edge row iteration: %w", err)
	}

	return out, nil
}
