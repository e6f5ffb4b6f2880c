package services

import (
	"slices"
	"strings"

	"geospend-itinerary-service/internal/domain"
)

// Feature weights of the preference score. The text boost is added on top of
// the weighted base sum, so the total ranges up to 1.2 rather than 1.
const (
	ratingWeight     = 0.30
	categoryWeight   = 0.30
	vibeWeight       = 0.20
	popularityWeight = 0.20
	textBoostWeight  = 0.20
)

// ScoreAndRank computes a preference-weighted score for each candidate and
// returns them sorted by score descending. Equal scores break by place ID
// ascending so output order is reproducible.
func ScoreAndRank(
	candidates []domain.Place,
	preferredCategories []string,
	preferredVibes []string,
	freeText string,
) []domain.ScoredCandidate {
	catSet := make(map[string]struct{}, len(preferredCategories))
	for _, c := range preferredCategories {
		catSet[c] = struct{}{}
	}

	vibeSet := make(map[string]struct{}, len(preferredVibes))
	for _, v := range preferredVibes {
		vibeSet[strings.ToLower(v)] = struct{}{}
	}

	tokens := queryTokens(freeText)

	ranked := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, domain.ScoredCandidate{
			Place: p,
			Score: score(p, catSet, vibeSet, tokens),
		})
	}

	slices.SortStableFunc(ranked, func(a, b domain.ScoredCandidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return strings.Compare(a.Place.ID, b.Place.ID)
	})

	return ranked
}

func score(
	p domain.Place,
	catSet map[string]struct{},
	vibeSet map[string]struct{},
	tokens []string,
) float64 {
	ratingScore := p.Rating / 5

	// Neutral 0.5 when the traveller expressed no category preference.
	categoryScore := 0.5
	if len(catSet) > 0 {
		if _, ok := catSet[p.Category]; ok {
			categoryScore = 1
		} else {
			categoryScore = 0
		}
	}

	vibeMatches := 0
	for _, v := range p.Vibes {
		if _, ok := vibeSet[strings.ToLower(v)]; ok {
			vibeMatches++
		}
	}
	vibeScore := float64(vibeMatches) / 2
	if vibeScore > 1 {
		vibeScore = 1
	}

	base := ratingScore*ratingWeight +
		categoryScore*categoryWeight +
		vibeScore*vibeWeight +
		p.Popularity*popularityWeight

	return base + textMatchBoost(p, tokens)*textBoostWeight
}

// queryTokens lowercases and splits free text on whitespace, dropping tokens
// of length two or less.
func queryTokens(freeText string) []string {
	fields := strings.Fields(strings.ToLower(freeText))
	tokens := make([]string, 0, len(fields))
	for _, t := range fields {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// textMatchBoost is the fraction of query tokens found as substrings in the
// place's tags, vibes, name, and category, capped at 1.
func textMatchBoost(p domain.Place, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	parts := make([]string, 0, len(p.Tags)+len(p.Vibes)+2)
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Vibes...)
	parts = append(parts, p.Name, p.Category)
	haystack := strings.ToLower(strings.Join(parts, " "))

	matches := 0
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			matches++
		}
	}

	boost := float64(matches) / float64(len(tokens))
	if boost > 1 {
		boost = 1
	}
	return boost
}
