package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-microservice/internal/domain"
)

func geoAttraction(name string, lat, lon float64, score float64) domain.ScoredAttraction {
	return domain.ScoredAttraction{
		Attraction: domain.Attraction{
			Name:      name,
			Latitude:  fptr(lat),
			Longitude: fptr(lon),
		},
		FinalScore: score,
	}
}

func TestClusterByRadius(t *testing.T) {
	near := geoAttraction("near", 6.95, 79.85, 0.8)   // ~5.5 km north of anchor
	far := geoAttraction("far", 7.50, 79.85, 0.7)     // ~67 km north
	noCoords := domain.ScoredAttraction{Attraction: domain.Attraction{Name: "no-coords"}, FinalScore: 0.9}
	anchor := geoAttraction("anchor", 6.90, 79.85, 0.95)

	t.Run("keeps only items within radius", func(t *testing.T) {
		items := []domain.ScoredAttraction{anchor, near, far, noCoords}
		out := clusterByRadius(items, 0, 20.0)

		require.Len(t, out, 2)
		assert.Equal(t, "anchor", out[0].Name)
		assert.Equal(t, "near", out[1].Name)
	})

	t.Run("anchor without coordinates disables filtering", func(t *testing.T) {
		items := []domain.ScoredAttraction{noCoords, anchor, far}
		out := clusterByRadius(items, 0, 20.0)

		assert.Len(t, out, 3)
	})

	t.Run("larger radius admits distant items", func(t *testing.T) {
		items := []domain.ScoredAttraction{anchor, near, far}
		out := clusterByRadius(items, 0, 100.0)

		assert.Len(t, out, 3)
	})
}

func TestRouteNearestNeighbor(t *testing.T) {
	a := geoAttraction("a", 6.90, 79.85, 0.9)
	b := geoAttraction("b", 6.95, 79.85, 0.8)
	c := geoAttraction("c", 7.10, 79.85, 0.7)

	t.Run("orders stops from start point", func(t *testing.T) {
		start := domain.GeoPoint{Lat: fptr(6.88), Lon: fptr(79.85)}
		routed := routeNearestNeighbor([]domain.ScoredAttraction{c, b, a}, start)

		require.Len(t, routed, 3)
		assert.Equal(t, "a", routed[0].Name)
		assert.Equal(t, "b", routed[1].Name)
		assert.Equal(t, "c", routed[2].Name)

		assert.Equal(t, 0.0, routed[0].TravelFromPrevKm)
		assert.InDelta(t, 5.56, routed[1].TravelFromPrevKm, 0.2)
		assert.InDelta(t, 16.68, routed[2].TravelFromPrevKm, 0.5)
	})

	t.Run("without start keeps first item as origin", func(t *testing.T) {
		routed := routeNearestNeighbor([]domain.ScoredAttraction{b, c, a}, domain.GeoPoint{})

		require.Len(t, routed, 3)
		assert.Equal(t, "b", routed[0].Name)
		assert.Equal(t, "a", routed[1].Name) // a is nearer to b than c
		assert.Equal(t, "c", routed[2].Name)
	})

	t.Run("output is a permutation of input", func(t *testing.T) {
		input := []domain.ScoredAttraction{a, b, c}
		routed := routeNearestNeighbor(input, domain.GeoPoint{})

		names := map[string]int{}
		for _, r := range routed {
			names[r.Name]++
		}
		assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, names)
	})

	t.Run("items without coordinates go last with zero travel", func(t *testing.T) {
		blind := domain.ScoredAttraction{Attraction: domain.Attraction{Name: "blind"}}
		start := domain.GeoPoint{Lat: fptr(6.88), Lon: fptr(79.85)}

		routed := routeNearestNeighbor([]domain.ScoredAttraction{blind, a, b}, start)

		require.Len(t, routed, 3)
		assert.Equal(t, "blind", routed[2].Name)
		assert.Equal(t, 0.0, routed[2].TravelFromPrevKm)
	})

	t.Run("single item gets zero travel", func(t *testing.T) {
		routed := routeNearestNeighbor([]domain.ScoredAttraction{a}, domain.GeoPoint{})

		require.Len(t, routed, 1)
		assert.Equal(t, 0.0, routed[0].TravelFromPrevKm)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, routeNearestNeighbor(nil, domain.GeoPoint{}))
	})
}

func TestSortByFinalScoreDesc(t *testing.T) {
	items := []domain.ScoredAttraction{
		{Attraction: domain.Attraction{Name: "low"}, FinalScore: 0.2},
		{Attraction: domain.Attraction{Name: "high"}, FinalScore: 0.9},
		{Attraction: domain.Attraction{Name: "mid"}, FinalScore: 0.5},
	}

	sortByFinalScoreDesc(items)

	assert.Equal(t, "high", items[0].Name)
	assert.Equal(t, "mid", items[1].Name)
	assert.Equal(t, "low", items[2].Name)
}
