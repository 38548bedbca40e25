package service

import (
	"sort"

	"luxbag-tracker/internal/features/stores/domain"
	"luxbag-tracker/internal/geo"
)

// StoreService answers boutique-locator queries over a fixed store set.
type StoreService struct {
	stores []domain.Store
}

// NewStoreService creates a locator over the given store network.
func NewStoreService(stores []domain.Store) *StoreService {
	return &StoreService{stores: stores}
}

// List returns every store in the network.
func (s *StoreService) List() []domain.Store {
	out := make([]domain.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

// Nearest annotates each store with its great-circle distance from loc and
// sorts the result nearest first.
func (s *StoreService) Nearest(loc geo.Point) []domain.StoreWithDistance {
	out := make([]domain.StoreWithDistance, 0, len(s.stores))
	for _, st := range s.stores {
		out = append(out, domain.StoreWithDistance{
			Store:      st,
			DistanceKm: geo.HaversineKm(loc, geo.Point{Lat: st.Lat, Lng: st.Lng}),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}
