package domain

// Store is a physical boutique customers can buy from or pick orders up at.
type Store struct {
	// ID is the stable store identifier.
	ID int `json:"id"`
	// Name is the boutique display name.
	Name string `json:"name"`
	// Address is the full street address.
	Address string `json:"address"`
	// Lat is the store latitude.
	Lat float64 `json:"lat"`
	// Lng is the store longitude.
	Lng float64 `json:"lng"`
	// Hours is the human-readable opening schedule.
	Hours string `json:"hours"`
	// Phone is the store contact number.
	Phone string `json:"phone"`
}

// StoreWithDistance pairs a store with its distance from a caller location.
type StoreWithDistance struct {
	Store
	// DistanceKm is the great-circle distance from the caller, in kilometers.
	DistanceKm float64 `json:"distance_km"`
}

// Seed returns the boutique network. The catalog of physical locations is
// small and changes with lease signings, not at runtime.
func Seed() []Store {
	return []Store{
		{
			ID:      1,
			Name:    "LuxBag Saigon Centre",
			Address: "65 Lê Lợi, Quận 1, TP.HCM",
			Lat:     10.7731,
			Lng:     106.7003,
			Hours:   "9:00 – 21:00",
			Phone:   "+84 28 3823 5678",
		},
		{
			ID:      2,
			Name:    "LuxBag Landmark 81",
			Address: "772 Điện Biên Phủ, Bình Thạnh, TP.HCM",
			Lat:     10.7955,
			Lng:     106.7219,
			Hours:   "10:00 – 22:00",
			Phone:   "+84 28 3636 8181",
		},
		{
			ID:      3,
			Name:    "LuxBag Phú Mỹ Hưng",
			Address: "801 Nguyễn Văn Linh, Quận 7, TP.HCM",
			Lat:     10.7293,
			Lng:     106.7218,
			Hours:   "9:30 – 21:30",
			Phone:   "+84 28 5412 7800",
		},
	}
}
