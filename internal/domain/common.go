package domain

// GeoPoint - опциональная географическая точка (nil = координата неизвестна)
type GeoPoint struct {
	Lat *float64 `json:"latitude"`
	Lon *float64 `json:"longitude"`
}

// Valid проверяет, что обе координаты присутствуют
func (p GeoPoint) Valid() bool {
	return p.Lat != nil && p.Lon != nil
}
