package models

// GeoPoint is a GeoJSON point stored as [longitude, latitude], matching the
// 2dsphere indexes created by the migrations.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a Point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Longitude returns the first coordinate, or 0 for a malformed point.
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) > 0 {
		return p.Coordinates[0]
	}
	return 0
}

// Latitude returns the second coordinate, or 0 for a malformed point.
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) > 1 {
		return p.Coordinates[1]
	}
	return 0
}
