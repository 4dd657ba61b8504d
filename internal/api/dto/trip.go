package dto

type VehicleRequest struct {
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	Electric bool    `json:"electric"`
	MPG      float64 `json:"mpg"`
}

type EstimateRequest struct {
	Start   string         `json:"start"`
	Stops   []string       `json:"stops"`
	End     string         `json:"end"`
	Vehicle VehicleRequest `json:"vehicle"`
	Grade   string         `json:"grade"`
}

type MarkerResponse struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type EstimateResponse struct {
	DistanceKm      float64          `json:"distance_km"`
	DistanceMiles   float64          `json:"distance_miles"`
	DurationMinutes float64          `json:"duration_minutes"`
	FuelUsedGallons float64          `json:"fuel_used_gallons"`
	PricePerGallon  float64          `json:"price_per_gallon"`
	PriceFallback   bool             `json:"price_fallback"`
	TotalCost       float64          `json:"total_cost"`
	Markers         []MarkerResponse `json:"markers"`
	// Geometry is the route path as [lat, lon] pairs for map rendering.
	Geometry [][2]float64 `json:"geometry"`
}
