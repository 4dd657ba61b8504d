package domain

// Immutable geographic coordinates, read as (lat, lon) throughout the
// codebase. Named fields keep wire order mistakes out of internal code.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
// Routing services take longitude first on the wire, the reverse of the
// (lat, lon) convention used everywhere else in this codebase.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
