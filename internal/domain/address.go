package domain

// Candidate is one resolved interpretation of a free-text address query:
// a display string, its coordinates, and the region it falls in.
// Region is empty when the geocoder returned no recognizable state; such
// candidates still route, they just contribute nothing to fuel pricing.
type Candidate struct {
	DisplayName string
	Coordinates Coordinates
	Region      Region
}

// Marker is a labelled waypoint handed to the presentation layer.
type Marker struct {
	Label       string
	Coordinates Coordinates
}
