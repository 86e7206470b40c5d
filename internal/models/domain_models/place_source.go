package domain_models

import "context"

// SourceKind tells the ranker which filters a source already applied
// upstream. The online kind delegates the radius cutoff to the remote API
// and leaves missing prices unchecked; offline kinds filter locally and
// impute a default tier for a missing price column.
type SourceKind string

const (
	SourceOnline   SourceKind = "online"
	SourceOffline  SourceKind = "offline"
	SourceDatabase SourceKind = "database"
)

// PlaceSource is a candidate-fetching collaborator. Implementations
// normalize their raw records into Place at the boundary so the ranking
// pipeline stays type-uniform.
type PlaceSource interface {
	FetchPlaces(ctx context.Context, center Coordinates, radiusM float64, limit int) ([]Place, error)
	Kind() SourceKind
}
