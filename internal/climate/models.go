package climate

import (
	"errors"

	"github.com/andreigec/koppen-climate-lookup/internal/koppen"
	"github.com/andreigec/koppen-climate-lookup/internal/types"
)

// ErrNoClassification is returned when no reference point lies within the search radius.
var ErrNoClassification = errors.New("no climate classification found within search radius")

// Classification is the climate class that applies at a queried coordinate.
type Classification struct {
	Query       types.Coords        `json:"query"`
	Nearest     koppen.NearestPoint `json:"nearest"`
	Class       koppen.ClassInfo    `json:"class"`
	Timezone    string              `json:"timezone,omitempty"` // IANA name of the query point, empty when unknown
	MaxDistance float64             `json:"maxDistance"`        // km
}
