package ranking

import (
	"fmt"

	apperrors "github.com/medroute/hospital-finder/pkg/errors"
	"github.com/tidwall/geodesic"
)

// Distance returns the geodesic distance in kilometers between two points
// on the WGS84 ellipsoid. A spherical haversine approximation drifts by
// enough at tens of kilometers to reorder close candidates, so the full
// inverse geodesic is used instead.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := validateCoordinate(lat1, lon1); err != nil {
		return 0, err
	}
	if err := validateCoordinate(lat2, lon2); err != nil {
		return 0, err
	}

	var meters float64
	geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2, &meters, nil, nil)
	return meters / 1000.0, nil
}

func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.NewValidationError(fmt.Sprintf("latitude %v outside [-90, 90]", lat))
	}
	if lon < -180 || lon > 180 {
		return apperrors.NewValidationError(fmt.Sprintf("longitude %v outside [-180, 180]", lon))
	}
	return nil
}
