package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// TransitService follows one body through the zodiac over time.
type TransitService interface {
	// Walk samples a body from a starting date at a fixed step for the given
	// number of days, marking sign ingresses and retrograde stations.
	Walk(ctx context.Context, body domain.Body, from domain.Date, days int, step time.Duration) ([]domain.TransitStep, error)
}
