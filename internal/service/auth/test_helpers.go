package auth

import (
	"time"

	"github.com/quizcrawler/quizcrawler-api/internal/config"
)

// NewJWTServiceWithClock creates a JWT service whose notion of "now" comes
// from the given function. Tests use this to mint already-expired tokens and
// to validate at a chosen instant without sleeping.
func NewJWTServiceWithClock(cfg config.AuthConfig, timeFunc func() time.Time) (JWTService, error) {
	svc, err := NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	impl := svc.(*hmacJWTService)
	impl.timeFunc = timeFunc
	// No skew in tests: expiry boundaries must be exact to be assertable.
	impl.clockSkew = 0
	return impl, nil
}
