package interfaces

import (
	"context"

	"github.com/lmbotha/lea/internal/models"
)

// TokenClient calls the Siyavula credential-exchange API.
//
// A non-nil error means the call never produced a provider verdict: transport
// failure, timeout or an unparseable body. A provider-reported failure (remote
// non-200) is returned as a TokenResult with status "error" and a nil error,
// so callers can tell the two apart.
type TokenClient interface {
	RequestToken(ctx context.Context, username, password, region, curriculum string) (*models.TokenResult, error)
	VerifyToken(ctx context.Context, clientToken, userToken string) (*models.TokenResult, error)
}
