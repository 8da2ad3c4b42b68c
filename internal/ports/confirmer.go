package ports

import (
	"context"

	"github.com/trailkit/regname/internal/domain"
)

// Confirmer presents the quoted cost to the user and blocks until they
// answer. Anything that is not an explicit affirmative counts as "no".
type Confirmer interface {
	ConfirmRegistration(ctx context.Context, req domain.RegistrationRequest, quote domain.PriceQuote) (bool, error)
}
