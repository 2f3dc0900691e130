package presence

import (
	"log/slog"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
)

// Header names inspected during connection admission.
const (
	HeaderAuthorization = "Authorization"
	HeaderAPIKey        = "x-api-key"
)

// Gate inspects connect-time credentials and resolves the authenticated
// identity. It never closes connections itself: it reports every problem as
// an ERROR notification and lets the caller decide admission. An empty
// principal means the identity could not be established.
type Gate struct {
	log       *slog.Logger
	validator contract.IAuthValidator
	apiKey    string
}

func NewGate(log *slog.Logger, validator contract.IAuthValidator, apiKey string) *Gate {
	return &Gate{log: log, validator: validator, apiKey: apiKey}
}

// Check examines the connect headers. It returns the resolved principal and
// the ERROR notifications to report back to the session, in detection order.
// Both credential problems are reported when both are present.
func (g *Gate) Check(headers map[string]string) (string, []domain.Notification) {
	var errs []domain.Notification
	var principal string

	bearer, hasBearer := headers[HeaderAuthorization]
	if !hasBearer || bearer == "" {
		g.log.Warn("Connection attempt without bearer token")
		errs = append(errs, domain.ErrorNotification(errors.ErrMissingBearer.Error()))
	} else {
		identity, err := g.validator.ResolveIdentity(bearer)
		if err != nil {
			g.log.Warn("Identity resolution failed", "error", err)
			errs = append(errs, domain.ErrorNotification(err.Error()))
		} else {
			principal = identity
		}
	}

	if key, ok := headers[HeaderAPIKey]; !ok || key == "" {
		g.log.Warn("Connection attempt without api key", "user", principal)
		errs = append(errs, domain.ErrorNotification(errors.ErrMissingAPIKey.Error()))
	} else if g.apiKey != "" && key != g.apiKey {
		g.log.Warn("Connection attempt with wrong api key", "user", principal)
		errs = append(errs, domain.ErrorNotification(errors.ErrMissingAPIKey.Error()))
	}

	return principal, errs
}
