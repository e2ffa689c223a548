// Package mock is a null-object connector for environments with no real
// vendor requirement, such as redemption-only accounts. Every operation
// succeeds with a benign empty result.
package mock

import (
	"context"
	"net/http"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

// ID is the connector identifier bound to this provider.
const ID = "mock"

func init() {
	connector.Register(ID, func(client *http.Client) connector.Connector {
		return New()
	})
}

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) ValidatePlayer(ctx context.Context, scope connector.Scope) (*connector.PlayerValidation, error) {
	return &connector.PlayerValidation{
		PlayerID:  scope.TestPlayerID,
		FirstName: "Test",
		LastName:  "Player",
	}, nil
}

func (p *Provider) KioskGroups(ctx context.Context, scope connector.Scope) ([]connector.KioskGroup, error) {
	return []connector.KioskGroup{}, nil
}

func (p *Provider) EnrollPlayerInGroup(ctx context.Context, scope connector.Scope, playerID, groupID string) (bool, error) {
	return true, nil
}

func (p *Provider) KioskMethods(ctx context.Context, scope connector.Scope) ([]connector.KioskMethod, error) {
	return []connector.KioskMethod{}, nil
}

func (p *Provider) InvokeMethod(ctx context.Context, scope connector.Scope, playerID string, method connector.KioskMethod) (int, error) {
	return 0, nil
}

func (p *Provider) PlayerOffers(ctx context.Context, scope connector.Scope, playerID string) ([]connector.KioskOffer, error) {
	return []connector.KioskOffer{}, nil
}

func (p *Provider) RedeemOffer(ctx context.Context, scope connector.Scope, guid string) (int, error) {
	return 0, nil
}

func (p *Provider) PlayerScore(ctx context.Context, scope connector.Scope, playerID string) (int, error) {
	return 0, nil
}

func (p *Provider) PropertyInfo(ctx context.Context, scope connector.Scope) (*connector.PropertyInfo, error) {
	return nil, nil
}
