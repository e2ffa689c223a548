package connector

import "context"

// Connector is the capability contract every origin loyalty backend
// implements. All operations return typed value objects, never raw vendor
// payloads, so callers stay independent of vendor wire shape.
//
// Scope carries the per-account credentials and target property for each
// call; providers hold no per-account state after construction.
type Connector interface {
	// ValidatePlayer confirms the account's credentials and test player are
	// reachable and returns the player's identity fields.
	ValidatePlayer(ctx context.Context, scope Scope) (*PlayerValidation, error)

	// KioskGroups lists the group definitions the vendor exposes for kiosks.
	KioskGroups(ctx context.Context, scope Scope) ([]KioskGroup, error)

	// EnrollPlayerInGroup enrolls a player in a vendor-side group. Already
	// enrolled is reported as success, not an error.
	EnrollPlayerInGroup(ctx context.Context, scope Scope, playerID, groupID string) (bool, error)

	// KioskMethods lists the redemption/award methods available.
	KioskMethods(ctx context.Context, scope Scope) ([]KioskMethod, error)

	// InvokeMethod runs a kiosk method for a player and returns the
	// vendor-defined result code.
	InvokeMethod(ctx context.Context, scope Scope, playerID string, method KioskMethod) (int, error)

	// PlayerOffers lists the offers currently available to a player.
	PlayerOffers(ctx context.Context, scope Scope, playerID string) ([]KioskOffer, error)

	// RedeemOffer redeems an offer by its vendor guid and returns the
	// vendor-defined result code.
	RedeemOffer(ctx context.Context, scope Scope, guid string) (int, error)

	// PlayerScore returns the player's points balance.
	PlayerScore(ctx context.Context, scope Scope, playerID string) (int, error)

	// PropertyInfo returns the vendor's property metadata. A nil result with
	// a nil error means the vendor has no properties configured; callers must
	// treat that as a valid outcome.
	PropertyInfo(ctx context.Context, scope Scope) (*PropertyInfo, error)
}

// Scope parameterizes a single connector call with the account's vendor
// credentials and target property. It is threaded through every call rather
// than stored on the provider, so one shared instance serves all accounts.
type Scope struct {
	AccountID    uint
	PropertyID   string
	BaseURL      string
	APIKey       string
	TestPlayerID string
}
