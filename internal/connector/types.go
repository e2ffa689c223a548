package connector

import "time"

// PlayerValidation is the identity returned by a credential/test-player
// check. Optional contact fields stay nil when the vendor omits them, which
// is distinct from the vendor sending an empty value.
type PlayerValidation struct {
	PlayerID  string
	FirstName string
	LastName  string
	Birthday  time.Time
	Email     *string
	Phone     *string
}

// KioskGroup is a vendor-side group/category definition available for kiosk
// enrollment.
type KioskGroup struct {
	ID       string
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

// KioskMethod is a redemption/award method the vendor exposes.
type KioskMethod struct {
	ID   string
	Name string
	Type string
}

// KioskOffer is a read-only reflection of a vendor offer; the vendor remains
// the source of truth.
type KioskOffer struct {
	ID          string
	GUID        string
	Name        string
	Description *string
	Amount      float64
	StartsAt    time.Time
	EndsAt      time.Time
	Expired     bool
	HasCriteria bool
	OfferType   string
	Printable   bool
}

// PropertyInfo is vendor property metadata used by the property sync.
type PropertyInfo struct {
	ExternalID string
	Name       string
	Timezone   string
}
