package transform

import "github.com/twocngdagz/lush-sub001/internal/connector"

type OfferOutput struct {
	ID          string  `json:"id"`
	GUID        string  `json:"guid"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount"`
	StartsOn    *string `json:"starts_on"`
	EndsOn      *string `json:"ends_on"`
	Expired     bool    `json:"expired"`
	HasCriteria bool    `json:"has_criteria"`
	OfferType   string  `json:"offer_type"`
	Printable   bool    `json:"printable"`
}

// Offer produces the canonical offer shape from a connector DTO. Zero vendor
// dates become explicit nulls.
func Offer(o connector.KioskOffer) OfferOutput {
	out := OfferOutput{
		ID:          o.ID,
		GUID:        o.GUID,
		Name:        o.Name,
		Description: o.Description,
		Amount:      o.Amount,
		Expired:     o.Expired,
		HasCriteria: o.HasCriteria,
		OfferType:   o.OfferType,
		Printable:   o.Printable,
	}
	if !o.StartsAt.IsZero() {
		s := o.StartsAt.Format(dateLayout)
		out.StartsOn = &s
	}
	if !o.EndsAt.IsZero() {
		e := o.EndsAt.Format(dateLayout)
		out.EndsOn = &e
	}
	return out
}

// Offers maps a vendor offer listing.
func Offers(offers []connector.KioskOffer) []OfferOutput {
	out := make([]OfferOutput, 0, len(offers))
	for _, o := range offers {
		out = append(out, Offer(o))
	}
	return out
}
