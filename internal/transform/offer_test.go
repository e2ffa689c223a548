package transform

import (
	"testing"
	"time"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

func TestOffer(t *testing.T) {
	o := connector.KioskOffer{
		ID:          "55",
		GUID:        "abc-123",
		Name:        "Free Play",
		Description: strPtr("Ten dollars free play"),
		Amount:      10,
		StartsAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		HasCriteria: true,
		OfferType:   "freeplay",
	}

	out := Offer(o)
	if out.ID != "55" || out.GUID != "abc-123" || out.Name != "Free Play" {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.StartsOn == nil || *out.StartsOn != "2024-03-01" {
		t.Errorf("starts_on = %v", out.StartsOn)
	}
	if out.EndsOn == nil || *out.EndsOn != "2024-03-31" {
		t.Errorf("ends_on = %v", out.EndsOn)
	}
	if !out.HasCriteria || out.Expired || out.Printable {
		t.Errorf("flags wrong: %+v", out)
	}
}

func TestOfferZeroDatesAreNull(t *testing.T) {
	out := Offer(connector.KioskOffer{ID: "1", Name: "Open Ended"})
	if out.StartsOn != nil || out.EndsOn != nil {
		t.Errorf("zero dates should be nil: %v %v", out.StartsOn, out.EndsOn)
	}
}

func TestOffersPreservesOrderAndEmpty(t *testing.T) {
	out := Offers(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("Offers(nil) = %v, want empty non-nil slice", out)
	}

	out = Offers([]connector.KioskOffer{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Errorf("order not preserved: %+v", out)
	}
}
