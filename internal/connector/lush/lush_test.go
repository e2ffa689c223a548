package lush

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

func testScope(baseURL string) connector.Scope {
	return connector.Scope{
		AccountID:    1,
		BaseURL:      baseURL,
		APIKey:       "test-key",
		TestPlayerID: "4477",
	}
}

func newTestProvider(handler http.HandlerFunc) (*Provider, connector.Scope, func()) {
	srv := httptest.NewServer(handler)
	return New(srv.Client()), testScope(srv.URL), srv.Close
}

func TestValidatePlayer(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/players/4477" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"PlayerID": "4477",
			"FirstName": "Pat",
			"LastName": "Doe",
			"BirthDate": "1985-06-20",
			"Email": "pat@example.com",
			"PhoneNumber": null
		}`))
	})
	defer closeSrv()

	got, err := p.ValidatePlayer(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PlayerID != "4477" || got.FirstName != "Pat" || got.LastName != "Doe" {
		t.Errorf("unexpected player: %+v", got)
	}
	if got.Birthday.Year() != 1985 || got.Birthday.Month() != 6 {
		t.Errorf("birthday not parsed: %v", got.Birthday)
	}
	if got.Email == nil || *got.Email != "pat@example.com" {
		t.Errorf("email = %v", got.Email)
	}
	if got.Phone != nil {
		t.Errorf("phone = %v, want nil", got.Phone)
	}
}

func TestValidatePlayerMissingID(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"FirstName": "Pat"}`))
	})
	defer closeSrv()

	_, err := p.ValidatePlayer(context.Background(), scope)
	if kind := connector.KindOf(err); kind != connector.KindValidation {
		t.Errorf("error kind = %v, want %v (err: %v)", kind, connector.KindValidation, err)
	}
}

func TestValidatePlayerRequiresSettings(t *testing.T) {
	p := New(http.DefaultClient)

	_, err := p.ValidatePlayer(context.Background(), connector.Scope{TestPlayerID: "4477"})
	if kind := connector.KindOf(err); kind != connector.KindConfiguration {
		t.Errorf("missing base URL: kind = %v, want %v", kind, connector.KindConfiguration)
	}

	_, err = p.ValidatePlayer(context.Background(), connector.Scope{BaseURL: "http://origin", APIKey: "k"})
	if kind := connector.KindOf(err); kind != connector.KindConfiguration {
		t.Errorf("missing test player: kind = %v, want %v", kind, connector.KindConfiguration)
	}
}

func TestKioskGroupsCombinesSplitDates(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Groups": [
			{"GroupID": "10", "GroupName": "VIP", "StartDate": "3/15/2024", "StartTime": "09:00", "EndDate": "3/16/2024", "EndTime": "17:30"},
			{"GroupID": "", "GroupName": "broken"},
			{"GroupID": "11", "GroupName": "Open", "StartDate": "", "EndDate": ""}
		]}`))
	})
	defer closeSrv()

	groups, err := p.KioskGroups(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (record without id skipped)", len(groups))
	}
	g := groups[0]
	if g.ID != "10" || g.Name != "VIP" {
		t.Errorf("unexpected group: %+v", g)
	}
	if g.StartsAt.Hour() != 9 || g.StartsAt.Day() != 15 {
		t.Errorf("start not combined: %v", g.StartsAt)
	}
	if g.EndsAt.Hour() != 17 || g.EndsAt.Minute() != 30 {
		t.Errorf("end not combined: %v", g.EndsAt)
	}
	if !groups[1].StartsAt.IsZero() {
		t.Errorf("empty dates should stay zero, got %v", groups[1].StartsAt)
	}
}

func TestEnrollPlayerInGroup(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"enrolled", `{"Success": "1", "AlreadyEnrolled": "0"}`, true},
		{"already enrolled", `{"Success": "0", "AlreadyEnrolled": "1"}`, true},
		{"refused", `{"Success": "0", "AlreadyEnrolled": "0"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if r.URL.Path != "/api/v1/kiosk/groups/10/players" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tc.body))
			})
			defer closeSrv()

			got, err := p.EnrollPlayerInGroup(context.Background(), scope, "4477", "10")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("enrolled = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlayerOffersNotFoundIsEmpty(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer closeSrv()

	offers, err := p.PlayerOffers(context.Background(), scope, "4477")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("got %d offers, want 0", len(offers))
	}
}

func TestPlayerOffers(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Offers": [{
			"OfferID": "55",
			"GUID": "abc-123",
			"OfferName": "Free Play",
			"Description": "Ten dollars free play",
			"Amount": 10.0,
			"StartDate": "2024-03-01",
			"EndDate": "2024-03-31",
			"IsExpired": "0",
			"HasCriteria": "1",
			"OfferType": "freeplay",
			"Printable": "0"
		}]}`))
	})
	defer closeSrv()

	offers, err := p.PlayerOffers(context.Background(), scope, "4477")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("got %d offers, want 1", len(offers))
	}
	o := offers[0]
	if o.ID != "55" || o.GUID != "abc-123" || o.Name != "Free Play" {
		t.Errorf("unexpected offer: %+v", o)
	}
	if o.Expired || !o.HasCriteria || o.Printable {
		t.Errorf("flags not coerced: %+v", o)
	}
	if o.StartsAt.Day() != 1 || o.EndsAt.Day() != 31 {
		t.Errorf("dates not parsed: %v .. %v", o.StartsAt, o.EndsAt)
	}
}

func TestPlayerScoreHandlesQuotedNumber(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Score": "12500"}`))
	})
	defer closeSrv()

	score, err := p.PlayerScore(context.Background(), scope, "4477")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 12500 {
		t.Errorf("score = %d, want 12500", score)
	}
}

func TestPropertyInfo(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Properties": [
			{"PropertyID": "P1", "Name": "North Tower", "TimeZone": "America/New_York"},
			{"PropertyID": "P2", "Name": "South Tower", "TimeZone": "America/Chicago"}
		]}`))
	})
	defer closeSrv()

	info, err := p.PropertyInfo(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ExternalID != "P1" || info.Name != "North Tower" || info.Timezone != "America/New_York" {
		t.Errorf("unexpected property: %+v", info)
	}

	scope.PropertyID = "P2"
	info, err = p.PropertyInfo(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ExternalID != "P2" {
		t.Errorf("scoped property = %q, want P2", info.ExternalID)
	}
}

func TestPropertyInfoEmptyListing(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Properties": []}`))
	})
	defer closeSrv()

	info, err := p.PropertyInfo(context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("info = %+v, want nil", info)
	}
}

func TestServerErrorIsConnectionKind(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer closeSrv()

	_, err := p.KioskMethods(context.Background(), scope)
	if kind := connector.KindOf(err); kind != connector.KindConnection {
		t.Errorf("error kind = %v, want %v (err: %v)", kind, connector.KindConnection, err)
	}
}

func TestUnreachableVendorIsConnectionKind(t *testing.T) {
	p := New(http.DefaultClient)
	scope := testScope("http://127.0.0.1:1")

	_, err := p.KioskGroups(context.Background(), scope)
	if kind := connector.KindOf(err); kind != connector.KindConnection {
		t.Errorf("error kind = %v, want %v (err: %v)", kind, connector.KindConnection, err)
	}
}

func TestMalformedResponseIsConnectionKind(t *testing.T) {
	p, scope, closeSrv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	defer closeSrv()

	_, err := p.KioskMethods(context.Background(), scope)
	if kind := connector.KindOf(err); kind != connector.KindConnection {
		t.Errorf("error kind = %v, want %v (err: %v)", kind, connector.KindConnection, err)
	}
}
