package transform

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/twocngdagz/lush-sub001/internal/models"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestJoinParts(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"123 Main St", "", "Reno", "NV", "89501", "US"}, "123 Main St, Reno, NV, 89501, US"},
		{[]string{"", "", ""}, ""},
		{[]string{"  padded  ", "City"}, "padded, City"},
		{[]string{"only"}, "only"},
	}
	for _, tc := range cases {
		if got := JoinParts(tc.parts...); got != tc.want {
			t.Errorf("JoinParts(%v) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

func TestPlayerFull(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	rankID := uuid.New()
	p := models.Player{
		ID:            uuid.New(),
		ExternalID:    "4477",
		FirstName:     "Pat",
		LastName:      "Doe",
		MiddleInitial: "J",
		Birthday:      timePtr(time.Date(1985, 6, 20, 0, 0, 0, 0, time.UTC)),
		Gender:        "F",
		RankID:        &rankID,
		IDType:        "drivers_license",
		IDNumber:      "D1234567",
		IDExpiresAt:   timePtr(time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)),
		Email:         strPtr("pat@example.com"),
		EmailOptIn:    true,
		Address:       "123 Main St",
		City:          "Reno",
		State:         "NV",
		Zip:           "89501",
		Country:       "US",
		RegisteredAt:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	rank := &models.Rank{ID: rankID, Name: "Gold", Threshold: 5000}

	out := Player(p, rank, now)

	if out.ExternalID != "4477" || out.FirstName != "Pat" {
		t.Errorf("identity fields wrong: %+v", out)
	}
	if out.Birthday == nil || *out.Birthday != "1985-06-20" {
		t.Errorf("birthday = %v, want 1985-06-20", out.Birthday)
	}
	if out.Age == nil || *out.Age != 38 {
		t.Errorf("age = %v, want 38 (birthday not yet reached this year)", out.Age)
	}
	if out.Rank == nil || out.Rank.Name != "Gold" || out.Rank.Threshold != 5000 {
		t.Errorf("rank = %+v", out.Rank)
	}
	if out.Identification == nil || out.Identification.Number != "D1234567" {
		t.Errorf("identification = %+v", out.Identification)
	}
	if out.Identification.ExpiresOn == nil || *out.Identification.ExpiresOn != "2027-01-31" {
		t.Errorf("expires_on = %v", out.Identification.ExpiresOn)
	}
	if out.Contact.Email == nil || *out.Contact.Email != "pat@example.com" || !out.Contact.EmailOptIn {
		t.Errorf("contact = %+v", out.Contact)
	}
	if out.Address == nil {
		t.Fatal("address block missing")
	}
	if out.Address.Full != "123 Main St, Reno, NV, 89501, US" {
		t.Errorf("full address = %q", out.Address.Full)
	}
	if out.RegisteredOn != "2024-03-05" {
		t.Errorf("registered_on = %q", out.RegisteredOn)
	}
	if out.DaysSinceRegistration != 10 {
		t.Errorf("days_since_registration = %d, want 10", out.DaysSinceRegistration)
	}
}

func TestPlayerAgeOnAnniversary(t *testing.T) {
	birthday := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	p := models.Player{ID: uuid.New(), Birthday: &birthday, RegisteredAt: now}

	out := Player(p, nil, now)
	if out.Age == nil || *out.Age != 34 {
		t.Errorf("age on the birthday itself = %v, want 34", out.Age)
	}
}

func TestPlayerEmptyOptionalBlocks(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	p := models.Player{
		ID:           uuid.New(),
		ExternalID:   "1",
		FirstName:    "Min",
		LastName:     "Imal",
		RegisteredAt: now,
	}

	out := Player(p, nil, now)
	if out.Birthday != nil || out.Age != nil {
		t.Errorf("birthday/age should be nil: %v %v", out.Birthday, out.Age)
	}
	if out.Rank != nil {
		t.Errorf("rank should be nil: %+v", out.Rank)
	}
	if out.Identification != nil {
		t.Errorf("identification should be nil: %+v", out.Identification)
	}
	if out.Address != nil {
		t.Errorf("address should be nil when all components empty: %+v", out.Address)
	}
	if out.DaysSinceRegistration != 0 {
		t.Errorf("days_since_registration = %d, want 0", out.DaysSinceRegistration)
	}
}
