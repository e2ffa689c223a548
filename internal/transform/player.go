// Package transform reshapes local and vendor records into the canonical
// output consumed by reporting and export. Transform functions are pure:
// derived fields are computed from the inputs (including an injected "now")
// and nothing is stored back.
package transform

import (
	"strings"
	"time"

	"github.com/twocngdagz/lush-sub001/internal/models"
)

const dateLayout = "2006-01-02"

type PlayerOutput struct {
	ID                    string                `json:"id"`
	ExternalID            string                `json:"external_id"`
	FirstName             string                `json:"first_name"`
	LastName              string                `json:"last_name"`
	MiddleInitial         string                `json:"middle_initial"`
	Birthday              *string               `json:"birthday"`
	Age                   *int                  `json:"age"`
	Gender                string                `json:"gender"`
	Rank                  *RankOutput           `json:"rank"`
	Identification        *IdentificationOutput `json:"identification"`
	Contact               ContactOutput         `json:"contact"`
	Address               *AddressOutput        `json:"address"`
	Excluded              bool                  `json:"excluded"`
	RegisteredOn          string                `json:"registered_on"`
	DaysSinceRegistration int                   `json:"days_since_registration"`
}

type RankOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
}

type IdentificationOutput struct {
	Type      string  `json:"type"`
	Number    string  `json:"number"`
	ExpiresOn *string `json:"expires_on"`
}

type ContactOutput struct {
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	EmailOptIn bool    `json:"email_opt_in"`
	PhoneOptIn bool    `json:"phone_opt_in"`
}

type AddressOutput struct {
	Line1   string `json:"line_1"`
	Line2   string `json:"line_2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Full    string `json:"full"`
}

// Player produces the canonical player shape. rank may be nil when the
// referenced rank no longer exists; the output then carries an explicit null
// rather than an omitted key.
func Player(p models.Player, rank *models.Rank, now time.Time) PlayerOutput {
	out := PlayerOutput{
		ID:            p.ID.String(),
		ExternalID:    p.ExternalID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		MiddleInitial: p.MiddleInitial,
		Gender:        p.Gender,
		Contact: ContactOutput{
			Email:      p.Email,
			Phone:      p.Phone,
			EmailOptIn: p.EmailOptIn,
			PhoneOptIn: p.PhoneOptIn,
		},
		Excluded:     p.Excluded,
		RegisteredOn: p.RegisteredAt.Format(dateLayout),
	}

	if p.Birthday != nil {
		b := p.Birthday.Format(dateLayout)
		out.Birthday = &b
		age := yearsBetween(*p.Birthday, now)
		out.Age = &age
	}

	if rank != nil {
		out.Rank = &RankOutput{
			ID:        rank.ID.String(),
			Name:      rank.Name,
			Threshold: rank.Threshold,
		}
	}

	if p.IDType != "" || p.IDNumber != "" {
		ident := &IdentificationOutput{Type: p.IDType, Number: p.IDNumber}
		if p.IDExpiresAt != nil {
			exp := p.IDExpiresAt.Format(dateLayout)
			ident.ExpiresOn = &exp
		}
		out.Identification = ident
	}

	full := JoinParts(p.Address, p.Address2, p.City, p.State, p.Zip, p.Country)
	if full != "" {
		out.Address = &AddressOutput{
			Line1:   p.Address,
			Line2:   p.Address2,
			City:    p.City,
			State:   p.State,
			Zip:     p.Zip,
			Country: p.Country,
			Full:    full,
		}
	}

	if !p.RegisteredAt.IsZero() {
		out.DaysSinceRegistration = int(now.Sub(p.RegisteredAt).Hours() / 24)
	}

	return out
}

// JoinParts builds a display string from address components, joining
// non-empty parts with ", " so empty tokens never produce double separators.
func JoinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	return years
}
