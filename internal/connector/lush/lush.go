// Package lush implements the origin connector against the Lush CMS REST
// API. Lush speaks JSON with PascalCase field names, split date/time fields
// on groups, and "0"/"1" string flags.
package lush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

// ID is the connector identifier bound to this provider.
const ID = "lush-cms-v1"

func init() {
	connector.Register(ID, func(client *http.Client) connector.Connector {
		return New(client)
	})
}

type Provider struct {
	client *http.Client
}

func New(client *http.Client) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client}
}

// do issues a request against the scope's base URL and decodes the JSON
// response into out. Transport and decode failures are wrapped as
// connection-kind errors so callers never see a raw transport error.
func (p *Provider) do(ctx context.Context, scope connector.Scope, op, method, path string, body, out interface{}) error {
	if scope.BaseURL == "" || scope.APIKey == "" {
		return connector.ConfigurationError("lush: account settings missing API URL or key")
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return connector.ConnectionError(op, 0, err)
		}
		reader = bytes.NewReader(b)
	}

	url := strings.TrimRight(scope.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return connector.ConnectionError(op, 0, err)
	}
	req.Header.Set("X-API-Key", scope.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return connector.ConnectionError(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return connector.NotFoundError(op, "lush: entity not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return connector.ConnectionError(op, resp.StatusCode, fmt.Errorf("lush: unexpected status %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return connector.ConnectionError(op, resp.StatusCode, fmt.Errorf("lush: malformed response: %w", err))
		}
	}
	return nil
}

type playerResponse struct {
	PlayerID  string         `json:"PlayerID"`
	FirstName string         `json:"FirstName"`
	LastName  string         `json:"LastName"`
	BirthDate connector.Date `json:"BirthDate"`
	Email     *string        `json:"Email"`
	Phone     *string        `json:"PhoneNumber"`
}

func (p *Provider) ValidatePlayer(ctx context.Context, scope connector.Scope) (*connector.PlayerValidation, error) {
	if scope.TestPlayerID == "" {
		return nil, connector.ConfigurationError("lush: account settings missing test player id")
	}

	var body playerResponse
	if err := p.do(ctx, scope, "validate_player", http.MethodGet, "/api/v1/players/"+scope.TestPlayerID, nil, &body); err != nil {
		return nil, err
	}
	if body.PlayerID == "" {
		return nil, connector.ValidationError("validate_player", "lush: response missing PlayerID")
	}

	return &connector.PlayerValidation{
		PlayerID:  body.PlayerID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Birthday:  body.BirthDate.Time,
		Email:     body.Email,
		Phone:     body.Phone,
	}, nil
}

type groupsResponse struct {
	Groups []struct {
		GroupID   string `json:"GroupID"`
		GroupName string `json:"GroupName"`
		StartDate string `json:"StartDate"`
		StartTime string `json:"StartTime"`
		EndDate   string `json:"EndDate"`
		EndTime   string `json:"EndTime"`
	} `json:"Groups"`
}

func (p *Provider) KioskGroups(ctx context.Context, scope connector.Scope) ([]connector.KioskGroup, error) {
	var body groupsResponse
	if err := p.do(ctx, scope, "kiosk_groups", http.MethodGet, "/api/v1/kiosk/groups", nil, &body); err != nil {
		return nil, err
	}

	groups := make([]connector.KioskGroup, 0, len(body.Groups))
	for _, g := range body.Groups {
		if g.GroupID == "" {
			// Skip records missing their identifier rather than failing the
			// whole listing.
			continue
		}
		starts, err := connector.CombineDateTime(g.StartDate, g.StartTime)
		if err != nil {
			return nil, connector.ValidationError("kiosk_groups", fmt.Sprintf("lush: group %s: %v", g.GroupID, err))
		}
		ends, err := connector.CombineDateTime(g.EndDate, g.EndTime)
		if err != nil {
			return nil, connector.ValidationError("kiosk_groups", fmt.Sprintf("lush: group %s: %v", g.GroupID, err))
		}
		groups = append(groups, connector.KioskGroup{
			ID:       g.GroupID,
			Name:     g.GroupName,
			StartsAt: starts,
			EndsAt:   ends,
		})
	}
	return groups, nil
}

func (p *Provider) EnrollPlayerInGroup(ctx context.Context, scope connector.Scope, playerID, groupID string) (bool, error) {
	req := map[string]string{"PlayerID": playerID}
	var body struct {
		Success         connector.Flag `json:"Success"`
		AlreadyEnrolled connector.Flag `json:"AlreadyEnrolled"`
	}
	if err := p.do(ctx, scope, "kiosk_group_player", http.MethodPost, "/api/v1/kiosk/groups/"+groupID+"/players", req, &body); err != nil {
		return false, err
	}
	// Already enrolled counts as success; enrollment is idempotent.
	return body.Success.Bool() || body.AlreadyEnrolled.Bool(), nil
}

type methodsResponse struct {
	Methods []struct {
		MethodID   string `json:"MethodID"`
		MethodName string `json:"MethodName"`
		MethodType string `json:"MethodType"`
	} `json:"Methods"`
}

func (p *Provider) KioskMethods(ctx context.Context, scope connector.Scope) ([]connector.KioskMethod, error) {
	var body methodsResponse
	if err := p.do(ctx, scope, "kiosk_methods", http.MethodGet, "/api/v1/kiosk/methods", nil, &body); err != nil {
		return nil, err
	}

	methods := make([]connector.KioskMethod, 0, len(body.Methods))
	for _, m := range body.Methods {
		methods = append(methods, connector.KioskMethod{
			ID:   m.MethodID,
			Name: m.MethodName,
			Type: m.MethodType,
		})
	}
	return methods, nil
}

func (p *Provider) InvokeMethod(ctx context.Context, scope connector.Scope, playerID string, method connector.KioskMethod) (int, error) {
	req := map[string]string{
		"PlayerID": playerID,
		"MethodID": method.ID,
	}
	var body struct {
		ResultCode int `json:"ResultCode"`
	}
	if err := p.do(ctx, scope, "kiosk_method_player", http.MethodPost, "/api/v1/kiosk/methods/invoke", req, &body); err != nil {
		return 0, err
	}
	return body.ResultCode, nil
}

type offersResponse struct {
	Offers []struct {
		OfferID     string         `json:"OfferID"`
		GUID        string         `json:"GUID"`
		OfferName   string         `json:"OfferName"`
		Description *string        `json:"Description"`
		Amount      float64        `json:"Amount"`
		StartDate   connector.Date `json:"StartDate"`
		EndDate     connector.Date `json:"EndDate"`
		IsExpired   connector.Flag `json:"IsExpired"`
		HasCriteria connector.Flag `json:"HasCriteria"`
		OfferType   string         `json:"OfferType"`
		Printable   connector.Flag `json:"Printable"`
	} `json:"Offers"`
}

func (p *Provider) PlayerOffers(ctx context.Context, scope connector.Scope, playerID string) ([]connector.KioskOffer, error) {
	var body offersResponse
	err := p.do(ctx, scope, "kiosk_offers", http.MethodGet, "/api/v1/players/"+playerID+"/offers", nil, &body)
	if err != nil {
		// A player with no offer record is an empty listing, not a failure.
		if connector.KindOf(err) == connector.KindNotFound {
			return []connector.KioskOffer{}, nil
		}
		return nil, err
	}

	offers := make([]connector.KioskOffer, 0, len(body.Offers))
	for _, o := range body.Offers {
		offers = append(offers, connector.KioskOffer{
			ID:          o.OfferID,
			GUID:        o.GUID,
			Name:        o.OfferName,
			Description: o.Description,
			Amount:      o.Amount,
			StartsAt:    o.StartDate.Time,
			EndsAt:      o.EndDate.Time,
			Expired:     o.IsExpired.Bool(),
			HasCriteria: o.HasCriteria.Bool(),
			OfferType:   o.OfferType,
			Printable:   o.Printable.Bool(),
		})
	}
	return offers, nil
}

func (p *Provider) RedeemOffer(ctx context.Context, scope connector.Scope, guid string) (int, error) {
	var body struct {
		ResultCode int `json:"ResultCode"`
	}
	if err := p.do(ctx, scope, "kiosk_offer_redeem", http.MethodPost, "/api/v1/offers/"+guid+"/redeem", nil, &body); err != nil {
		return 0, err
	}
	return body.ResultCode, nil
}

func (p *Provider) PlayerScore(ctx context.Context, scope connector.Scope, playerID string) (int, error) {
	var body struct {
		Score json.Number `json:"Score"`
	}
	if err := p.do(ctx, scope, "player_score", http.MethodGet, "/api/v1/players/"+playerID+"/score", nil, &body); err != nil {
		return 0, err
	}
	score, err := connector.ParseVendorInt(body.Score.String())
	if err != nil {
		return 0, connector.ValidationError("player_score", "lush: "+err.Error())
	}
	return score, nil
}

type propertiesResponse struct {
	Properties []struct {
		PropertyID string `json:"PropertyID"`
		Name       string `json:"Name"`
		TimeZone   string `json:"TimeZone"`
	} `json:"Properties"`
}

func (p *Provider) PropertyInfo(ctx context.Context, scope connector.Scope) (*connector.PropertyInfo, error) {
	var body propertiesResponse
	if err := p.do(ctx, scope, "property_info", http.MethodGet, "/api/v1/properties", nil, &body); err != nil {
		return nil, err
	}
	if len(body.Properties) == 0 {
		// No properties configured vendor-side; valid outcome.
		return nil, nil
	}

	// When a target property is scoped, prefer it over the first listing.
	chosen := body.Properties[0]
	if scope.PropertyID != "" {
		for _, prop := range body.Properties {
			if prop.PropertyID == scope.PropertyID {
				chosen = prop
				break
			}
		}
	}
	if chosen.PropertyID == "" {
		return nil, connector.ValidationError("property_info", "lush: property missing PropertyID")
	}

	return &connector.PropertyInfo{
		ExternalID: chosen.PropertyID,
		Name:       chosen.Name,
		Timezone:   chosen.TimeZone,
	}, nil
}
