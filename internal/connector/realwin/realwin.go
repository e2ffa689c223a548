// Package realwin implements the origin connector against the RealWin
// solution. RealWin exposes a single service endpoint dispatched by an "op"
// query parameter and answers snake_case JSON with numeric flags, so its
// parsing path is entirely separate from the Lush provider's.
package realwin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

// ID is the connector identifier bound to this provider.
const ID = "realwin-v1"

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

// call dispatches one RealWin service operation. Every response carries a
// numeric "status" field; non-zero status with a "message" is a vendor-side
// rejection.
func (p *Provider) call(ctx context.Context, scope connector.Scope, op string, params url.Values, out interface{}) error {
	if scope.BaseURL == "" || scope.APIKey == "" {
		return connector.ConfigurationError("realwin: account settings missing API URL or key")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("op", op)
	params.Set("apikey", scope.APIKey)
	if scope.PropertyID != "" {
		params.Set("site", scope.PropertyID)
	}

	endpoint := strings.TrimRight(scope.BaseURL, "/") + "/rwservice?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return connector.ConnectionError(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return connector.ConnectionError(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return connector.ConnectionError(op, resp.StatusCode, fmt.Errorf("realwin: unexpected status %d", resp.StatusCode))
	}

	var envelope struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return connector.ConnectionError(op, resp.StatusCode, fmt.Errorf("realwin: malformed response: %w", err))
	}
	if envelope.Status != 0 {
		if envelope.Status == 404 {
			return connector.NotFoundError(op, "realwin: "+envelope.Message)
		}
		return connector.ConnectionError(op, envelope.Status, fmt.Errorf("realwin: %s", envelope.Message))
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return connector.ConnectionError(op, resp.StatusCode, fmt.Errorf("realwin: malformed data: %w", err))
		}
	}
	return nil
}

type rwPlayer struct {
	PlayerNo  string         `json:"player_no"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	DOB       connector.Date `json:"dob"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
}

func (p *Provider) ValidatePlayer(ctx context.Context, scope connector.Scope) (*connector.PlayerValidation, error) {
	if scope.TestPlayerID == "" {
		return nil, connector.ConfigurationError("realwin: account settings missing test player id")
	}

	params := url.Values{"player": {scope.TestPlayerID}}
	var body rwPlayer
	if err := p.call(ctx, scope, "player_lookup", params, &body); err != nil {
		return nil, err
	}
	if body.PlayerNo == "" {
		return nil, connector.ValidationError("player_lookup", "realwin: response missing player_no")
	}

	return &connector.PlayerValidation{
		PlayerID:  body.PlayerNo,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Birthday:  body.DOB.Time,
		Email:     body.Email,
		Phone:     body.Phone,
	}, nil
}

func (p *Provider) KioskGroups(ctx context.Context, scope connector.Scope) ([]connector.KioskGroup, error) {
	var body []struct {
		GroupNo string         `json:"group_no"`
		Name    string         `json:"name"`
		Begin   connector.Date `json:"begin_date"`
		End     connector.Date `json:"end_date"`
	}
	if err := p.call(ctx, scope, "group_list", nil, &body); err != nil {
		return nil, err
	}

	groups := make([]connector.KioskGroup, 0, len(body))
	for _, g := range body {
		if g.GroupNo == "" {
			continue
		}
		groups = append(groups, connector.KioskGroup{
			ID:       g.GroupNo,
			Name:     g.Name,
			StartsAt: g.Begin.Time,
			EndsAt:   g.End.Time,
		})
	}
	return groups, nil
}

func (p *Provider) EnrollPlayerInGroup(ctx context.Context, scope connector.Scope, playerID, groupID string) (bool, error) {
	params := url.Values{"player": {playerID}, "group": {groupID}}
	var body struct {
		Enrolled connector.Flag `json:"enrolled"`
	}
	err := p.call(ctx, scope, "group_add", params, &body)
	if err != nil {
		// RealWin reports duplicate membership as status 409; the contract
		// treats re-enrollment as success.
		var ce *connector.Error
		if errors.As(err, &ce) && ce.Status == 409 {
			return true, nil
		}
		return false, err
	}
	return body.Enrolled.Bool(), nil
}

func (p *Provider) KioskMethods(ctx context.Context, scope connector.Scope) ([]connector.KioskMethod, error) {
	var body []struct {
		MethodNo string `json:"method_no"`
		Name     string `json:"name"`
		Kind     string `json:"kind"`
	}
	if err := p.call(ctx, scope, "method_list", nil, &body); err != nil {
		return nil, err
	}

	methods := make([]connector.KioskMethod, 0, len(body))
	for _, m := range body {
		methods = append(methods, connector.KioskMethod{ID: m.MethodNo, Name: m.Name, Type: m.Kind})
	}
	return methods, nil
}

func (p *Provider) InvokeMethod(ctx context.Context, scope connector.Scope, playerID string, method connector.KioskMethod) (int, error) {
	params := url.Values{"player": {playerID}, "method": {method.ID}}
	var body struct {
		Result json.Number `json:"result"`
	}
	if err := p.call(ctx, scope, "method_exec", params, &body); err != nil {
		return 0, err
	}
	code, err := connector.ParseVendorInt(body.Result.String())
	if err != nil {
		return 0, connector.ValidationError("method_exec", "realwin: "+err.Error())
	}
	return code, nil
}

func (p *Provider) PlayerOffers(ctx context.Context, scope connector.Scope, playerID string) ([]connector.KioskOffer, error) {
	params := url.Values{"player": {playerID}}
	var body []struct {
		OfferNo     string         `json:"offer_no"`
		GUID        string         `json:"guid"`
		Name        string         `json:"name"`
		Description *string        `json:"description"`
		Amount      float64        `json:"amount"`
		Begin       connector.Date `json:"begin_date"`
		End         connector.Date `json:"end_date"`
		Expired     connector.Flag `json:"expired"`
		Criteria    connector.Flag `json:"has_criteria"`
		Kind        string         `json:"kind"`
		Printable   connector.Flag `json:"printable"`
	}
	if err := p.call(ctx, scope, "offer_list", params, &body); err != nil {
		if connector.KindOf(err) == connector.KindNotFound {
			return []connector.KioskOffer{}, nil
		}
		return nil, err
	}

	offers := make([]connector.KioskOffer, 0, len(body))
	for _, o := range body {
		offers = append(offers, connector.KioskOffer{
			ID:          o.OfferNo,
			GUID:        o.GUID,
			Name:        o.Name,
			Description: o.Description,
			Amount:      o.Amount,
			StartsAt:    o.Begin.Time,
			EndsAt:      o.End.Time,
			Expired:     o.Expired.Bool(),
			HasCriteria: o.Criteria.Bool(),
			OfferType:   o.Kind,
			Printable:   o.Printable.Bool(),
		})
	}
	return offers, nil
}

func (p *Provider) RedeemOffer(ctx context.Context, scope connector.Scope, guid string) (int, error) {
	params := url.Values{"guid": {guid}}
	var body struct {
		Result json.Number `json:"result"`
	}
	if err := p.call(ctx, scope, "offer_redeem", params, &body); err != nil {
		return 0, err
	}
	code, err := connector.ParseVendorInt(body.Result.String())
	if err != nil {
		return 0, connector.ValidationError("offer_redeem", "realwin: "+err.Error())
	}
	return code, nil
}

func (p *Provider) PlayerScore(ctx context.Context, scope connector.Scope, playerID string) (int, error) {
	params := url.Values{"player": {playerID}}
	var body struct {
		Points json.Number `json:"points"`
	}
	if err := p.call(ctx, scope, "player_points", params, &body); err != nil {
		return 0, err
	}
	points, err := connector.ParseVendorInt(body.Points.String())
	if err != nil {
		return 0, connector.ValidationError("player_points", "realwin: "+err.Error())
	}
	return points, nil
}

func (p *Provider) PropertyInfo(ctx context.Context, scope connector.Scope) (*connector.PropertyInfo, error) {
	var body []struct {
		SiteNo   string `json:"site_no"`
		Name     string `json:"name"`
		Timezone string `json:"timezone"`
	}
	if err := p.call(ctx, scope, "site_info", nil, &body); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	chosen := body[0]
	if scope.PropertyID != "" {
		for _, site := range body {
			if site.SiteNo == scope.PropertyID {
				chosen = site
				break
			}
		}
	}
	if chosen.SiteNo == "" {
		return nil, connector.ValidationError("site_info", "realwin: site missing site_no")
	}

	return &connector.PropertyInfo{
		ExternalID: chosen.SiteNo,
		Name:       chosen.Name,
		Timezone:   chosen.Timezone,
	}, nil
}
