package dto

// Requests for connector-backed kiosk operations.

type EnrollGroupRequest struct {
	PlayerID string `json:"player_id"`
	GroupID  string `json:"group_id"`
}

type InvokeMethodRequest struct {
	PlayerID string `json:"player_id"`
	MethodID string `json:"method_id"`
}

type RedeemOfferRequest struct {
	GUID string `json:"guid"`
}

type ResultCodeResponse struct {
	ResultCode int `json:"result_code"`
}

type SettingsRequest struct {
	APIURL       string `json:"api_url"`
	APIKey       string `json:"api_key"`
	TestPlayerID string `json:"test_player_id"`
}
