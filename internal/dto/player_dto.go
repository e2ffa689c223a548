package dto

// PlayerRequest is the admin form payload for creating or updating a player.
type PlayerRequest struct {
	ExternalID    string  `json:"external_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	MiddleInitial string  `json:"middle_initial"`
	Birthday      string  `json:"birthday"`
	Gender        string  `json:"gender"`
	RankID        string  `json:"rank_id"`
	IDType        string  `json:"id_type"`
	IDNumber      string  `json:"id_number"`
	IDExpiresAt   string  `json:"id_expires_at"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	EmailOptIn    bool    `json:"email_opt_in"`
	PhoneOptIn    bool    `json:"phone_opt_in"`
	Address       string  `json:"address"`
	Address2      string  `json:"address_2"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	Country       string  `json:"country"`
	Excluded      bool    `json:"excluded"`
}

type RankRequest struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
}

type GroupRequest struct {
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

type GroupMemberRequest struct {
	PlayerID string `json:"player_id"`
}
