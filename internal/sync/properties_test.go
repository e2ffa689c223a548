package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

// fakeStore is an in-memory Store that counts writes so tests can assert
// idempotence.
type fakeStore struct {
	settings   map[uint]*models.AccountConnectorSettings
	properties []*models.Property
	users      []*models.User
	kiosks     []*models.Kiosk

	creates int
	updates int
	assigns int
}

func newFakeStore() *fakeStore {
	return &fakeStore{settings: map[uint]*models.AccountConnectorSettings{}}
}

func (s *fakeStore) Accounts() ([]models.Account, error) {
	return []models.Account{{ID: 1, Name: "Test", Active: true}}, nil
}

func (s *fakeStore) AccountSettings(accountID uint) (*models.AccountConnectorSettings, error) {
	return s.settings[accountID], nil
}

func (s *fakeStore) SaveAccountSettings(settings *models.AccountConnectorSettings) error {
	s.settings[settings.AccountID] = settings
	return nil
}

func (s *fakeStore) FindProperty(accountID uint, externalID string) (*models.Property, error) {
	for _, p := range s.properties {
		if p.AccountID == accountID && p.ExternalID == externalID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CreateProperty(property *models.Property) error {
	property.ID = uuid.New()
	s.properties = append(s.properties, property)
	s.creates++
	return nil
}

func (s *fakeStore) UpdateProperty(property *models.Property) error {
	s.updates++
	return nil
}

func (s *fakeStore) FirstProperty(accountID uint) (*models.Property, error) {
	for _, p := range s.properties {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UsersWithoutProperty(accountID uint) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if u.AccountID == accountID && u.PropertyID == nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeStore) AssignUserProperty(userID, propertyID uuid.UUID) error {
	for _, u := range s.users {
		if u.ID == userID {
			id := propertyID
			u.PropertyID = &id
			s.assigns++
			return nil
		}
	}
	return errors.New("user not found")
}

func (s *fakeStore) KiosksWithoutProperty(accountID uint) ([]models.Kiosk, error) {
	var out []models.Kiosk
	for _, k := range s.kiosks {
		if k.AccountID == accountID && k.PropertyID == nil {
			out = append(out, *k)
		}
	}
	return out, nil
}

func (s *fakeStore) AssignKioskProperty(kioskID, propertyID uuid.UUID) error {
	for _, k := range s.kiosks {
		if k.ID == kioskID {
			id := propertyID
			k.PropertyID = &id
			s.assigns++
			return nil
		}
	}
	return errors.New("kiosk not found")
}

// fakeConnector returns canned property info and a canned test player.
type fakeConnector struct {
	info    *connector.PropertyInfo
	infoErr error
	player  *connector.PlayerValidation
}

func (c *fakeConnector) ValidatePlayer(ctx context.Context, scope connector.Scope) (*connector.PlayerValidation, error) {
	if c.player == nil {
		return nil, connector.NotFoundError("player_lookup", "no such player")
	}
	return c.player, nil
}

func (c *fakeConnector) KioskGroups(ctx context.Context, scope connector.Scope) ([]connector.KioskGroup, error) {
	return nil, nil
}

func (c *fakeConnector) EnrollPlayerInGroup(ctx context.Context, scope connector.Scope, playerID, groupID string) (bool, error) {
	return false, nil
}

func (c *fakeConnector) KioskMethods(ctx context.Context, scope connector.Scope) ([]connector.KioskMethod, error) {
	return nil, nil
}

func (c *fakeConnector) InvokeMethod(ctx context.Context, scope connector.Scope, playerID string, method connector.KioskMethod) (int, error) {
	return 0, nil
}

func (c *fakeConnector) PlayerOffers(ctx context.Context, scope connector.Scope, playerID string) ([]connector.KioskOffer, error) {
	return nil, nil
}

func (c *fakeConnector) RedeemOffer(ctx context.Context, scope connector.Scope, guid string) (int, error) {
	return 0, nil
}

func (c *fakeConnector) PlayerScore(ctx context.Context, scope connector.Scope, playerID string) (int, error) {
	return 0, nil
}

func (c *fakeConnector) PropertyInfo(ctx context.Context, scope connector.Scope) (*connector.PropertyInfo, error) {
	return c.info, c.infoErr
}

func settingsFixture(accountID uint) *models.AccountConnectorSettings {
	return &models.AccountConnectorSettings{
		AccountID:    accountID,
		APIURL:       "http://origin.test",
		APIKey:       "key",
		TestPlayerID: "4477",
	}
}

func noPrompt(t *testing.T) Prompter {
	return PrompterFunc(func(label string) (string, error) {
		t.Fatalf("unexpected prompt for %q", label)
		return "", nil
	})
}

func TestSyncPropertiesCreatesProperty(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}
	p, _ := store.FindProperty(1, "P1")
	if p == nil || p.Name != "North Tower" || p.Timezone != "America/New_York" {
		t.Errorf("property = %+v", p)
	}
}

func TestSyncPropertiesIdempotent(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if store.creates != 1 || store.updates != 0 || store.assigns != 0 {
		t.Errorf("second run wrote: creates=%d updates=%d assigns=%d, want 1/0/0",
			store.creates, store.updates, store.assigns)
	}
}

func TestSyncPropertiesKeepsValidLocalTimezone(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	store.properties = append(store.properties, &models.Property{
		ID: uuid.New(), AccountID: 1, ExternalID: "P1",
		Name: "North Tower", Timezone: "America/Chicago",
	})
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.properties[0].Timezone != "America/Chicago" {
		t.Errorf("valid local timezone overwritten: %q", store.properties[0].Timezone)
	}
	if store.updates != 0 {
		t.Errorf("updates = %d, want 0 for unchanged record", store.updates)
	}
}

func TestSyncPropertiesReplacesInvalidTimezone(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	store.properties = append(store.properties, &models.Property{
		ID: uuid.New(), AccountID: 1, ExternalID: "P1",
		Name: "North Tower", Timezone: "invalid-zone",
	})
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.properties[0].Timezone != "America/New_York" {
		t.Errorf("invalid timezone not replaced: %q", store.properties[0].Timezone)
	}
	if store.updates != 1 {
		t.Errorf("updates = %d, want 1", store.updates)
	}
}

func TestSyncPropertiesAssignsDefaults(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	assigned := uuid.New()
	store.users = append(store.users,
		&models.User{ID: uuid.New(), AccountID: 1},
		&models.User{ID: uuid.New(), AccountID: 1, PropertyID: &assigned},
	)
	store.kiosks = append(store.kiosks, &models.Kiosk{ID: uuid.New(), AccountID: 1})
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.assigns != 2 {
		t.Errorf("assigns = %d, want 2 (one user, one kiosk)", store.assigns)
	}
	if store.users[0].PropertyID == nil {
		t.Error("unassigned user not given default property")
	}
	if *store.users[1].PropertyID != assigned {
		t.Error("already-assigned user was touched")
	}
	if store.kiosks[0].PropertyID == nil {
		t.Error("unassigned kiosk not given default property")
	}
}

func TestSyncPropertiesVendorFailureStillAssignsDefaults(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	existing := &models.Property{ID: uuid.New(), AccountID: 1, ExternalID: "P1", Name: "North Tower"}
	store.properties = append(store.properties, existing)
	store.users = append(store.users, &models.User{ID: uuid.New(), AccountID: 1})
	conn := &fakeConnector{infoErr: connector.ConnectionError("property_info", 502, errors.New("vendor down"))}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("vendor failure should not fail the command: %v", err)
	}
	if store.users[0].PropertyID == nil || *store.users[0].PropertyID != existing.ID {
		t.Error("default assignment skipped after vendor failure")
	}
}

func TestSyncPropertiesNoVendorPropertiesNoInvention(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	conn := &fakeConnector{info: nil}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.creates != 0 {
		t.Errorf("creates = %d, want 0 when vendor has no properties", store.creates)
	}
}

func TestSyncPropertiesPromptsForMissingSettings(t *testing.T) {
	store := newFakeStore()
	conn := &fakeConnector{info: &connector.PropertyInfo{
		ExternalID: "P1", Name: "North Tower", Timezone: "America/New_York",
	}}
	answers := map[string]string{
		"Origin API URL": "http://origin.test",
		"Origin API key": "prompted-key",
		"Test player id": "4477",
	}
	prompt := PrompterFunc(func(label string) (string, error) {
		answer, ok := answers[label]
		if !ok {
			t.Fatalf("unexpected prompt %q", label)
		}
		return answer, nil
	})
	s := NewSyncer(store, conn, prompt)

	if err := s.SyncProperties(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved := store.settings[1]
	if saved == nil {
		t.Fatal("settings not saved")
	}
	if saved.APIKey != "prompted-key" || saved.APIURL != "http://origin.test" || saved.TestPlayerID != "4477" {
		t.Errorf("settings = %+v", saved)
	}
}

func TestSyncRealWinRecordsVerification(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	conn := &fakeConnector{player: &connector.PlayerValidation{
		PlayerID: "4477", FirstName: "Pat", LastName: "Doe",
	}}
	s := NewSyncer(store, conn, noPrompt(t))

	if err := s.SyncRealWin(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved := store.settings[1]
	if saved.Extra["verified_player_id"] != "4477" {
		t.Errorf("verified_player_id = %v", saved.Extra["verified_player_id"])
	}
	if saved.Extra["last_verified_at"] == nil {
		t.Error("last_verified_at not recorded")
	}
}

func TestSyncRealWinFailsOnBadTestPlayer(t *testing.T) {
	store := newFakeStore()
	store.settings[1] = settingsFixture(1)
	s := NewSyncer(store, &fakeConnector{}, noPrompt(t))

	err := s.SyncRealWin(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error when the test player does not exist")
	}
	if kind := connector.KindOf(err); kind != connector.KindNotFound {
		t.Errorf("error kind = %v, want %v", kind, connector.KindNotFound)
	}
	if store.settings[1].Extra != nil {
		t.Errorf("verification recorded despite failure: %v", store.settings[1].Extra)
	}
}
