package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/models"
	"github.com/twocngdagz/lush-sub001/internal/transform"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

func (s *PlayerService) List(accountID uint, page, limit int) ([]models.Player, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	var total int64
	if err := s.db.Model(&models.Player{}).Scopes(account.ForAccount(accountID)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var players []models.Player
	err := s.db.Scopes(account.ForAccount(accountID)).
		Order("last_name, first_name").
		Offset((page - 1) * limit).Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (s *PlayerService) Get(accountID uint, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	if err := s.db.Scopes(account.ForAccount(accountID)).First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) Create(accountID uint, req *dto.PlayerRequest) (*models.Player, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("first and last name are required")
	}

	player := models.Player{
		ID:         uuid.New(),
		AccountID:  accountID,
		ExternalID: req.ExternalID,
	}
	if err := applyPlayerRequest(&player, req); err != nil {
		return nil, err
	}
	if player.RegisteredAt.IsZero() {
		player.RegisteredAt = time.Now().UTC()
	}

	if err := s.db.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &player, nil
}

func (s *PlayerService) Update(accountID uint, id uuid.UUID, req *dto.PlayerRequest) (*models.Player, error) {
	player, err := s.Get(accountID, id)
	if err != nil {
		return nil, err
	}
	if err := applyPlayerRequest(player, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(player).Error; err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

func (s *PlayerService) Delete(accountID uint, id uuid.UUID) error {
	player, err := s.Get(accountID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(player).Error
}

// Export returns the canonical transformed shape for reporting.
func (s *PlayerService) Export(accountID uint) ([]transform.PlayerOutput, error) {
	var players []models.Player
	err := s.db.Scopes(account.ForAccount(accountID)).
		Preload("Rank").
		Order("last_name, first_name").
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]transform.PlayerOutput, 0, len(players))
	for _, p := range players {
		out = append(out, transform.Player(p, p.Rank, now))
	}
	return out, nil
}

func applyPlayerRequest(player *models.Player, req *dto.PlayerRequest) error {
	player.FirstName = req.FirstName
	player.LastName = req.LastName
	player.MiddleInitial = req.MiddleInitial
	player.Gender = req.Gender
	player.IDType = req.IDType
	player.IDNumber = req.IDNumber
	player.Email = req.Email
	player.Phone = req.Phone
	player.EmailOptIn = req.EmailOptIn
	player.PhoneOptIn = req.PhoneOptIn
	player.Address = req.Address
	player.Address2 = req.Address2
	player.City = req.City
	player.State = req.State
	player.Zip = req.Zip
	player.Country = req.Country
	player.Excluded = req.Excluded

	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return fmt.Errorf("invalid birthday %q: expected YYYY-MM-DD", req.Birthday)
		}
		player.Birthday = &birthday
	}
	if req.IDExpiresAt != "" {
		expires, err := time.Parse("2006-01-02", req.IDExpiresAt)
		if err != nil {
			return fmt.Errorf("invalid id_expires_at %q: expected YYYY-MM-DD", req.IDExpiresAt)
		}
		player.IDExpiresAt = &expires
	}
	if req.RankID != "" {
		rankID, err := uuid.Parse(req.RankID)
		if err != nil {
			return fmt.Errorf("invalid rank_id %q", req.RankID)
		}
		player.RankID = &rankID
	} else {
		player.RankID = nil
	}
	return nil
}
