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
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

func (s *GroupService) List(accountID uint) ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.Scopes(account.ForAccount(accountID)).Order("starts_at desc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *GroupService) Get(accountID uint, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := s.db.Scopes(account.ForAccount(accountID)).Preload("Players").First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) Create(accountID uint, req *dto.GroupRequest) (*models.Group, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	starts, ends, err := parseWindow(req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}

	group := models.Group{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      req.Name,
		StartsAt:  starts,
		EndsAt:    ends,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return &group, nil
}

func (s *GroupService) Update(accountID uint, id uuid.UUID, req *dto.GroupRequest) (*models.Group, error) {
	group, err := s.Get(accountID, id)
	if err != nil {
		return nil, err
	}
	starts, ends, err := parseWindow(req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}
	group.Name = req.Name
	group.StartsAt = starts
	group.EndsAt = ends
	if err := s.db.Save(group).Error; err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (s *GroupService) Delete(accountID uint, id uuid.UUID) error {
	group, err := s.Get(accountID, id)
	if err != nil {
		return err
	}
	if err := s.db.Model(group).Association("Players").Clear(); err != nil {
		return err
	}
	return s.db.Delete(group).Error
}

// AddPlayer enrolls a player in the group. Adding an existing member leaves
// membership unchanged.
func (s *GroupService) AddPlayer(accountID uint, groupID, playerID uuid.UUID) error {
	group, err := s.Get(accountID, groupID)
	if err != nil {
		return err
	}

	var player models.Player
	if err := s.db.Scopes(account.ForAccount(accountID)).First(&player, "id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}

	for _, member := range group.Players {
		if member.ID == player.ID {
			return nil
		}
	}
	return s.db.Model(group).Association("Players").Append(&player)
}

func (s *GroupService) RemovePlayer(accountID uint, groupID, playerID uuid.UUID) error {
	group, err := s.Get(accountID, groupID)
	if err != nil {
		return err
	}
	return s.db.Model(group).Association("Players").Delete(&models.Player{ID: playerID})
}

func parseWindow(startsAt, endsAt string) (time.Time, time.Time, error) {
	const layout = "2006-01-02 15:04"
	starts, err := time.Parse(layout, startsAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid starts_at %q: expected YYYY-MM-DD HH:MM", startsAt)
	}
	ends, err := time.Parse(layout, endsAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid ends_at %q: expected YYYY-MM-DD HH:MM", endsAt)
	}
	if ends.Before(starts) {
		return time.Time{}, time.Time{}, errors.New("ends_at must not precede starts_at")
	}
	return starts, ends, nil
}
