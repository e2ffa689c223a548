package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

var (
	ErrRankNotFound = errors.New("rank not found")
	ErrRankInUse    = errors.New("rank is still referenced by players")
)

type RankService struct {
	db *gorm.DB
}

func NewRankService(db *gorm.DB) *RankService {
	return &RankService{db: db}
}

func (s *RankService) List(accountID uint) ([]models.Rank, error) {
	var ranks []models.Rank
	if err := s.db.Scopes(account.ForAccount(accountID)).Order("threshold").Find(&ranks).Error; err != nil {
		return nil, err
	}
	return ranks, nil
}

func (s *RankService) Create(accountID uint, req *dto.RankRequest) (*models.Rank, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	rank := models.Rank{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      req.Name,
		Threshold: req.Threshold,
	}
	if err := s.db.Create(&rank).Error; err != nil {
		return nil, fmt.Errorf("failed to create rank: %w", err)
	}
	return &rank, nil
}

func (s *RankService) Update(accountID uint, id uuid.UUID, req *dto.RankRequest) (*models.Rank, error) {
	var rank models.Rank
	if err := s.db.Scopes(account.ForAccount(accountID)).First(&rank, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRankNotFound
		}
		return nil, err
	}
	rank.Name = req.Name
	rank.Threshold = req.Threshold
	if err := s.db.Save(&rank).Error; err != nil {
		return nil, fmt.Errorf("failed to update rank: %w", err)
	}
	return &rank, nil
}

// Delete refuses to remove a rank that would orphan players.
func (s *RankService) Delete(accountID uint, id uuid.UUID) error {
	var referenced int64
	if err := s.db.Model(&models.Player{}).Scopes(account.ForAccount(accountID)).Where("rank_id = ?", id).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return ErrRankInUse
	}

	result := s.db.Scopes(account.ForAccount(accountID)).Delete(&models.Rank{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRankNotFound
	}
	return nil
}
