package account

import "gorm.io/gorm"

// ForAccount returns a GORM scope that filters by account_id.
func ForAccount(accountID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ?", accountID)
	}
}
