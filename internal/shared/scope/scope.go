package scope

import (
	"time"

	"gorm.io/gorm"
)

// Owner membatasi query ke baris milik user.
func Owner(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Unit membatasi query user ke satu unit kerja (ue2/ue3).
func Unit(ue2, ue3 string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ue2 = ? AND ue3 = ?", ue2, ue3)
	}
}

// Period filters a date column by month and/or year. Zero values are ignored.
func Period(column string, month, year int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case month > 0 && year > 0:
			from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			return db.Where(column+" >= ? AND "+column+" < ?", from, from.AddDate(0, 1, 0))
		case year > 0:
			from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			return db.Where(column+" >= ? AND "+column+" < ?", from, from.AddDate(1, 0, 0))
		case month > 0:
			return db.Where("EXTRACT(MONTH FROM "+column+") = ?", month)
		}
		return db
	}
}
