package repository

import "gorm.io/gorm"

// ownedBy is the single tenant-isolation chokepoint. Every read and write on
// owner-scoped tables goes through it, so a query that forgets the owner
// filter cannot be written by accident. A row belonging to another user is
// indistinguishable from a missing row.
func ownedBy(db *gorm.DB, userID string) *gorm.DB {
	return db.Where("user_id = ?", userID)
}
