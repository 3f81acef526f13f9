package models

// Follow is a directed subscription from follower to followee.
type Follow struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"followee_id"`
}
