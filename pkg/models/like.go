package models

import "time"

// Relation rows. Each pair is its own composite primary key, so a like or a
// follow can only be stored once.

type PostLike struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"post_id"`
}

type CommentLike struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CommentID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"comment_id"`
}

type PostReaction struct {
	UserID int64  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID int64  `gorm:"primaryKey;autoIncrement:false;index" json:"post_id"`
	Type   string `gorm:"type:varchar(10);not null" json:"type"`
}

type MovieLike struct {
	UserID  int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	MovieID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"movie_id"`
}

type MovieCommentLike struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CommentID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"comment_id"`
}

type WatchlistEntry struct {
	UserID  int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	MovieID int64     `gorm:"primaryKey;autoIncrement:false;index" json:"movie_id"`
	AddedAt time.Time `json:"added_at"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
