package models

import (
	"time"

	"gorm.io/gorm"
)

type FriendRequest struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SenderID   int64     `gorm:"not null;index" json:"sender_id"`
	ReceiverID int64     `gorm:"not null;index" json:"receiver_id"`
	Message    *string   `json:"message"`
	Status     string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Friendship is stored once per pair with User1ID < User2ID.
type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User1ID   int64     `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"user1_id"`
	User2ID   int64     `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"user2_id"`
	Status    string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.User1ID > f.User2ID {
		f.User1ID, f.User2ID = f.User2ID, f.User1ID
	}
	return nil
}
