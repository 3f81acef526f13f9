package models

import "time"

type Conversation struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Type          string    `gorm:"type:varchar(10)" json:"type"`
	Name          *string   `json:"name"`
	MemberIDs     []int64   `gorm:"serializer:json" json:"member_ids"`
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type Message struct {
	ID             int64        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ConversationID int64        `gorm:"not null;index" json:"conversation_id"`
	UserID         int64        `gorm:"not null" json:"user_id"`
	Content        string       `gorm:"type:text" json:"content"`
	Attachments    []Attachment `gorm:"serializer:json" json:"attachments"`
	CreatedAt      time.Time    `json:"created_at"`
	EditedAt       *time.Time   `json:"edited_at"`
	IsDeleted      bool         `gorm:"default:false" json:"is_deleted"`
}
