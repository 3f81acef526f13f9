package entity

import "time"

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

type Conversation struct {
	ID            int64            `json:"id"`
	Type          ConversationType `json:"type"`
	Name          *string          `json:"name"`
	MemberIDs     []int64          `json:"member_ids"`
	CreatedAt     time.Time        `json:"created_at"`
	LastMessageAt time.Time        `json:"last_message_at"`
}

type Message struct {
	ID             int64        `json:"id"`
	ConversationID int64        `json:"conversation_id"`
	UserID         int64        `json:"user_id"`
	Content        string       `json:"content"`
	Attachments    []Attachment `json:"attachments"`
	CreatedAt      time.Time    `json:"created_at"`
	EditedAt       *time.Time   `json:"edited_at"`
	IsDeleted      bool         `json:"is_deleted"`
}

type NewMessage struct {
	ConversationID int64
	Content        string
	Attachments    []Attachment
}
