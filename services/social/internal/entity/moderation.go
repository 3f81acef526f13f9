package entity

import "time"

type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
	ContentTypeMovie   ContentType = "movie"
)

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationReviewed ModerationStatus = "reviewed"
	ModerationActioned ModerationStatus = "actioned"
)

type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationFlag    ModerationAction = "flag"
)

type ModerationItem struct {
	ID          int64             `json:"id"`
	ContentType ContentType       `json:"content_type"`
	ContentID   int64             `json:"content_id"`
	ReporterID  *int64            `json:"reporter_id"`
	Reason      string            `json:"reason"`
	Status      ModerationStatus  `json:"status"`
	ModeratorID *int64            `json:"moderator_id"`
	Action      *ModerationAction `json:"action"`
	Notes       *string           `json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type NewModerationItem struct {
	ContentType ContentType
	ContentID   int64
	ReporterID  *int64
	Reason      string
}

type ModerationDecision struct {
	ModeratorID int64
	Action      ModerationAction
	Notes       *string
}
