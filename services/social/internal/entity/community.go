package entity

import "time"

type CommunityType string

const (
	CommunityPublic  CommunityType = "public"
	CommunityPrivate CommunityType = "private"
)

const (
	CommunityRoleOwner     = "owner"
	CommunityRoleModerator = "moderator"
	CommunityRoleMember    = "member"
)

type Community struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	AvatarURL     *string       `json:"avatar_url"`
	CoverImageURL *string       `json:"cover_image_url"`
	Type          CommunityType `json:"type"`
	CreatedBy     int64         `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
}

type NewCommunity struct {
	Name          string
	Description   *string
	AvatarURL     *string
	CoverImageURL *string
	Type          CommunityType
}

type CommunityMember struct {
	User User   `json:"user"`
	Role string `json:"role"`
}
