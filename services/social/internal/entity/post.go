package entity

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

func ValidReaction(r ReactionType) bool {
	switch r {
	case ReactionLike, ReactionLove, ReactionHaha, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

type Attachment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Post struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	CommunityID *int64       `json:"community_id"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments"`
	Visibility  Visibility   `json:"visibility"`
	Hashtags    []string     `json:"hashtags"`
	Location    *string      `json:"location"`
	Likes       int          `json:"likes"`
	Shares      int          `json:"shares"`
	Comments    int          `json:"comments"`
	CreatedAt   time.Time    `json:"created_at"`
	EditedAt    *time.Time   `json:"edited_at"`
}

type NewPost struct {
	Content     string
	Attachments []Attachment
	Visibility  Visibility
	Hashtags    []string
	Location    *string
	CommunityID *int64
}

type PostUpdate struct {
	Content     *string
	Attachments []Attachment
	Visibility  *Visibility
	Hashtags    []string
	Location    *string
}

type Comment struct {
	ID        int64      `json:"id"`
	PostID    int64      `json:"post_id"`
	UserID    int64      `json:"user_id"`
	ParentID  *int64     `json:"parent_id"`
	Content   string     `json:"content"`
	Likes     int        `json:"likes"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`
}

type NewComment struct {
	PostID   int64
	Content  string
	ParentID *int64
}

// CommentThread is a comment with its replies nested oldest first.
type CommentThread struct {
	Comment
	Replies []CommentThread `json:"replies"`
}
