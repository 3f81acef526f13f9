package models

// IDSequence holds the last id handed out per entity kind.
type IDSequence struct {
	Kind  string `gorm:"primaryKey;type:varchar(50)" json:"kind"`
	Value int64  `gorm:"not null" json:"value"`
}

// All lists every snapshot table in dependency-free order for AutoMigrate and
// bulk deletes.
func All() []interface{} {
	return []interface{}{
		&IDSequence{},
		&User{},
		&Post{},
		&Comment{},
		&Story{},
		&Conversation{},
		&Message{},
		&Community{},
		&CommunityMember{},
		&Movie{},
		&MovieComment{},
		&MovieReport{},
		&MovieRating{},
		&WatchRecord{},
		&DMCAClaim{},
		&FriendRequest{},
		&Friendship{},
		&ModerationItem{},
		&PostLike{},
		&CommentLike{},
		&PostReaction{},
		&Follow{},
		&MovieLike{},
		&MovieCommentLike{},
		&WatchlistEntry{},
	}
}
