package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func TestFriendship_BeforeCreate_Canonicalizes(t *testing.T) {
	f := &Friendship{ID: 1, User1ID: 9, User2ID: 3}

	err := f.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), f.User1ID)
	assert.Equal(t, int64(9), f.User2ID)
}

func TestFriendship_UniquePair(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&Friendship{ID: 1, User1ID: 1, User2ID: 2, Status: "active"}).Error)
	err := db.Create(&Friendship{ID: 2, User1ID: 2, User2ID: 1, Status: "active"}).Error
	assert.Error(t, err)
}

func TestUser_UniqueUsername(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&User{ID: 1, Username: "alice", Email: "a@example.com", Password: "x"}).Error)
	err := db.Create(&User{ID: 2, Username: "alice", Email: "b@example.com", Password: "x"}).Error
	assert.Error(t, err)
}

func TestPost_JSONColumns(t *testing.T) {
	db := openTestDB(t)
	post := &Post{
		ID:          1,
		UserID:      1,
		Content:     "hello",
		Attachments: []Attachment{{Type: "image", URL: "https://cdn/1.jpg"}},
		Hashtags:    []string{"go", "movies"},
	}
	require.NoError(t, db.Create(post).Error)

	var got Post
	require.NoError(t, db.First(&got, 1).Error)
	assert.Equal(t, post.Attachments, got.Attachments)
	assert.Equal(t, post.Hashtags, got.Hashtags)
}

func TestPostLike_OncePerPair(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&PostLike{UserID: 1, PostID: 1}).Error)
	assert.Error(t, db.Create(&PostLike{UserID: 1, PostID: 1}).Error)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "watch_history", WatchRecord{}.TableName())
	assert.Equal(t, "dmca_claims", DMCAClaim{}.TableName())
	assert.Equal(t, "moderation_queue", ModerationItem{}.TableName())
	assert.Equal(t, "watchlist", WatchlistEntry{}.TableName())
}
