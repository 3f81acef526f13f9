package store

import (
	"testing"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Defaults(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")

	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})

	assert.Equal(t, entity.VisibilityPublic, p.Visibility)
	assert.Equal(t, 0, p.Likes)
	assert.Equal(t, 0, p.Shares)
	assert.Equal(t, 0, p.Comments)
	assert.NotNil(t, p.Attachments)
	assert.Empty(t, p.Attachments)
	assert.Nil(t, p.CommunityID)
	assert.Nil(t, p.EditedAt)
}

func TestLikeUnlike_Scenario(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})

	liked, err := s.LikePost(b.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.True(t, s.HasLikedPost(b.ID, p.ID))

	unliked, err := s.UnlikePost(b.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Likes)
	assert.False(t, s.HasLikedPost(b.ID, p.ID))
}

func TestLikePost_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})

	_, err := s.LikePost(b.ID, p.ID)
	require.NoError(t, err)
	again, err := s.LikePost(b.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Likes)

	// unlike without a like is a no-op
	other, err := s.UnlikePost(a.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, other.Likes)

	_, err = s.UnlikePost(b.ID, p.ID)
	require.NoError(t, err)
	floor, err := s.UnlikePost(b.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, floor.Likes)
}

func TestLikePost_MissingPost(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.LikePost(1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.HasLikedPost(1, 99))
}

func TestSharePost(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})

	_, err := s.SharePost(p.ID)
	require.NoError(t, err)
	shared, err := s.SharePost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, shared.Shares)
}

func TestUpdatePost_SetsEditedAt(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})
	content := "hello, edited"

	updated, err := s.UpdatePost(p.ID, entity.PostUpdate{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
	require.NotNil(t, updated.EditedAt)
	assert.True(t, updated.EditedAt.After(p.CreatedAt))
}

func TestReactions_OnePerUserPerPost(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})

	require.NoError(t, s.AddReaction(b.ID, p.ID, entity.ReactionLike))
	require.NoError(t, s.AddReaction(b.ID, p.ID, entity.ReactionLove))
	require.NoError(t, s.AddReaction(a.ID, p.ID, entity.ReactionLove))

	r, ok := s.GetUserReaction(b.ID, p.ID)
	assert.True(t, ok)
	assert.Equal(t, entity.ReactionLove, r)
	assert.Equal(t, map[entity.ReactionType]int{entity.ReactionLove: 2}, s.GetPostReactions(p.ID))

	s.RemoveReaction(b.ID, p.ID)
	s.RemoveReaction(b.ID, p.ID)
	_, ok = s.GetUserReaction(b.ID, p.ID)
	assert.False(t, ok)
	assert.Equal(t, map[entity.ReactionType]int{entity.ReactionLove: 1}, s.GetPostReactions(p.ID))

	assert.ErrorIs(t, s.AddReaction(b.ID, p.ID, "meh"), ErrInvalidReaction)
	assert.ErrorIs(t, s.AddReaction(b.ID, 99, entity.ReactionLike), ErrNotFound)
}

func TestDeletePost_RemovesDependents(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello"})
	c := mustComment(t, s, b.ID, entity.NewComment{PostID: p.ID, Content: "nice"})
	_, err := s.LikePost(b.ID, p.ID)
	require.NoError(t, err)
	require.NoError(t, s.AddReaction(b.ID, p.ID, entity.ReactionHaha))

	require.NoError(t, s.DeletePost(p.ID))
	require.NoError(t, s.DeletePost(p.ID))

	_, ok := s.GetPost(p.ID)
	assert.False(t, ok)
	_, ok = s.GetComment(c.ID)
	assert.False(t, ok)
	assert.False(t, s.HasLikedPost(b.ID, p.ID))
	assert.Empty(t, s.GetPostReactions(p.ID))
}

func TestGetUserPosts_NewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	first := s.CreatePost(a.ID, entity.NewPost{Content: "first"})
	s.CreatePost(b.ID, entity.NewPost{Content: "other"})
	second := s.CreatePost(a.ID, entity.NewPost{Content: "second"})

	posts := s.GetUserPosts(a.ID)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}
