package store

import (
	"testing"
	"time"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")

	s.FollowUser(a.ID, b.ID)
	s.FollowUser(a.ID, b.ID)
	s.FollowUser(a.ID, a.ID)

	assert.True(t, s.IsFollowing(a.ID, b.ID))
	assert.False(t, s.IsFollowing(b.ID, a.ID))
	assert.False(t, s.IsFollowing(a.ID, a.ID))

	followers := s.GetFollowers(b.ID)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)
	following := s.GetFollowing(a.ID)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)

	s.UnfollowUser(a.ID, b.ID)
	s.UnfollowUser(a.ID, b.ID)
	assert.Empty(t, s.GetFollowers(b.ID))
}

func TestFeedPosts_OwnAndFollowedOnly(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	c := mustUser(t, s, "carol")
	s.FollowUser(a.ID, b.ID)
	// carol follows alice; that must not put carol's posts in alice's feed
	s.FollowUser(c.ID, a.ID)

	own := s.CreatePost(a.ID, entity.NewPost{Content: "mine"})
	followed := s.CreatePost(b.ID, entity.NewPost{Content: "bob's"})
	stranger := s.CreatePost(c.ID, entity.NewPost{Content: "carol's"})
	latest := s.CreatePost(b.ID, entity.NewPost{Content: "bob again"})

	feed := s.GetFeedPosts(a.ID)
	ids := make([]int64, len(feed))
	for i, p := range feed {
		ids[i] = p.ID
	}
	assert.Equal(t, []int64{latest.ID, followed.ID, own.ID}, ids)
	assert.NotContains(t, ids, stranger.ID)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt))
	}
}

func TestFeedPosts_TiesBreakByID(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return fixed }))
	p1 := s.CreatePost(1, entity.NewPost{Content: "a"})
	p2 := s.CreatePost(1, entity.NewPost{Content: "b"})

	feed := s.GetFeedPosts(1)
	require.Len(t, feed, 2)
	assert.Equal(t, p2.ID, feed[0].ID)
	assert.Equal(t, p1.ID, feed[1].ID)
}
