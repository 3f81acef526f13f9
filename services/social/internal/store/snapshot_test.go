package store

import (
	"testing"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	c := mustUser(t, s, "carol")

	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello", Hashtags: []string{"go"}})
	cm := mustComment(t, s, b.ID, entity.NewComment{PostID: p.ID, Content: "hi"})
	_, err := s.LikePost(b.ID, p.ID)
	require.NoError(t, err)
	_, err = s.LikeComment(a.ID, cm.ID)
	require.NoError(t, err)
	require.NoError(t, s.AddReaction(c.ID, p.ID, entity.ReactionSad))
	s.FollowUser(b.ID, a.ID)
	befriend(t, s, c.ID, a.ID)

	community := s.CreateCommunity(a.ID, entity.NewCommunity{Name: "noir"})
	require.NoError(t, s.JoinCommunity(b.ID, community.ID, ""))

	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})
	_, err = s.LikeMovie(b.ID, m.ID)
	require.NoError(t, err)
	s.AddToWatchlist(b.ID, m.ID)
	_, err = s.RateMovie(b.ID, m.ID, 4, nil)
	require.NoError(t, err)
	return s
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	src := populated(t)
	snap := src.Snapshot()

	dst := New()
	dst.Restore(snap)

	assert.Equal(t, src.Stats(), dst.Stats())
	assert.Equal(t, snap, dst.Snapshot())

	u, ok := dst.GetUserByUsername("alice")
	require.True(t, ok)
	assert.True(t, dst.HasLikedPost(2, 1))
	assert.True(t, dst.IsFollowing(2, u.ID))
	assert.True(t, dst.CheckFriendship(u.ID, 3))
	assert.True(t, dst.IsInWatchlist(2, 1))
	r, ok := dst.GetUserReaction(3, 1)
	require.True(t, ok)
	assert.Equal(t, entity.ReactionSad, r)

	// a re-rating after restore updates the existing row
	_, err := dst.RateMovie(2, 1, 2, nil)
	require.NoError(t, err)
	assert.Len(t, dst.GetMovieRatings(1), 1)
}

func TestRestore_SequencesContinue(t *testing.T) {
	src := populated(t)
	snap := src.Snapshot()
	delete(snap.Sequences, seqPost)

	dst := New()
	dst.Restore(snap)

	p := dst.CreatePost(1, entity.NewPost{Content: "next"})
	assert.Equal(t, int64(2), p.ID)
	_, err := dst.CreateUser(entity.NewUser{Username: "alice", Email: "new@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSnapshot_IsDetached(t *testing.T) {
	s := populated(t)
	snap := s.Snapshot()
	snap.Posts[0].Hashtags[0] = "mutated"

	p, _ := s.GetPost(1)
	assert.Equal(t, []string{"go"}, p.Hashtags)

	s.Restore(snap)
	snap.Posts[0].Hashtags[0] = "again"
	p, _ = s.GetPost(1)
	assert.Equal(t, []string{"mutated"}, p.Hashtags)
}
