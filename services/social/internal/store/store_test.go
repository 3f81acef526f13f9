package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock ticks one second on every read so creation order is strict.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.now)), clock
}

func mustUser(t *testing.T, s *Store, name string) entity.User {
	t.Helper()
	u, err := s.CreateUser(entity.NewUser{
		Username: name,
		Password: "hash",
		Email:    name + "@example.com",
	})
	require.NoError(t, err)
	return u
}

func mustComment(t *testing.T, s *Store, userID int64, in entity.NewComment) entity.Comment {
	t.Helper()
	c, err := s.CreateComment(userID, in)
	require.NoError(t, err)
	return c
}

func TestIDs_MonotonicAndNeverReused(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")

	p1 := s.CreatePost(a.ID, entity.NewPost{Content: "one"})
	p2 := s.CreatePost(a.ID, entity.NewPost{Content: "two"})
	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)

	require.NoError(t, s.DeletePost(p2.ID))
	p3 := s.CreatePost(a.ID, entity.NewPost{Content: "three"})
	assert.Equal(t, int64(3), p3.ID)

	// sequences are per entity type
	c := mustComment(t, s, a.ID, entity.NewComment{PostID: p1.ID, Content: "hi"})
	assert.Equal(t, int64(1), c.ID)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	p := s.CreatePost(a.ID, entity.NewPost{Content: "hello", Hashtags: []string{"go"}})

	p.Hashtags[0] = "mutated"
	p.Likes = 99

	stored, ok := s.GetPost(p.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, stored.Hashtags)
	assert.Equal(t, 0, stored.Likes)
}

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	s.CreatePost(a.ID, entity.NewPost{Content: "hello"})
	s.CreateMovie(a.ID, entity.NewMovie{Title: "M"})
	s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: 1})
	s.CreateFriendRequest(a.ID, b.ID, nil)
	s.FollowUser(a.ID, b.ID)
	s.CreateStory(a.ID, entity.NewStory{MediaURL: "x"})

	st := s.Stats()
	assert.Equal(t, 2, st.Users)
	assert.Equal(t, 1, st.Posts)
	assert.Equal(t, 1, st.Movies)
	assert.Equal(t, 1, st.PendingMovies)
	assert.Equal(t, 1, st.PendingDMCAClaims)
	assert.Equal(t, 1, st.PendingFriendRequests)
	assert.Equal(t, 1, st.Follows)
	assert.Equal(t, 1, st.ActiveStories)
}

func TestConcurrentLikes_CountEachUserOnce(t *testing.T) {
	s := New()
	author, err := s.CreateUser(entity.NewUser{Username: "author", Email: "author@example.com"})
	require.NoError(t, err)
	post := s.CreatePost(author.ID, entity.NewPost{Content: "popular"})

	const users = 50
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		userID := int64(100 + i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.LikePost(userID, post.ID)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.LikePost(userID, post.ID)
		}()
	}
	wg.Wait()

	got, ok := s.GetPost(post.ID)
	require.True(t, ok)
	assert.Equal(t, users, got.Likes)
}

func TestNotFoundErrorsWrapSentinel(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdatePost(42, entity.PostUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), fmt.Sprintf("post %d", 42))

	_, err = s.UpdateMovieStatus(42, entity.MovieStatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}
