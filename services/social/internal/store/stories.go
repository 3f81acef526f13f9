package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func storyKey(st entity.Story) (time.Time, int64) { return st.CreatedAt, st.ID }

// CreateStory stores a story that expires after the store's TTL unless the
// payload sets its own expiry.
func (s *Store) CreateStory(userID int64, in entity.NewStory) entity.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expiresAt := now.Add(s.storyTTL)
	if in.ExpiresAt != nil {
		expiresAt = *in.ExpiresAt
	}
	st := &entity.Story{
		ID:        s.next(seqStory),
		UserID:    userID,
		MediaURL:  in.MediaURL,
		MediaType: in.MediaType,
		Caption:   clonePtr(in.Caption),
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	s.stories[st.ID] = st
	return cloneStory(st)
}

// GetStory returns a story whether or not it has expired.
func (s *Store) GetStory(id int64) (entity.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stories[id]
	if !ok {
		return entity.Story{}, false
	}
	return cloneStory(st), true
}

// GetUserStories returns the user's unexpired stories, newest first.
func (s *Store) GetUserStories(userID int64) []entity.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.liveStoriesBy(func(st *entity.Story) bool { return st.UserID == userID })
}

// GetFeedStories returns unexpired stories by the user and by everyone they
// follow, newest first.
func (s *Store) GetFeedStories(userID int64) []entity.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := s.feedAuthors(userID)
	return s.liveStoriesBy(func(st *entity.Story) bool {
		_, ok := authors[st.UserID]
		return ok
	})
}

func (s *Store) liveStoriesBy(match func(*entity.Story) bool) []entity.Story {
	now := s.now()
	var out []entity.Story
	for _, st := range s.stories {
		if match(st) && !st.Expired(now) {
			out = append(out, cloneStory(st))
		}
	}
	newestFirst(out, storyKey)
	return out
}

func (s *Store) ViewStory(id int64) (entity.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stories[id]
	if !ok {
		return entity.Story{}, fmt.Errorf("story %d: %w", id, ErrNotFound)
	}
	st.Viewers++
	return cloneStory(st), nil
}

func (s *Store) DeleteStory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.stories, id)
	return nil
}

// PurgeExpiredStories deletes every story expired at now and returns how many
// were removed.
func (s *Store) PurgeExpiredStories(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, st := range s.stories {
		if st.Expired(now) {
			delete(s.stories, id)
			removed++
		}
	}
	return removed
}
