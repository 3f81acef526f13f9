package store

import "cinesocial/services/social/internal/entity"

// FollowUser is idempotent; following yourself is ignored.
func (s *Store) FollowUser(followerID, followingID int64) {
	if followerID == followingID {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows.put(followerID, followingID, struct{}{})
}

func (s *Store) UnfollowUser(followerID, followingID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows.remove(followerID, followingID)
}

func (s *Store) IsFollowing(followerID, followingID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.follows.has(followerID, followingID)
}

// GetFollowers returns the users following userID, ordered by id.
func (s *Store) GetFollowers(userID int64) []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID(s.follows.to(userID))
}

// GetFollowing returns the users userID follows, ordered by id.
func (s *Store) GetFollowing(userID int64) []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID(s.follows.from(userID))
}
