package store

import (
	"fmt"
	"sort"
	"time"

	"cinesocial/services/social/internal/entity"
)

// CreateFriendRequest records a pending request. Duplicate and already-friends
// checks belong to the caller.
func (s *Store) CreateFriendRequest(senderID, receiverID int64, message *string) entity.FriendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	fr := &entity.FriendRequest{
		ID:         s.next(seqFriendRequest),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    clonePtr(message),
		Status:     entity.FriendRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.friendRequests[fr.ID] = fr
	return cloneFriendRequest(fr)
}

func (s *Store) GetFriendRequest(id int64) (entity.FriendRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fr, ok := s.friendRequests[id]
	if !ok {
		return entity.FriendRequest{}, false
	}
	return cloneFriendRequest(fr), true
}

// GetFriendRequestsByUser lists pending requests the user sent or received,
// newest first.
func (s *Store) GetFriendRequestsByUser(userID int64, dir entity.RequestDirection) []entity.FriendRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.FriendRequest
	for _, fr := range s.friendRequests {
		if fr.Status != entity.FriendRequestPending {
			continue
		}
		if (dir == entity.RequestsSent && fr.SenderID == userID) ||
			(dir == entity.RequestsReceived && fr.ReceiverID == userID) {
			out = append(out, cloneFriendRequest(fr))
		}
	}
	newestFirst(out, func(fr entity.FriendRequest) (time.Time, int64) { return fr.CreatedAt, fr.ID })
	return out
}

// UpdateFriendRequestStatus accepts or rejects a pending request. Accepting
// makes the two users friends through a single canonical friendship.
func (s *Store) UpdateFriendRequestStatus(id int64, status entity.FriendRequestStatus) (entity.FriendRequest, error) {
	if status != entity.FriendRequestAccepted && status != entity.FriendRequestRejected {
		return entity.FriendRequest{}, fmt.Errorf("friend request status %q: %w", status, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fr, ok := s.friendRequests[id]
	if !ok {
		return entity.FriendRequest{}, fmt.Errorf("friend request %d: %w", id, ErrNotFound)
	}
	if fr.Status != entity.FriendRequestPending {
		return entity.FriendRequest{}, fmt.Errorf("friend request %d is %s: %w", id, fr.Status, ErrInvalidTransition)
	}

	fr.Status = status
	fr.UpdatedAt = s.now()
	if status == entity.FriendRequestAccepted {
		s.befriendLocked(fr.SenderID, fr.ReceiverID)
	}
	return cloneFriendRequest(fr), nil
}

// befriendLocked creates the active friendship unless the pair already has one.
func (s *Store) befriendLocked(x, y int64) *entity.Friendship {
	k := canonical(x, y)
	if id, ok := s.friends.get(k.a, k.b); ok {
		return s.friendships[id]
	}
	now := s.now()
	f := &entity.Friendship{
		ID:        s.next(seqFriendship),
		User1ID:   k.a,
		User2ID:   k.b,
		Status:    entity.FriendshipActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.friendships[f.ID] = f
	s.friends.put(k.a, k.b, f.ID)
	return f
}

func (s *Store) friendshipLocked(x, y int64) (*entity.Friendship, bool) {
	k := canonical(x, y)
	id, ok := s.friends.get(k.a, k.b)
	if !ok {
		return nil, false
	}
	return s.friendships[id], true
}

// friendIDsLocked returns everyone sharing a friendship row with userID,
// optionally only active ones.
func (s *Store) friendIDsLocked(userID int64, activeOnly bool) []int64 {
	var ids []int64
	collect := func(other int64) {
		f, _ := s.friendshipLocked(userID, other)
		if !activeOnly || f.Status == entity.FriendshipActive {
			ids = append(ids, other)
		}
	}
	for _, other := range s.friends.from(userID) {
		collect(other)
	}
	for _, other := range s.friends.to(userID) {
		collect(other)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetFriendships returns the user's active friends ordered by id.
func (s *Store) GetFriendships(userID int64) []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID(s.friendIDsLocked(userID, true))
}

func (s *Store) GetFriendship(x, y int64) (entity.Friendship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.friendshipLocked(x, y)
	if !ok {
		return entity.Friendship{}, false
	}
	return *f, true
}

// CheckFriendship reports whether the two users are friends and not blocked.
func (s *Store) CheckFriendship(x, y int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.friendshipLocked(x, y)
	return ok && f.Status == entity.FriendshipActive
}

func (s *Store) RemoveFriend(x, y int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := canonical(x, y)
	if id, ok := s.friends.get(k.a, k.b); ok {
		delete(s.friendships, id)
		s.friends.remove(k.a, k.b)
	}
}

func (s *Store) BlockFriend(userID, friendID int64) {
	s.setFriendshipStatus(userID, friendID, entity.FriendshipBlocked)
}

func (s *Store) UnblockFriend(userID, friendID int64) {
	s.setFriendshipStatus(userID, friendID, entity.FriendshipActive)
}

// setFriendshipStatus is a no-op when there is no friendship or the status
// already matches.
func (s *Store) setFriendshipStatus(x, y int64, status entity.FriendshipStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.friendshipLocked(x, y)
	if !ok || f.Status == status {
		return
	}
	f.Status = status
	f.UpdatedAt = s.now()
}

// GetFriendSuggestions ranks users the caller has no friendship with by the
// number of active friends they share. Ties keep ascending user id. A limit of
// zero or less returns every candidate.
func (s *Store) GetFriendSuggestions(userID int64, limit int) []entity.FriendSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	related := make(map[int64]struct{})
	for _, id := range s.friendIDsLocked(userID, false) {
		related[id] = struct{}{}
	}
	mine := make(map[int64]struct{})
	for _, id := range s.friendIDsLocked(userID, true) {
		mine[id] = struct{}{}
	}

	candidates := make([]int64, 0, len(s.users))
	for id := range s.users {
		if _, skip := related[id]; skip || id == userID {
			continue
		}
		candidates = append(candidates, id)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	out := make([]entity.FriendSuggestion, 0, len(candidates))
	for _, id := range candidates {
		mutual := 0
		for _, fid := range s.friendIDsLocked(id, true) {
			if _, ok := mine[fid]; ok {
				mutual++
			}
		}
		out = append(out, entity.FriendSuggestion{User: cloneUser(s.users[id]), MutualFriends: mutual})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MutualFriends > out[j].MutualFriends })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
