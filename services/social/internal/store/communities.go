package store

import (
	"fmt"

	"cinesocial/services/social/internal/entity"
)

// CreateCommunity creates a community with its creator as owner.
func (s *Store) CreateCommunity(creatorID int64, in entity.NewCommunity) entity.Community {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := in.Type
	if kind == "" {
		kind = entity.CommunityPublic
	}
	c := &entity.Community{
		ID:            s.next(seqCommunity),
		Name:          in.Name,
		Description:   clonePtr(in.Description),
		AvatarURL:     clonePtr(in.AvatarURL),
		CoverImageURL: clonePtr(in.CoverImageURL),
		Type:          kind,
		CreatedBy:     creatorID,
		CreatedAt:     s.now(),
	}
	s.communities[c.ID] = c
	s.members.put(creatorID, c.ID, entity.CommunityRoleOwner)
	return cloneCommunity(c)
}

func (s *Store) GetCommunity(id int64) (entity.Community, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.communities[id]
	if !ok {
		return entity.Community{}, false
	}
	return cloneCommunity(c), true
}

// JoinCommunity adds the user with role, or changes the role of an existing
// member. An empty role means member.
func (s *Store) JoinCommunity(userID, communityID int64, role string) error {
	if role == "" {
		role = entity.CommunityRoleMember
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.communities[communityID]; !ok {
		return fmt.Errorf("community %d: %w", communityID, ErrNotFound)
	}
	s.members.put(userID, communityID, role)
	return nil
}

func (s *Store) LeaveCommunity(userID, communityID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members.remove(userID, communityID)
}

func (s *Store) GetCommunityRole(userID, communityID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.get(userID, communityID)
}

// GetCommunityMembers lists members ordered by user id.
func (s *Store) GetCommunityMembers(communityID int64) []entity.CommunityMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.CommunityMember
	for _, userID := range s.members.to(communityID) {
		u, ok := s.users[userID]
		if !ok {
			continue
		}
		role, _ := s.members.get(userID, communityID)
		out = append(out, entity.CommunityMember{User: cloneUser(u), Role: role})
	}
	return out
}
