package store

import (
	"fmt"
	"strings"

	"cinesocial/services/social/internal/entity"
)

// CreateUser registers a user. Username and email must be unique.
func (s *Store) CreateUser(in entity.NewUser) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[in.Username]; taken {
		return entity.User{}, fmt.Errorf("username %q: %w", in.Username, ErrConflict)
	}
	if _, taken := s.emails[in.Email]; taken {
		return entity.User{}, fmt.Errorf("email %q: %w", in.Email, ErrConflict)
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	permissions := in.Permissions
	if permissions == nil {
		permissions = []string{entity.PermissionViewContent}
	}

	now := s.now()
	u := &entity.User{
		ID:          s.next(seqUser),
		Username:    in.Username,
		Password:    in.Password,
		Email:       in.Email,
		DisplayName: clonePtr(in.DisplayName),
		AvatarURL:   clonePtr(in.AvatarURL),
		GoogleID:    clonePtr(in.GoogleID),
		IsAdmin:     in.IsAdmin,
		Role:        role,
		Permissions: cloneSlice(permissions),
		Status:      entity.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.users[u.ID] = u
	s.usernames[u.Username] = u.ID
	s.emails[u.Email] = u.ID
	return cloneUser(u), nil
}

func (s *Store) GetUser(id int64) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return entity.User{}, false
	}
	return cloneUser(u), true
}

func (s *Store) GetUserByUsername(username string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return entity.User{}, false
	}
	return cloneUser(s.users[id]), true
}

func (s *Store) GetUserByEmail(email string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return entity.User{}, false
	}
	return cloneUser(s.users[id]), true
}

func (s *Store) GetUserByGoogleID(googleID string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return cloneUser(u), true
		}
	}
	return entity.User{}, false
}

func (s *Store) UpdateUserProfile(id int64, p entity.ProfileUpdate) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return entity.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if p.DisplayName != nil {
		u.DisplayName = clonePtr(p.DisplayName)
	}
	if p.Bio != nil {
		u.Bio = clonePtr(p.Bio)
	}
	if p.AvatarURL != nil {
		u.AvatarURL = clonePtr(p.AvatarURL)
	}
	if p.CoverImageURL != nil {
		u.CoverImageURL = clonePtr(p.CoverImageURL)
	}
	if p.Location != nil {
		u.Location = clonePtr(p.Location)
	}
	if p.Website != nil {
		u.Website = clonePtr(p.Website)
	}
	u.UpdatedAt = s.now()
	return cloneUser(u), nil
}

// UpdateUser applies an administrative patch: role, permissions, status and flags.
func (s *Store) UpdateUser(id int64, p entity.UserUpdate) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return entity.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if p.Status != nil && !entity.ValidUserStatus(*p.Status) {
		return entity.User{}, fmt.Errorf("user status %q: %w", *p.Status, ErrInvalidStatus)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Permissions != nil {
		u.Permissions = cloneSlice(p.Permissions)
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.LastLoginAt != nil {
		u.LastLoginAt = clonePtr(p.LastLoginAt)
	}
	u.UpdatedAt = s.now()
	return cloneUser(u), nil
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	sortByID(out, func(u entity.User) int64 { return u.ID })
	return out
}

func (s *Store) GetUserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// SearchUsers matches query case-insensitively against username, display name
// and email. A blank query matches nobody.
func (s *Store) SearchUsers(query string) []entity.User {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.User
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			(u.DisplayName != nil && strings.Contains(strings.ToLower(*u.DisplayName), term)) {
			out = append(out, cloneUser(u))
		}
	}
	sortByID(out, func(u entity.User) int64 { return u.ID })
	return out
}

// usersByID resolves ids to users, skipping unknown ids. Callers hold the lock.
func (s *Store) usersByID(ids []int64) []entity.User {
	out := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out
}
