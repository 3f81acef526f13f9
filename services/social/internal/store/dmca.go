package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func dmcaKey(c entity.DMCAClaim) (time.Time, int64) { return c.CreatedAt, c.ID }

func (s *Store) CreateDMCAClaim(in entity.NewDMCAClaim) entity.DMCAClaim {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := &entity.DMCAClaim{
		ID:            s.next(seqDMCAClaim),
		MovieID:       in.MovieID,
		ClaimantName:  in.ClaimantName,
		ClaimantEmail: in.ClaimantEmail,
		Description:   in.Description,
		Evidence:      clonePtr(in.Evidence),
		Status:        entity.DMCAStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.dmcaClaims[c.ID] = c
	return cloneDMCAClaim(c)
}

func (s *Store) GetDMCAClaim(id int64) (entity.DMCAClaim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.dmcaClaims[id]
	if !ok {
		return entity.DMCAClaim{}, false
	}
	return cloneDMCAClaim(c), true
}

// UpdateDMCAClaimStatus resolves a pending claim. Approval takes the movie down
// with status removed_copyright.
func (s *Store) UpdateDMCAClaimStatus(id int64, status entity.DMCAStatus, response *string) (entity.DMCAClaim, error) {
	if status != entity.DMCAStatusApproved && status != entity.DMCAStatusRejected {
		return entity.DMCAClaim{}, fmt.Errorf("dmca status %q: %w", status, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.dmcaClaims[id]
	if !ok {
		return entity.DMCAClaim{}, fmt.Errorf("dmca claim %d: %w", id, ErrNotFound)
	}
	if c.Status != entity.DMCAStatusPending {
		return entity.DMCAClaim{}, fmt.Errorf("dmca claim %d is %s: %w", id, c.Status, ErrInvalidTransition)
	}

	now := s.now()
	c.Status = status
	c.ResponseMessage = clonePtr(response)
	c.UpdatedAt = now
	if status == entity.DMCAStatusApproved {
		if m, ok := s.movies[c.MovieID]; ok {
			m.Status = entity.MovieStatusRemovedCopyright
			m.UpdatedAt = now
		}
	}
	return cloneDMCAClaim(c), nil
}

func (s *Store) GetMovieDMCAClaims(movieID int64) []entity.DMCAClaim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.DMCAClaim
	for _, c := range s.dmcaClaims {
		if c.MovieID == movieID {
			out = append(out, cloneDMCAClaim(c))
		}
	}
	newestFirst(out, dmcaKey)
	return out
}

// GetPendingDMCAClaims returns unresolved claims oldest first, in review order.
func (s *Store) GetPendingDMCAClaims() []entity.DMCAClaim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.DMCAClaim
	for _, c := range s.dmcaClaims {
		if c.Status == entity.DMCAStatusPending {
			out = append(out, cloneDMCAClaim(c))
		}
	}
	oldestFirst(out, dmcaKey)
	return out
}
