package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func (s *Store) CreateModerationItem(in entity.NewModerationItem) entity.ModerationItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	item := &entity.ModerationItem{
		ID:          s.next(seqModeration),
		ContentType: in.ContentType,
		ContentID:   in.ContentID,
		ReporterID:  clonePtr(in.ReporterID),
		Reason:      in.Reason,
		Status:      entity.ModerationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.moderation[item.ID] = item
	return cloneModerationItem(item)
}

func (s *Store) GetModerationItem(id int64) (entity.ModerationItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.moderation[id]
	if !ok {
		return entity.ModerationItem{}, false
	}
	return cloneModerationItem(item), true
}

// GetModerationQueue returns items oldest first, filtered by status unless it
// is empty.
func (s *Store) GetModerationQueue(status entity.ModerationStatus) []entity.ModerationItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.ModerationItem
	for _, item := range s.moderation {
		if status == "" || item.Status == status {
			out = append(out, cloneModerationItem(item))
		}
	}
	oldestFirst(out, func(m entity.ModerationItem) (time.Time, int64) { return m.CreatedAt, m.ID })
	return out
}

// ReviewModerationItem closes a pending item. Flagging marks it reviewed and
// leaves the content alone. Approve and reject mark it actioned and apply to
// the content: a movie takes the matching status, a rejected post or comment
// is deleted.
func (s *Store) ReviewModerationItem(id int64, d entity.ModerationDecision) (entity.ModerationItem, error) {
	var status entity.ModerationStatus
	switch d.Action {
	case entity.ModerationFlag:
		status = entity.ModerationReviewed
	case entity.ModerationApprove, entity.ModerationReject:
		status = entity.ModerationActioned
	default:
		return entity.ModerationItem{}, fmt.Errorf("moderation action %q: %w", d.Action, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.moderation[id]
	if !ok {
		return entity.ModerationItem{}, fmt.Errorf("moderation item %d: %w", id, ErrNotFound)
	}
	if item.Status != entity.ModerationPending {
		return entity.ModerationItem{}, fmt.Errorf("moderation item %d is %s: %w", id, item.Status, ErrInvalidTransition)
	}

	now := s.now()
	action := d.Action
	moderatorID := d.ModeratorID
	item.Status = status
	item.Action = &action
	item.ModeratorID = &moderatorID
	item.Notes = clonePtr(d.Notes)
	item.UpdatedAt = now

	if status == entity.ModerationActioned {
		s.applyModerationLocked(item.ContentType, item.ContentID, d.Action, now)
	}
	return cloneModerationItem(item), nil
}

func (s *Store) applyModerationLocked(kind entity.ContentType, contentID int64, action entity.ModerationAction, now time.Time) {
	switch kind {
	case entity.ContentTypeMovie:
		m, ok := s.movies[contentID]
		// a copyright takedown is final
		if !ok || m.Status == entity.MovieStatusRemovedCopyright {
			return
		}
		if action == entity.ModerationApprove {
			m.Status = entity.MovieStatusApproved
		} else {
			m.Status = entity.MovieStatusRejected
		}
		m.UpdatedAt = now
	case entity.ContentTypePost:
		if action == entity.ModerationReject {
			s.deletePostLocked(contentID)
		}
	case entity.ContentTypeComment:
		if action == entity.ModerationReject {
			s.deleteCommentLocked(contentID)
		}
	}
}
