package store

import (
	"fmt"
	"sort"
	"time"

	"cinesocial/services/social/internal/entity"
)

// CreateConversation opens a conversation between the creator and members.
// Two participants without a name make a direct conversation, anything else a
// group.
func (s *Store) CreateConversation(creatorID int64, memberIDs []int64, name *string) entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := map[int64]struct{}{creatorID: {}}
	for _, id := range memberIDs {
		set[id] = struct{}{}
	}
	members := make([]int64, 0, len(set))
	for id := range set {
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	kind := entity.ConversationGroup
	if len(members) == 2 && name == nil {
		kind = entity.ConversationDirect
	}
	now := s.now()
	c := &entity.Conversation{
		ID:            s.next(seqConversation),
		Type:          kind,
		Name:          clonePtr(name),
		MemberIDs:     members,
		CreatedAt:     now,
		LastMessageAt: now,
	}
	s.conversations[c.ID] = c
	return cloneConversation(c)
}

func (s *Store) GetConversation(id int64) (entity.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return entity.Conversation{}, false
	}
	return cloneConversation(c), true
}

// GetConversations lists the user's conversations, most recently active first.
func (s *Store) GetConversations(userID int64) []entity.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Conversation
	for _, c := range s.conversations {
		for _, id := range c.MemberIDs {
			if id == userID {
				out = append(out, cloneConversation(c))
				break
			}
		}
	}
	newestFirst(out, func(c entity.Conversation) (time.Time, int64) { return c.LastMessageAt, c.ID })
	return out
}

func (s *Store) SendMessage(userID int64, in entity.NewMessage) entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &entity.Message{
		ID:             s.next(seqMessage),
		ConversationID: in.ConversationID,
		UserID:         userID,
		Content:        in.Content,
		Attachments:    cloneSlice(in.Attachments),
		CreatedAt:      s.now(),
	}
	s.messages[m.ID] = m
	if c, ok := s.conversations[in.ConversationID]; ok {
		c.LastMessageAt = m.CreatedAt
	}
	return cloneMessage(m)
}

// GetMessages returns the latest limit messages of a conversation, oldest
// first. A limit of zero or less returns all of them.
func (s *Store) GetMessages(conversationID int64, limit int) []entity.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, cloneMessage(m))
		}
	}
	oldestFirst(out, func(m entity.Message) (time.Time, int64) { return m.CreatedAt, m.ID })
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func (s *Store) EditMessage(id int64, content string) (entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok || m.IsDeleted {
		return entity.Message{}, fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	now := s.now()
	m.Content = content
	m.EditedAt = &now
	return cloneMessage(m), nil
}

// DeleteMessage blanks the message and marks it deleted so the thread keeps
// its shape.
func (s *Store) DeleteMessage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.messages[id]; ok {
		m.IsDeleted = true
		m.Content = ""
		m.Attachments = []entity.Attachment{}
	}
	return nil
}
