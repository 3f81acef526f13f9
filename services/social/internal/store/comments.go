package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func commentKey(c entity.Comment) (time.Time, int64) { return c.CreatedAt, c.ID }

// CreateComment adds a comment and bumps the post's comment counter. The post
// must exist.
func (s *Store) CreateComment(userID int64, in entity.NewComment) (entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[in.PostID]
	if !ok {
		return entity.Comment{}, fmt.Errorf("post %d: %w", in.PostID, ErrNotFound)
	}
	c := &entity.Comment{
		ID:        s.next(seqComment),
		PostID:    in.PostID,
		UserID:    userID,
		ParentID:  clonePtr(in.ParentID),
		Content:   in.Content,
		CreatedAt: s.now(),
	}
	s.comments[c.ID] = c
	p.Comments++
	return cloneComment(c), nil
}

func (s *Store) GetComment(id int64) (entity.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return entity.Comment{}, false
	}
	return cloneComment(c), true
}

func (s *Store) UpdateComment(id int64, content string) (entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	now := s.now()
	c.Content = content
	c.EditedAt = &now
	return cloneComment(c), nil
}

// GetPostComments returns every comment on a post, newest first.
func (s *Store) GetPostComments(postID int64) []entity.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, cloneComment(c))
		}
	}
	newestFirst(out, commentKey)
	return out
}

// GetCommentReplies returns the direct replies to a comment, oldest first.
func (s *Store) GetCommentReplies(parentID int64) []entity.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Comment
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, cloneComment(c))
		}
	}
	oldestFirst(out, commentKey)
	return out
}

// GetThreadedComments returns a post's comments as a tree. Comments whose
// parent no longer exists are treated as roots.
func (s *Store) GetThreadedComments(postID int64) []entity.CommentThread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make(map[int64][]entity.Comment)
	var roots []entity.Comment
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		if c.ParentID != nil {
			if _, ok := s.comments[*c.ParentID]; ok {
				children[*c.ParentID] = append(children[*c.ParentID], cloneComment(c))
				continue
			}
		}
		roots = append(roots, cloneComment(c))
	}

	var build func(cs []entity.Comment) []entity.CommentThread
	build = func(cs []entity.Comment) []entity.CommentThread {
		oldestFirst(cs, commentKey)
		out := make([]entity.CommentThread, 0, len(cs))
		for _, c := range cs {
			out = append(out, entity.CommentThread{Comment: c, Replies: build(children[c.ID])})
		}
		return out
	}
	return build(roots)
}

// DeleteComment removes a comment and all of its replies, decrementing the
// post's counter once per removed comment.
func (s *Store) DeleteComment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCommentLocked(id)
	return nil
}

func (s *Store) deleteCommentLocked(id int64) {
	if _, ok := s.comments[id]; !ok {
		return
	}
	doomed := []int64{id}
	seen := map[int64]struct{}{id: {}}
	for i := 0; i < len(doomed); i++ {
		for cid, c := range s.comments {
			if _, dup := seen[cid]; dup {
				continue
			}
			if c.ParentID != nil && *c.ParentID == doomed[i] {
				seen[cid] = struct{}{}
				doomed = append(doomed, cid)
			}
		}
	}
	for _, cid := range doomed {
		c := s.comments[cid]
		if post, ok := s.posts[c.PostID]; ok {
			decrement(&post.Comments)
		}
		delete(s.comments, cid)
		s.commentLikes.removeTo(cid)
	}
}

func (s *Store) LikeComment(userID, commentID int64) (entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if s.commentLikes.put(userID, commentID, struct{}{}) {
		c.Likes++
	}
	return cloneComment(c), nil
}

func (s *Store) UnlikeComment(userID, commentID int64) (entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if s.commentLikes.remove(userID, commentID) {
		decrement(&c.Likes)
	}
	return cloneComment(c), nil
}
