package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func postKey(p entity.Post) (time.Time, int64) { return p.CreatedAt, p.ID }

func (s *Store) CreatePost(userID int64, in entity.NewPost) entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	visibility := in.Visibility
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}
	p := &entity.Post{
		ID:          s.next(seqPost),
		UserID:      userID,
		CommunityID: clonePtr(in.CommunityID),
		Content:     in.Content,
		Attachments: cloneSlice(in.Attachments),
		Visibility:  visibility,
		Hashtags:    cloneSlice(in.Hashtags),
		Location:    clonePtr(in.Location),
		CreatedAt:   s.now(),
	}
	s.posts[p.ID] = p
	return clonePost(p)
}

func (s *Store) GetPost(id int64) (entity.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return entity.Post{}, false
	}
	return clonePost(p), true
}

// UpdatePost edits a post's content fields and stamps EditedAt.
func (s *Store) UpdatePost(id int64, u entity.PostUpdate) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return entity.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Attachments != nil {
		p.Attachments = cloneSlice(u.Attachments)
	}
	if u.Visibility != nil {
		p.Visibility = *u.Visibility
	}
	if u.Hashtags != nil {
		p.Hashtags = cloneSlice(u.Hashtags)
	}
	if u.Location != nil {
		p.Location = clonePtr(u.Location)
	}
	now := s.now()
	p.EditedAt = &now
	return clonePost(p), nil
}

func (s *Store) GetUserPosts(userID int64) []entity.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.postsBy(func(p *entity.Post) bool { return p.UserID == userID })
}

// GetFeedPosts returns the user's own posts and the posts of everyone they
// follow, newest first.
func (s *Store) GetFeedPosts(userID int64) []entity.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := s.feedAuthors(userID)
	return s.postsBy(func(p *entity.Post) bool {
		_, ok := authors[p.UserID]
		return ok
	})
}

func (s *Store) GetCommunityPosts(communityID int64) []entity.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.postsBy(func(p *entity.Post) bool {
		return p.CommunityID != nil && *p.CommunityID == communityID
	})
}

func (s *Store) postsBy(match func(*entity.Post) bool) []entity.Post {
	var out []entity.Post
	for _, p := range s.posts {
		if match(p) {
			out = append(out, clonePost(p))
		}
	}
	newestFirst(out, postKey)
	return out
}

func (s *Store) feedAuthors(userID int64) map[int64]struct{} {
	authors := map[int64]struct{}{userID: {}}
	for _, id := range s.follows.from(userID) {
		authors[id] = struct{}{}
	}
	return authors
}

// DeletePost removes the post with its comments, likes and reactions.
func (s *Store) DeletePost(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletePostLocked(id)
	return nil
}

func (s *Store) deletePostLocked(id int64) {
	if _, ok := s.posts[id]; !ok {
		return
	}
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
			s.commentLikes.removeTo(cid)
		}
	}
	s.postLikes.removeTo(id)
	s.reactions.removeTo(id)
	delete(s.posts, id)
}

// LikePost records the like once; repeating it leaves the counter unchanged.
func (s *Store) LikePost(userID, postID int64) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return entity.Post{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	if s.postLikes.put(userID, postID, struct{}{}) {
		p.Likes++
	}
	return clonePost(p), nil
}

func (s *Store) UnlikePost(userID, postID int64) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return entity.Post{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	if s.postLikes.remove(userID, postID) {
		decrement(&p.Likes)
	}
	return clonePost(p), nil
}

func (s *Store) HasLikedPost(userID, postID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postLikes.has(userID, postID)
}

func (s *Store) SharePost(postID int64) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return entity.Post{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	p.Shares++
	return clonePost(p), nil
}

// AddReaction sets the user's reaction on a post, replacing any earlier one.
func (s *Store) AddReaction(userID, postID int64, r entity.ReactionType) error {
	if !entity.ValidReaction(r) {
		return fmt.Errorf("reaction %q: %w", r, ErrInvalidReaction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	s.reactions.put(userID, postID, r)
	return nil
}

func (s *Store) RemoveReaction(userID, postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reactions.remove(userID, postID)
}

func (s *Store) GetUserReaction(userID, postID int64) (entity.ReactionType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reactions.get(userID, postID)
}

// GetPostReactions counts reactions on a post by type.
func (s *Store) GetPostReactions(postID int64) map[entity.ReactionType]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[entity.ReactionType]int)
	for _, userID := range s.reactions.to(postID) {
		r, _ := s.reactions.get(userID, postID)
		counts[r]++
	}
	return counts
}
