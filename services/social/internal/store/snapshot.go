package store

import (
	"time"

	"cinesocial/services/social/internal/entity"
)

// Edge is one entry of a plain relation, e.g. a like or a follow.
type Edge struct {
	From int64
	To   int64
}

type Reaction struct {
	UserID int64
	PostID int64
	Type   entity.ReactionType
}

type Membership struct {
	UserID      int64
	CommunityID int64
	Role        string
}

type WatchlistEntry struct {
	UserID  int64
	MovieID int64
	AddedAt time.Time
}

// Snapshot is a full copy of the store's state. Collections are ordered by id
// and edges by (From, To).
type Snapshot struct {
	Sequences map[string]int64

	Users          []entity.User
	Posts          []entity.Post
	Comments       []entity.Comment
	Stories        []entity.Story
	Conversations  []entity.Conversation
	Messages       []entity.Message
	Communities    []entity.Community
	Movies         []entity.Movie
	MovieComments  []entity.MovieComment
	MovieReports   []entity.MovieReport
	MovieRatings   []entity.MovieRating
	WatchHistory   []entity.WatchRecord
	DMCAClaims     []entity.DMCAClaim
	FriendRequests []entity.FriendRequest
	Friendships    []entity.Friendship
	Moderation     []entity.ModerationItem

	PostLikes         []Edge
	CommentLikes      []Edge
	Follows           []Edge
	MovieLikes        []Edge
	MovieCommentLikes []Edge
	Reactions         []Reaction
	Memberships       []Membership
	Watchlist         []WatchlistEntry
}

func collect[T any](m map[int64]*T, clone func(*T) T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, clone(v))
	}
	sortByID(out, id)
	return out
}

func copyOf[T any](v *T) T { return *v }

func edges(r *relation[struct{}]) []Edge {
	out := make([]Edge, 0, r.len())
	r.each(func(a, b int64, _ struct{}) { out = append(out, Edge{From: a, To: b}) })
	return out
}

// Snapshot copies the whole store under the read lock.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Sequences: make(map[string]int64, len(s.seq)),

		Users:          collect(s.users, cloneUser, func(v entity.User) int64 { return v.ID }),
		Posts:          collect(s.posts, clonePost, func(v entity.Post) int64 { return v.ID }),
		Comments:       collect(s.comments, cloneComment, func(v entity.Comment) int64 { return v.ID }),
		Stories:        collect(s.stories, cloneStory, func(v entity.Story) int64 { return v.ID }),
		Conversations:  collect(s.conversations, cloneConversation, func(v entity.Conversation) int64 { return v.ID }),
		Messages:       collect(s.messages, cloneMessage, func(v entity.Message) int64 { return v.ID }),
		Communities:    collect(s.communities, cloneCommunity, func(v entity.Community) int64 { return v.ID }),
		Movies:         collect(s.movies, cloneMovie, func(v entity.Movie) int64 { return v.ID }),
		MovieComments:  collect(s.movieComments, copyOf[entity.MovieComment], func(v entity.MovieComment) int64 { return v.ID }),
		MovieReports:   collect(s.movieReports, cloneMovieReport, func(v entity.MovieReport) int64 { return v.ID }),
		MovieRatings:   collect(s.movieRatings, cloneMovieRating, func(v entity.MovieRating) int64 { return v.ID }),
		WatchHistory:   collect(s.watchHistory, copyOf[entity.WatchRecord], func(v entity.WatchRecord) int64 { return v.ID }),
		DMCAClaims:     collect(s.dmcaClaims, cloneDMCAClaim, func(v entity.DMCAClaim) int64 { return v.ID }),
		FriendRequests: collect(s.friendRequests, cloneFriendRequest, func(v entity.FriendRequest) int64 { return v.ID }),
		Friendships:    collect(s.friendships, copyOf[entity.Friendship], func(v entity.Friendship) int64 { return v.ID }),
		Moderation:     collect(s.moderation, cloneModerationItem, func(v entity.ModerationItem) int64 { return v.ID }),

		PostLikes:         edges(s.postLikes),
		CommentLikes:      edges(s.commentLikes),
		Follows:           edges(s.follows),
		MovieLikes:        edges(s.movieLikes),
		MovieCommentLikes: edges(s.movieCommentLikes),
	}
	for k, v := range s.seq {
		snap.Sequences[k] = v
	}
	s.reactions.each(func(a, b int64, r entity.ReactionType) {
		snap.Reactions = append(snap.Reactions, Reaction{UserID: a, PostID: b, Type: r})
	})
	s.members.each(func(a, b int64, role string) {
		snap.Memberships = append(snap.Memberships, Membership{UserID: a, CommunityID: b, Role: role})
	})
	s.watchlist.each(func(a, b int64, at time.Time) {
		snap.Watchlist = append(snap.Watchlist, WatchlistEntry{UserID: a, MovieID: b, AddedAt: at})
	})
	return snap
}

func load[T any](dst map[int64]*T, items []T, clone func(*T) T, id func(T) int64, seq map[string]int64, kind string) {
	for i := range items {
		v := clone(&items[i])
		key := id(v)
		dst[key] = &v
		if key > seq[kind] {
			seq[kind] = key
		}
	}
}

// Restore replaces the store's state with snap. Sequences never fall below the
// highest id present, so ids stay unique after a restore.
func (s *Store) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	for k, v := range snap.Sequences {
		s.seq[k] = v
	}

	load(s.users, snap.Users, cloneUser, func(v entity.User) int64 { return v.ID }, s.seq, seqUser)
	load(s.posts, snap.Posts, clonePost, func(v entity.Post) int64 { return v.ID }, s.seq, seqPost)
	load(s.comments, snap.Comments, cloneComment, func(v entity.Comment) int64 { return v.ID }, s.seq, seqComment)
	load(s.stories, snap.Stories, cloneStory, func(v entity.Story) int64 { return v.ID }, s.seq, seqStory)
	load(s.conversations, snap.Conversations, cloneConversation, func(v entity.Conversation) int64 { return v.ID }, s.seq, seqConversation)
	load(s.messages, snap.Messages, cloneMessage, func(v entity.Message) int64 { return v.ID }, s.seq, seqMessage)
	load(s.communities, snap.Communities, cloneCommunity, func(v entity.Community) int64 { return v.ID }, s.seq, seqCommunity)
	load(s.movies, snap.Movies, cloneMovie, func(v entity.Movie) int64 { return v.ID }, s.seq, seqMovie)
	load(s.movieComments, snap.MovieComments, copyOf[entity.MovieComment], func(v entity.MovieComment) int64 { return v.ID }, s.seq, seqMovieComment)
	load(s.movieReports, snap.MovieReports, cloneMovieReport, func(v entity.MovieReport) int64 { return v.ID }, s.seq, seqMovieReport)
	load(s.movieRatings, snap.MovieRatings, cloneMovieRating, func(v entity.MovieRating) int64 { return v.ID }, s.seq, seqMovieRating)
	load(s.watchHistory, snap.WatchHistory, copyOf[entity.WatchRecord], func(v entity.WatchRecord) int64 { return v.ID }, s.seq, seqWatchRecord)
	load(s.dmcaClaims, snap.DMCAClaims, cloneDMCAClaim, func(v entity.DMCAClaim) int64 { return v.ID }, s.seq, seqDMCAClaim)
	load(s.friendRequests, snap.FriendRequests, cloneFriendRequest, func(v entity.FriendRequest) int64 { return v.ID }, s.seq, seqFriendRequest)
	load(s.friendships, snap.Friendships, copyOf[entity.Friendship], func(v entity.Friendship) int64 { return v.ID }, s.seq, seqFriendship)
	load(s.moderation, snap.Moderation, cloneModerationItem, func(v entity.ModerationItem) int64 { return v.ID }, s.seq, seqModeration)

	for id, u := range s.users {
		s.usernames[u.Username] = id
		s.emails[u.Email] = id
	}
	for id, f := range s.friendships {
		k := canonical(f.User1ID, f.User2ID)
		f.User1ID, f.User2ID = k.a, k.b
		s.friends.put(k.a, k.b, id)
	}
	for id, r := range s.movieRatings {
		s.ratingIndex.put(r.UserID, r.MovieID, id)
	}

	for _, e := range snap.PostLikes {
		s.postLikes.put(e.From, e.To, struct{}{})
	}
	for _, e := range snap.CommentLikes {
		s.commentLikes.put(e.From, e.To, struct{}{})
	}
	for _, e := range snap.Follows {
		s.follows.put(e.From, e.To, struct{}{})
	}
	for _, e := range snap.MovieLikes {
		s.movieLikes.put(e.From, e.To, struct{}{})
	}
	for _, e := range snap.MovieCommentLikes {
		s.movieCommentLikes.put(e.From, e.To, struct{}{})
	}
	for _, r := range snap.Reactions {
		s.reactions.put(r.UserID, r.PostID, r.Type)
	}
	for _, m := range snap.Memberships {
		s.members.put(m.UserID, m.CommunityID, m.Role)
	}
	for _, w := range snap.Watchlist {
		s.watchlist.put(w.UserID, w.MovieID, w.AddedAt)
	}
}
