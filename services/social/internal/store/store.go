// Package store holds every domain entity in memory, together with the relation
// indices between them and the denormalized counters derived from those
// relations. A single Store is created at startup and shared by pointer.
package store

import (
	"sync"
	"time"

	"cinesocial/services/social/internal/entity"
)

// DefaultStoryTTL is how long a story stays visible when the caller does not
// set an expiry.
const DefaultStoryTTL = 24 * time.Hour

const (
	seqUser          = "users"
	seqPost          = "posts"
	seqComment       = "comments"
	seqStory         = "stories"
	seqConversation  = "conversations"
	seqMessage       = "messages"
	seqCommunity     = "communities"
	seqMovie         = "movies"
	seqMovieComment  = "movie_comments"
	seqMovieReport   = "movie_reports"
	seqMovieRating   = "movie_ratings"
	seqWatchRecord   = "watch_history"
	seqDMCAClaim     = "dmca_claims"
	seqFriendRequest = "friend_requests"
	seqFriendship    = "friendships"
	seqModeration    = "moderation_queue"
)

type Option func(*Store)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithStoryTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.storyTTL = ttl
		}
	}
}

type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	storyTTL time.Duration
	seq      map[string]int64

	users          map[int64]*entity.User
	usernames      map[string]int64
	emails         map[string]int64
	posts          map[int64]*entity.Post
	comments       map[int64]*entity.Comment
	stories        map[int64]*entity.Story
	conversations  map[int64]*entity.Conversation
	messages       map[int64]*entity.Message
	communities    map[int64]*entity.Community
	movies         map[int64]*entity.Movie
	movieComments  map[int64]*entity.MovieComment
	movieReports   map[int64]*entity.MovieReport
	movieRatings   map[int64]*entity.MovieRating
	watchHistory   map[int64]*entity.WatchRecord
	dmcaClaims     map[int64]*entity.DMCAClaim
	friendRequests map[int64]*entity.FriendRequest
	friendships    map[int64]*entity.Friendship
	moderation     map[int64]*entity.ModerationItem

	postLikes         *relation[struct{}]            // user -> post
	commentLikes      *relation[struct{}]            // user -> comment
	follows           *relation[struct{}]            // follower -> followed
	reactions         *relation[entity.ReactionType] // user -> post
	members           *relation[string]              // user -> community, role
	watchlist         *relation[time.Time]           // user -> movie, added at
	movieLikes        *relation[struct{}]            // user -> movie
	movieCommentLikes *relation[struct{}]            // user -> movie comment
	ratingIndex       *relation[int64]               // user -> movie, rating id
	friends           *relation[int64]               // canonical pair, friendship id
}

func New(opts ...Option) *Store {
	s := &Store{
		now:      time.Now,
		storyTTL: DefaultStoryTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.seq = make(map[string]int64)
	s.users = make(map[int64]*entity.User)
	s.usernames = make(map[string]int64)
	s.emails = make(map[string]int64)
	s.posts = make(map[int64]*entity.Post)
	s.comments = make(map[int64]*entity.Comment)
	s.stories = make(map[int64]*entity.Story)
	s.conversations = make(map[int64]*entity.Conversation)
	s.messages = make(map[int64]*entity.Message)
	s.communities = make(map[int64]*entity.Community)
	s.movies = make(map[int64]*entity.Movie)
	s.movieComments = make(map[int64]*entity.MovieComment)
	s.movieReports = make(map[int64]*entity.MovieReport)
	s.movieRatings = make(map[int64]*entity.MovieRating)
	s.watchHistory = make(map[int64]*entity.WatchRecord)
	s.dmcaClaims = make(map[int64]*entity.DMCAClaim)
	s.friendRequests = make(map[int64]*entity.FriendRequest)
	s.friendships = make(map[int64]*entity.Friendship)
	s.moderation = make(map[int64]*entity.ModerationItem)

	s.postLikes = newRelation[struct{}]()
	s.commentLikes = newRelation[struct{}]()
	s.follows = newRelation[struct{}]()
	s.reactions = newRelation[entity.ReactionType]()
	s.members = newRelation[string]()
	s.watchlist = newRelation[time.Time]()
	s.movieLikes = newRelation[struct{}]()
	s.movieCommentLikes = newRelation[struct{}]()
	s.ratingIndex = newRelation[int64]()
	s.friends = newRelation[int64]()
}

// next hands out the next id of a sequence. Ids start at 1 and are never reused.
func (s *Store) next(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *Store) StoryTTL() time.Duration {
	return s.storyTTL
}

// Stats is a point-in-time count of the store's collections.
type Stats struct {
	Users                 int `json:"users"`
	Posts                 int `json:"posts"`
	Comments              int `json:"comments"`
	Stories               int `json:"stories"`
	ActiveStories         int `json:"active_stories"`
	Conversations         int `json:"conversations"`
	Messages              int `json:"messages"`
	Communities           int `json:"communities"`
	Movies                int `json:"movies"`
	PendingMovies         int `json:"pending_movies"`
	MovieComments         int `json:"movie_comments"`
	PendingReports        int `json:"pending_reports"`
	PendingDMCAClaims     int `json:"pending_dmca_claims"`
	PendingFriendRequests int `json:"pending_friend_requests"`
	Friendships           int `json:"friendships"`
	Follows               int `json:"follows"`
	PendingModeration     int `json:"pending_moderation"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	st := Stats{
		Users:         len(s.users),
		Posts:         len(s.posts),
		Comments:      len(s.comments),
		Stories:       len(s.stories),
		Conversations: len(s.conversations),
		Messages:      len(s.messages),
		Communities:   len(s.communities),
		Movies:        len(s.movies),
		MovieComments: len(s.movieComments),
		Friendships:   len(s.friendships),
		Follows:       s.follows.len(),
	}
	for _, story := range s.stories {
		if !story.Expired(now) {
			st.ActiveStories++
		}
	}
	for _, m := range s.movies {
		if m.Status == entity.MovieStatusPending {
			st.PendingMovies++
		}
	}
	for _, r := range s.movieReports {
		if r.Status == entity.ReportStatusPending {
			st.PendingReports++
		}
	}
	for _, c := range s.dmcaClaims {
		if c.Status == entity.DMCAStatusPending {
			st.PendingDMCAClaims++
		}
	}
	for _, fr := range s.friendRequests {
		if fr.Status == entity.FriendRequestPending {
			st.PendingFriendRequests++
		}
	}
	for _, item := range s.moderation {
		if item.Status == entity.ModerationPending {
			st.PendingModeration++
		}
	}
	return st
}

func decrement(n *int) {
	if *n > 0 {
		*n--
	}
}
