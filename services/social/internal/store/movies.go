package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func movieKey(m entity.Movie) (time.Time, int64) { return m.CreatedAt, m.ID }

// CreateMovie stores an upload awaiting review. It starts pending, with zero
// counters and a clean copyright status.
func (s *Store) CreateMovie(uploaderID int64, in entity.NewMovie) entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := in.Type
	if kind == "" {
		kind = entity.MovieTypeMovie
	}
	now := s.now()
	m := &entity.Movie{
		ID:            s.next(seqMovie),
		UploaderID:    uploaderID,
		Title:         in.Title,
		Description:   in.Description,
		VideoURL:      in.VideoURL,
		ThumbnailURL:  clonePtr(in.ThumbnailURL),
		TrailerURL:    clonePtr(in.TrailerURL),
		Type:          kind,
		SeasonNumber:  clonePtr(in.SeasonNumber),
		EpisodeNumber: clonePtr(in.EpisodeNumber),
		Duration:      in.Duration,
		Status:        entity.MovieStatusPending,
		Metadata:      cloneMetadata(in.Metadata),
		CopyrightStatus: entity.CopyrightStatus{
			IsSafe:           true,
			Confidence:       1,
			PotentialMatches: []string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.movies[m.ID] = m
	return cloneMovie(m)
}

func (s *Store) GetMovie(id int64) (entity.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return entity.Movie{}, false
	}
	return cloneMovie(m), true
}

// GetMovies lists movies newest first, filtered by status unless it is empty.
func (s *Store) GetMovies(status entity.MovieStatus) []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Movie
	for _, m := range s.movies {
		if status == "" || m.Status == status {
			out = append(out, cloneMovie(m))
		}
	}
	newestFirst(out, movieKey)
	return out
}

func (s *Store) UpdateMovieStatus(id int64, status entity.MovieStatus) (entity.Movie, error) {
	if !entity.ValidMovieStatus(status) {
		return entity.Movie{}, fmt.Errorf("movie status %q: %w", status, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return entity.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	if m.Status == entity.MovieStatusRemovedCopyright {
		return entity.Movie{}, fmt.Errorf("movie %d is %s: %w", id, m.Status, ErrInvalidTransition)
	}
	m.Status = status
	m.UpdatedAt = s.now()
	return cloneMovie(m), nil
}

// UpdateMovieMetadata merges classifier output into the movie as given.
func (s *Store) UpdateMovieMetadata(id int64, c entity.MovieClassification) (entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return entity.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	if c.Genre != nil {
		m.Metadata.Genre = cloneSlice(c.Genre)
	}
	if c.Tags != nil {
		m.Metadata.Tags = cloneSlice(c.Tags)
	}
	if c.AITags != nil {
		m.Metadata.AITags = cloneSlice(c.AITags)
	}
	if c.ContentRating != nil {
		m.Metadata.ContentRating = clonePtr(c.ContentRating)
	}
	if c.Language != nil {
		m.Metadata.Language = clonePtr(c.Language)
	}
	if c.CopyrightStatus != nil {
		m.CopyrightStatus = cloneCopyright(*c.CopyrightStatus)
	}
	m.UpdatedAt = s.now()
	return cloneMovie(m), nil
}

// DeleteMovie removes the movie along with its likes, watchlist entries,
// comments and ratings. Reports, DMCA claims and watch history are kept.
func (s *Store) DeleteMovie(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return nil
	}
	s.movieLikes.removeTo(id)
	s.watchlist.removeTo(id)
	for cid, c := range s.movieComments {
		if c.MovieID == id {
			delete(s.movieComments, cid)
			s.movieCommentLikes.removeTo(cid)
		}
	}
	for _, userID := range s.ratingIndex.to(id) {
		ratingID, _ := s.ratingIndex.get(userID, id)
		delete(s.movieRatings, ratingID)
	}
	s.ratingIndex.removeTo(id)
	delete(s.movies, id)
	return nil
}

func (s *Store) IncrementMovieViews(id int64) (entity.Movie, error) {
	return s.bumpMovie(id, func(m *entity.Movie) { m.Views++ })
}

func (s *Store) ShareMovie(id int64) (entity.Movie, error) {
	return s.bumpMovie(id, func(m *entity.Movie) { m.Shares++ })
}

func (s *Store) bumpMovie(id int64, fn func(*entity.Movie)) (entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return entity.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	fn(m)
	return cloneMovie(m), nil
}

func (s *Store) LikeMovie(userID, movieID int64) (entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return entity.Movie{}, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	if s.movieLikes.put(userID, movieID, struct{}{}) {
		m.Likes++
	}
	return cloneMovie(m), nil
}

func (s *Store) UnlikeMovie(userID, movieID int64) (entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return entity.Movie{}, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	if s.movieLikes.remove(userID, movieID) {
		decrement(&m.Likes)
	}
	return cloneMovie(m), nil
}

func (s *Store) HasLikedMovie(userID, movieID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movieLikes.has(userID, movieID)
}

// AddToWatchlist is idempotent; the first add time is kept.
func (s *Store) AddToWatchlist(userID, movieID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.watchlist.has(userID, movieID) {
		s.watchlist.put(userID, movieID, s.now())
	}
}

func (s *Store) RemoveFromWatchlist(userID, movieID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlist.remove(userID, movieID)
}

func (s *Store) IsInWatchlist(userID, movieID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watchlist.has(userID, movieID)
}

// GetWatchlist returns the user's saved movies, most recently added first.
func (s *Store) GetWatchlist(userID int64) []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type saved struct {
		movie   entity.Movie
		addedAt time.Time
	}
	var items []saved
	for _, movieID := range s.watchlist.from(userID) {
		m, ok := s.movies[movieID]
		if !ok {
			continue
		}
		addedAt, _ := s.watchlist.get(userID, movieID)
		items = append(items, saved{movie: cloneMovie(m), addedAt: addedAt})
	}
	newestFirst(items, func(it saved) (time.Time, int64) { return it.addedAt, it.movie.ID })

	out := make([]entity.Movie, len(items))
	for i, it := range items {
		out[i] = it.movie
	}
	return out
}
