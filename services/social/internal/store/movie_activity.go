package store

import (
	"fmt"
	"time"

	"cinesocial/services/social/internal/entity"
)

func (s *Store) AddMovieComment(userID, movieID int64, content string) (entity.MovieComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return entity.MovieComment{}, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	now := s.now()
	c := &entity.MovieComment{
		ID:        s.next(seqMovieComment),
		MovieID:   movieID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.movieComments[c.ID] = c
	m.Comments++
	return *c, nil
}

func (s *Store) GetMovieComments(movieID int64) []entity.MovieComment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.MovieComment
	for _, c := range s.movieComments {
		if c.MovieID == movieID {
			out = append(out, *c)
		}
	}
	newestFirst(out, func(c entity.MovieComment) (time.Time, int64) { return c.CreatedAt, c.ID })
	return out
}

func (s *Store) DeleteMovieComment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.movieComments[id]
	if !ok {
		return nil
	}
	if m, ok := s.movies[c.MovieID]; ok {
		decrement(&m.Comments)
	}
	s.movieCommentLikes.removeTo(id)
	delete(s.movieComments, id)
	return nil
}

func (s *Store) LikeMovieComment(userID, commentID int64) (entity.MovieComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.movieComments[commentID]
	if !ok {
		return entity.MovieComment{}, fmt.Errorf("movie comment %d: %w", commentID, ErrNotFound)
	}
	if s.movieCommentLikes.put(userID, commentID, struct{}{}) {
		c.Likes++
	}
	return *c, nil
}

func (s *Store) UnlikeMovieComment(userID, commentID int64) (entity.MovieComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.movieComments[commentID]
	if !ok {
		return entity.MovieComment{}, fmt.Errorf("movie comment %d: %w", commentID, ErrNotFound)
	}
	if s.movieCommentLikes.remove(userID, commentID) {
		decrement(&c.Likes)
	}
	return *c, nil
}

func (s *Store) ReportMovie(userID, movieID int64, reason string, description *string) entity.MovieReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r := &entity.MovieReport{
		ID:          s.next(seqMovieReport),
		MovieID:     movieID,
		UserID:      userID,
		Reason:      reason,
		Description: clonePtr(description),
		Status:      entity.ReportStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.movieReports[r.ID] = r
	return cloneMovieReport(r)
}

func (s *Store) GetMovieReport(id int64) (entity.MovieReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.movieReports[id]
	if !ok {
		return entity.MovieReport{}, false
	}
	return cloneMovieReport(r), true
}

// GetMovieReports lists reports against a movie, newest first.
func (s *Store) GetMovieReports(movieID int64) []entity.MovieReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.MovieReport
	for _, r := range s.movieReports {
		if r.MovieID == movieID {
			out = append(out, cloneMovieReport(r))
		}
	}
	newestFirst(out, func(r entity.MovieReport) (time.Time, int64) { return r.CreatedAt, r.ID })
	return out
}

func (s *Store) UpdateReportStatus(id int64, status entity.ReportStatus) (entity.MovieReport, error) {
	if !entity.ValidReportStatus(status) {
		return entity.MovieReport{}, fmt.Errorf("report status %q: %w", status, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.movieReports[id]
	if !ok {
		return entity.MovieReport{}, fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	r.Status = status
	r.UpdatedAt = s.now()
	return cloneMovieReport(r), nil
}

// RateMovie records the user's rating, replacing an earlier one, and refreshes
// the movie's rating aggregates.
func (s *Store) RateMovie(userID, movieID int64, rating int, review *string) (entity.MovieRating, error) {
	if rating < 1 || rating > 5 {
		return entity.MovieRating{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[movieID]; !ok {
		return entity.MovieRating{}, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	now := s.now()
	var r *entity.MovieRating
	if id, ok := s.ratingIndex.get(userID, movieID); ok {
		r = s.movieRatings[id]
		r.Rating = rating
		r.Review = clonePtr(review)
		r.UpdatedAt = now
	} else {
		r = &entity.MovieRating{
			ID:        s.next(seqMovieRating),
			MovieID:   movieID,
			UserID:    userID,
			Rating:    rating,
			Review:    clonePtr(review),
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.movieRatings[r.ID] = r
		s.ratingIndex.put(userID, movieID, r.ID)
	}
	s.refreshRatingLocked(movieID)
	return cloneMovieRating(r), nil
}

func (s *Store) refreshRatingLocked(movieID int64) {
	m, ok := s.movies[movieID]
	if !ok {
		return
	}
	total, sum := 0, 0
	for _, userID := range s.ratingIndex.to(movieID) {
		id, _ := s.ratingIndex.get(userID, movieID)
		sum += s.movieRatings[id].Rating
		total++
	}
	m.TotalRatings = total
	m.AverageRating = 0
	if total > 0 {
		m.AverageRating = float64(sum) / float64(total)
	}
}

func (s *Store) GetMovieRatings(movieID int64) []entity.MovieRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.MovieRating
	for _, userID := range s.ratingIndex.to(movieID) {
		id, _ := s.ratingIndex.get(userID, movieID)
		out = append(out, cloneMovieRating(s.movieRatings[id]))
	}
	newestFirst(out, func(r entity.MovieRating) (time.Time, int64) { return r.UpdatedAt, r.ID })
	return out
}

func (s *Store) RecordWatch(userID int64, in entity.NewWatchRecord) entity.WatchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &entity.WatchRecord{
		ID:            s.next(seqWatchRecord),
		MovieID:       in.MovieID,
		UserID:        userID,
		WatchDuration: in.WatchDuration,
		LastPosition:  in.LastPosition,
		Completed:     in.Completed,
		WatchedAt:     s.now(),
	}
	s.watchHistory[w.ID] = w
	return *w
}

// GetWatchHistory lists the user's watch records, most recent first.
func (s *Store) GetWatchHistory(userID int64) []entity.WatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.WatchRecord
	for _, w := range s.watchHistory {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	newestFirst(out, func(w entity.WatchRecord) (time.Time, int64) { return w.WatchedAt, w.ID })
	return out
}
