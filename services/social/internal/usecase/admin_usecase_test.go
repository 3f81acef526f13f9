package usecase

import (
	"context"
	"errors"
	"testing"

	"cinesocial/pkg/logger"
	"cinesocial/pkg/queue"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAdmin(t *testing.T) (*store.Store, *MockPublisher, AdminUseCase) {
	t.Helper()
	s := store.New()
	pub := new(MockPublisher)
	return s, pub, NewAdminUseCase(s, pub, logger.NewNop())
}

func TestReviewMovie_PublishesAfterUpdate(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})

	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e queue.Event) bool {
		return e.Type == queue.EventMovieReviewed &&
			e.EntityID == movie.ID &&
			e.ActorID == "7" &&
			e.Payload["status"] == "approved"
	})).Return(nil).Once()

	got, err := uc.ReviewMovie(context.Background(), 7, movie.ID, entity.MovieStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.MovieStatusApproved, got.Status)

	stored, _ := s.GetMovie(movie.ID)
	assert.Equal(t, entity.MovieStatusApproved, stored.Status)
	pub.AssertExpectations(t)
}

func TestReviewMovie_InvalidStatusDoesNotPublish(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})

	_, err := uc.ReviewMovie(context.Background(), 7, movie.ID, "archived")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	_, err = uc.ReviewMovie(context.Background(), 7, 99, entity.MovieStatusApproved)
	assert.ErrorIs(t, err, store.ErrNotFound)

	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestReviewMovie_PublishFailureKeepsChange(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})
	pub.On("Publish", mock.Anything, eventOfType(queue.EventMovieReviewed)).Return(errors.New("broker down"))

	got, err := uc.ReviewMovie(context.Background(), 7, movie.ID, entity.MovieStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.MovieStatusRejected, got.Status)

	stored, _ := s.GetMovie(movie.ID)
	assert.Equal(t, entity.MovieStatusRejected, stored.Status)
}

func TestResolveDMCAClaim(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Bootleg"})
	claim := s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: movie.ID, ClaimantName: "Studio"})
	pub.On("Publish", mock.Anything, eventOfType(queue.EventDMCAResolved)).Return(nil).Once()

	assert.Len(t, uc.PendingDMCA(), 1)

	msg := "taken down"
	resolved, err := uc.ResolveDMCAClaim(context.Background(), 1, claim.ID, entity.DMCAStatusApproved, &msg)
	require.NoError(t, err)
	assert.Equal(t, entity.DMCAStatusApproved, resolved.Status)

	stored, _ := s.GetMovie(movie.ID)
	assert.Equal(t, entity.MovieStatusRemovedCopyright, stored.Status)
	assert.Empty(t, uc.PendingDMCA())

	_, err = uc.ResolveDMCAClaim(context.Background(), 1, claim.ID, entity.DMCAStatusRejected, nil)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	_, err = uc.ReviewMovie(context.Background(), 1, movie.ID, entity.MovieStatusApproved)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)
	stored, _ = s.GetMovie(movie.ID)
	assert.Equal(t, entity.MovieStatusRemovedCopyright, stored.Status)
	pub.AssertExpectations(t)
}

func TestVerifyUser(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	u, err := s.CreateUser(entity.NewUser{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	pub.On("Publish", mock.Anything, eventOfType(queue.EventUserVerified)).Return(nil).Once()

	verified, err := uc.VerifyUser(context.Background(), 1, u.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = uc.VerifyUser(context.Background(), 1, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	pub.AssertExpectations(t)
}

func TestUpdateUserStatus(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	u, err := s.CreateUser(entity.NewUser{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e queue.Event) bool {
		return e.Type == queue.EventUserStatusChanged && e.Payload["status"] == "banned"
	})).Return(nil).Once()

	banned, err := uc.UpdateUserStatus(context.Background(), 1, u.ID, entity.UserStatusBanned)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusBanned, banned.Status)

	_, err = uc.UpdateUserStatus(context.Background(), 1, u.ID, "asleep")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
	pub.AssertExpectations(t)
}

func TestReviewModerationItem_RejectDeletesPost(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	post := s.CreatePost(2, entity.NewPost{Content: "spam"})
	item := s.CreateModerationItem(entity.NewModerationItem{ContentType: entity.ContentTypePost, ContentID: post.ID, Reason: "spam"})
	pub.On("Publish", mock.Anything, eventOfType(queue.EventModerationReviewed)).Return(nil).Once()

	require.Len(t, uc.ModerationQueue(entity.ModerationPending), 1)

	reviewed, err := uc.ReviewModerationItem(context.Background(), 5, item.ID, entity.ModerationReject, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationActioned, reviewed.Status)
	require.NotNil(t, reviewed.ModeratorID)
	assert.Equal(t, int64(5), *reviewed.ModeratorID)

	_, ok := s.GetPost(post.ID)
	assert.False(t, ok)
	assert.Empty(t, uc.ModerationQueue(entity.ModerationPending))

	_, err = uc.ReviewModerationItem(context.Background(), 5, item.ID, entity.ModerationApprove, nil)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)
	pub.AssertExpectations(t)
}

func TestUpdateReportStatus(t *testing.T) {
	s, pub, uc := setupAdmin(t)
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})
	report := s.ReportMovie(2, movie.ID, "spoilers", nil)
	pub.On("Publish", mock.Anything, eventOfType(queue.EventReportUpdated)).Return(nil).Once()

	updated, err := uc.UpdateReportStatus(context.Background(), 1, report.ID, entity.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, updated.Status)

	_, err = uc.UpdateReportStatus(context.Background(), 1, report.ID, "lost")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
	pub.AssertExpectations(t)
}

func TestNewAdminUseCase_NilPublisher(t *testing.T) {
	s := store.New()
	uc := NewAdminUseCase(s, nil, logger.NewNop())
	movie := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})

	_, err := uc.ReviewMovie(context.Background(), 1, movie.ID, entity.MovieStatusApproved)
	assert.NoError(t, err)
	assert.Len(t, uc.ListMovies(entity.MovieStatusApproved), 1)
}
