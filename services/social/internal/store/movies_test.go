package store

import (
	"testing"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovie_Defaults(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")

	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat", VideoURL: "https://cdn/heat.mp4"})

	assert.Equal(t, entity.MovieStatusPending, m.Status)
	assert.Equal(t, entity.MovieTypeMovie, m.Type)
	assert.True(t, m.CopyrightStatus.IsSafe)
	assert.Equal(t, 0, m.Views)
	assert.Equal(t, 0, m.Likes)
	assert.Equal(t, 0, m.TotalRatings)
}

func TestUnlikeMovie_FloorsAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})

	got, err := s.UnlikeMovie(a.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)

	_, err = s.LikeMovie(a.ID, m.ID)
	require.NoError(t, err)
	got, err = s.LikeMovie(a.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
	assert.True(t, s.HasLikedMovie(a.ID, m.ID))

	_, err = s.LikeMovie(a.ID, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieCommentCounter(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})

	c1, err := s.AddMovieComment(a.ID, m.ID, "great")
	require.NoError(t, err)
	c2, err := s.AddMovieComment(a.ID, m.ID, "long")
	require.NoError(t, err)
	_, err = s.LikeMovieComment(a.ID, c1.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteMovieComment(c1.ID))
	require.NoError(t, s.DeleteMovieComment(c1.ID))

	got, _ := s.GetMovie(m.ID)
	assert.Equal(t, 1, got.Comments)
	comments := s.GetMovieComments(m.ID)
	require.Len(t, comments, 1)
	assert.Equal(t, c2.ID, comments[0].ID)
}

func TestViewsAndShares(t *testing.T) {
	s, _ := newTestStore(t)
	m := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})

	_, err := s.IncrementMovieViews(m.ID)
	require.NoError(t, err)
	got, err := s.IncrementMovieViews(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	got, err = s.ShareMovie(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Shares)

	_, err = s.IncrementMovieViews(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprovedDMCAClaim_RemovesMovie(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})
	_, err := s.UpdateMovieStatus(m.ID, entity.MovieStatusApproved)
	require.NoError(t, err)

	first := s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: m.ID, ClaimantName: "Studio", ClaimantEmail: "legal@studio.com"})
	second := s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: m.ID, ClaimantName: "Other"})

	pending := s.GetPendingDMCAClaims()
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)

	msg := "taken down"
	resolved, err := s.UpdateDMCAClaimStatus(first.ID, entity.DMCAStatusApproved, &msg)
	require.NoError(t, err)
	assert.Equal(t, entity.DMCAStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ResponseMessage)
	assert.Equal(t, msg, *resolved.ResponseMessage)

	got, _ := s.GetMovie(m.ID)
	assert.Equal(t, entity.MovieStatusRemovedCopyright, got.Status)

	_, err = s.UpdateDMCAClaimStatus(first.ID, entity.DMCAStatusRejected, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.UpdateDMCAClaimStatus(second.ID, entity.DMCAStatusPending, nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.Len(t, s.GetPendingDMCAClaims(), 1)
	assert.Len(t, s.GetMovieDMCAClaims(m.ID), 2)
}

func TestRejectedDMCAClaim_KeepsMovie(t *testing.T) {
	s, _ := newTestStore(t)
	m := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})
	c := s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: m.ID})

	_, err := s.UpdateDMCAClaimStatus(c.ID, entity.DMCAStatusRejected, nil)
	require.NoError(t, err)

	got, _ := s.GetMovie(m.ID)
	assert.Equal(t, entity.MovieStatusPending, got.Status)
}

func TestRateMovie_ReplacesAndAverages(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})

	_, err := s.RateMovie(a.ID, m.ID, 5, nil)
	require.NoError(t, err)
	_, err = s.RateMovie(b.ID, m.ID, 2, nil)
	require.NoError(t, err)
	review := "changed my mind"
	_, err = s.RateMovie(b.ID, m.ID, 4, &review)
	require.NoError(t, err)

	got, _ := s.GetMovie(m.ID)
	assert.Equal(t, 2, got.TotalRatings)
	assert.InDelta(t, 4.5, got.AverageRating, 0.0001)
	assert.Len(t, s.GetMovieRatings(m.ID), 2)

	_, err = s.RateMovie(a.ID, m.ID, 6, nil)
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = s.RateMovie(a.ID, m.ID, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestWatchlist(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	m1 := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})
	m2 := s.CreateMovie(a.ID, entity.NewMovie{Title: "Ronin"})

	s.AddToWatchlist(a.ID, m1.ID)
	s.AddToWatchlist(a.ID, m2.ID)
	s.AddToWatchlist(a.ID, m1.ID)

	list := s.GetWatchlist(a.ID)
	require.Len(t, list, 2)
	assert.Equal(t, m2.ID, list[0].ID)
	assert.Equal(t, m1.ID, list[1].ID)
	assert.True(t, s.IsInWatchlist(a.ID, m1.ID))

	s.RemoveFromWatchlist(a.ID, m1.ID)
	assert.False(t, s.IsInWatchlist(a.ID, m1.ID))
	assert.Len(t, s.GetWatchlist(a.ID), 1)
}

func TestDeleteMovie_Cascades(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})
	_, err := s.LikeMovie(a.ID, m.ID)
	require.NoError(t, err)
	s.AddToWatchlist(a.ID, m.ID)
	_, err = s.AddMovieComment(a.ID, m.ID, "great")
	require.NoError(t, err)
	_, err = s.RateMovie(a.ID, m.ID, 5, nil)
	require.NoError(t, err)
	report := s.ReportMovie(a.ID, m.ID, "spam", nil)
	s.RecordWatch(a.ID, entity.NewWatchRecord{MovieID: m.ID, WatchDuration: 60})

	require.NoError(t, s.DeleteMovie(m.ID))

	_, ok := s.GetMovie(m.ID)
	assert.False(t, ok)
	assert.False(t, s.HasLikedMovie(a.ID, m.ID))
	assert.False(t, s.IsInWatchlist(a.ID, m.ID))
	assert.Empty(t, s.GetMovieComments(m.ID))
	assert.Empty(t, s.GetMovieRatings(m.ID))
	_, ok = s.GetMovieReport(report.ID)
	assert.True(t, ok)
	assert.Len(t, s.GetWatchHistory(a.ID), 1)
}

func TestUpdateMovieMetadata(t *testing.T) {
	s, _ := newTestStore(t)
	m := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})
	rating := "R"

	got, err := s.UpdateMovieMetadata(m.ID, entity.MovieClassification{
		Genre:         []string{"crime"},
		AITags:        []string{"heist"},
		ContentRating: &rating,
		CopyrightStatus: &entity.CopyrightStatus{
			IsSafe:           false,
			Confidence:       0.4,
			PotentialMatches: []string{"Heat (1995)"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"crime"}, got.Metadata.Genre)
	assert.Equal(t, []string{"heist"}, got.Metadata.AITags)
	require.NotNil(t, got.Metadata.ContentRating)
	assert.Equal(t, "R", *got.Metadata.ContentRating)
	assert.False(t, got.CopyrightStatus.IsSafe)

	_, err = s.UpdateMovieMetadata(99, entity.MovieClassification{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMovieStatus_Invalid(t *testing.T) {
	s, _ := newTestStore(t)
	m := s.CreateMovie(1, entity.NewMovie{Title: "Heat"})

	_, err := s.UpdateMovieStatus(m.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, err := s.UpdateMovieStatus(m.ID, entity.MovieStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.MovieStatusApproved, got.Status)

	assert.Len(t, s.GetMovies(entity.MovieStatusApproved), 1)
	assert.Empty(t, s.GetMovies(entity.MovieStatusPending))
	assert.Len(t, s.GetMovies(""), 1)
}

func TestReports(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.ReportMovie(1, 1, "spam", nil)
	assert.Equal(t, entity.ReportStatusPending, r.Status)

	got, err := s.UpdateReportStatus(r.ID, entity.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, got.Status)

	_, err = s.UpdateReportStatus(r.ID, "closed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = s.UpdateReportStatus(99, entity.ReportStatusResolved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieActivity_MissingMovie(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")

	_, err := s.AddMovieComment(a.ID, 1, "early")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.RateMovie(a.ID, 1, 5, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	m := s.CreateMovie(a.ID, entity.NewMovie{Title: "Heat"})
	assert.Equal(t, int64(1), m.ID)
	assert.Equal(t, 0, m.Comments)
	assert.Equal(t, 0, m.TotalRatings)
	assert.Empty(t, s.GetMovieComments(m.ID))
	assert.Empty(t, s.GetMovieRatings(m.ID))
}

func TestRemovedCopyright_IsTerminal(t *testing.T) {
	s, _ := newTestStore(t)
	m := s.CreateMovie(1, entity.NewMovie{Title: "Bootleg"})
	claim := s.CreateDMCAClaim(entity.NewDMCAClaim{MovieID: m.ID, ClaimantName: "Studio"})
	_, err := s.UpdateDMCAClaimStatus(claim.ID, entity.DMCAStatusApproved, nil)
	require.NoError(t, err)

	for _, status := range []entity.MovieStatus{
		entity.MovieStatusPending,
		entity.MovieStatusApproved,
		entity.MovieStatusRejected,
		entity.MovieStatusRemovedCopyright,
	} {
		_, err = s.UpdateMovieStatus(m.ID, status)
		assert.ErrorIs(t, err, ErrInvalidTransition, string(status))
	}

	for _, action := range []entity.ModerationAction{entity.ModerationApprove, entity.ModerationReject} {
		item := s.CreateModerationItem(entity.NewModerationItem{ContentType: entity.ContentTypeMovie, ContentID: m.ID})
		reviewed, err := s.ReviewModerationItem(item.ID, entity.ModerationDecision{ModeratorID: 1, Action: action})
		require.NoError(t, err)
		assert.Equal(t, entity.ModerationActioned, reviewed.Status)
	}

	got, ok := s.GetMovie(m.ID)
	require.True(t, ok)
	assert.Equal(t, entity.MovieStatusRemovedCopyright, got.Status)
}
