package usecase

import (
	"context"
	"strconv"

	"cinesocial/pkg/logger"
	"cinesocial/pkg/queue"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var adminActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cinesocial_admin_actions_total",
	Help: "Admin actions applied to the store, by event type and outcome.",
}, []string{"action", "outcome"})

// AdminUseCase is the admin console's view of the store. Every mutation is
// applied to the store first; the notifier only hears about it afterwards.
type AdminUseCase interface {
	ListMovies(status entity.MovieStatus) []entity.Movie
	ReviewMovie(ctx context.Context, actorID, movieID int64, status entity.MovieStatus) (entity.Movie, error)
	PendingDMCA() []entity.DMCAClaim
	ResolveDMCAClaim(ctx context.Context, actorID, claimID int64, status entity.DMCAStatus, response *string) (entity.DMCAClaim, error)
	VerifyUser(ctx context.Context, actorID, userID int64) (entity.User, error)
	UpdateUserStatus(ctx context.Context, actorID, userID int64, status entity.UserStatus) (entity.User, error)
	ModerationQueue(status entity.ModerationStatus) []entity.ModerationItem
	ReviewModerationItem(ctx context.Context, actorID, itemID int64, action entity.ModerationAction, notes *string) (entity.ModerationItem, error)
	UpdateReportStatus(ctx context.Context, actorID, reportID int64, status entity.ReportStatus) (entity.MovieReport, error)
}

type adminUseCase struct {
	store     *store.Store
	publisher queue.Publisher
	logger    *logger.Logger
}

func NewAdminUseCase(s *store.Store, publisher queue.Publisher, logger *logger.Logger) AdminUseCase {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &adminUseCase{
		store:     s,
		publisher: publisher,
		logger:    logger,
	}
}

func actor(id int64) string {
	return strconv.FormatInt(id, 10)
}

// notify publishes after a successful mutation. A broker failure is logged and
// swallowed: the store change already happened.
func (uc *adminUseCase) notify(ctx context.Context, event queue.Event) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		adminActionsTotal.WithLabelValues(event.Type, "publish_failed").Inc()
		uc.logger.Error("Failed to publish %s for %s %d: %v", event.Type, event.EntityType, event.EntityID, err)
		return
	}
	adminActionsTotal.WithLabelValues(event.Type, "ok").Inc()
}

func (uc *adminUseCase) rejected(action string, err error) {
	adminActionsTotal.WithLabelValues(action, "rejected").Inc()
	uc.logger.Warn("Admin action %s rejected: %v", action, err)
}

func (uc *adminUseCase) ListMovies(status entity.MovieStatus) []entity.Movie {
	return uc.store.GetMovies(status)
}

func (uc *adminUseCase) ReviewMovie(ctx context.Context, actorID, movieID int64, status entity.MovieStatus) (entity.Movie, error) {
	movie, err := uc.store.UpdateMovieStatus(movieID, status)
	if err != nil {
		uc.rejected(queue.EventMovieReviewed, err)
		return entity.Movie{}, err
	}

	uc.notify(ctx, queue.NewEvent(queue.EventMovieReviewed, "movie", movie.ID, actor(actorID)).
		With("status", string(movie.Status)).
		With("title", movie.Title))
	return movie, nil
}

func (uc *adminUseCase) PendingDMCA() []entity.DMCAClaim {
	return uc.store.GetPendingDMCAClaims()
}

func (uc *adminUseCase) ResolveDMCAClaim(ctx context.Context, actorID, claimID int64, status entity.DMCAStatus, response *string) (entity.DMCAClaim, error) {
	claim, err := uc.store.UpdateDMCAClaimStatus(claimID, status, response)
	if err != nil {
		uc.rejected(queue.EventDMCAResolved, err)
		return entity.DMCAClaim{}, err
	}

	event := queue.NewEvent(queue.EventDMCAResolved, "dmca_claim", claim.ID, actor(actorID)).
		With("status", string(claim.Status)).
		With("movie_id", strconv.FormatInt(claim.MovieID, 10))
	if claim.ResponseMessage != nil {
		event = event.With("response_message", *claim.ResponseMessage)
	}
	uc.notify(ctx, event)
	return claim, nil
}

func (uc *adminUseCase) VerifyUser(ctx context.Context, actorID, userID int64) (entity.User, error) {
	verified := true
	user, err := uc.store.UpdateUser(userID, entity.UserUpdate{IsVerified: &verified})
	if err != nil {
		uc.rejected(queue.EventUserVerified, err)
		return entity.User{}, err
	}

	uc.notify(ctx, queue.NewEvent(queue.EventUserVerified, "user", user.ID, actor(actorID)).
		With("username", user.Username))
	return user, nil
}

func (uc *adminUseCase) UpdateUserStatus(ctx context.Context, actorID, userID int64, status entity.UserStatus) (entity.User, error) {
	user, err := uc.store.UpdateUser(userID, entity.UserUpdate{Status: &status})
	if err != nil {
		uc.rejected(queue.EventUserStatusChanged, err)
		return entity.User{}, err
	}

	uc.notify(ctx, queue.NewEvent(queue.EventUserStatusChanged, "user", user.ID, actor(actorID)).
		With("username", user.Username).
		With("status", string(user.Status)))
	return user, nil
}

func (uc *adminUseCase) ModerationQueue(status entity.ModerationStatus) []entity.ModerationItem {
	return uc.store.GetModerationQueue(status)
}

func (uc *adminUseCase) ReviewModerationItem(ctx context.Context, actorID, itemID int64, action entity.ModerationAction, notes *string) (entity.ModerationItem, error) {
	item, err := uc.store.ReviewModerationItem(itemID, entity.ModerationDecision{
		ModeratorID: actorID,
		Action:      action,
		Notes:       notes,
	})
	if err != nil {
		uc.rejected(queue.EventModerationReviewed, err)
		return entity.ModerationItem{}, err
	}

	uc.notify(ctx, queue.NewEvent(queue.EventModerationReviewed, "moderation_item", item.ID, actor(actorID)).
		With("action", string(action)).
		With("status", string(item.Status)).
		With("content_type", string(item.ContentType)).
		With("content_id", strconv.FormatInt(item.ContentID, 10)))
	return item, nil
}

func (uc *adminUseCase) UpdateReportStatus(ctx context.Context, actorID, reportID int64, status entity.ReportStatus) (entity.MovieReport, error) {
	report, err := uc.store.UpdateReportStatus(reportID, status)
	if err != nil {
		uc.rejected(queue.EventReportUpdated, err)
		return entity.MovieReport{}, err
	}

	uc.notify(ctx, queue.NewEvent(queue.EventReportUpdated, "movie_report", report.ID, actor(actorID)).
		With("status", string(report.Status)).
		With("movie_id", strconv.FormatInt(report.MovieID, 10)))
	return report, nil
}
