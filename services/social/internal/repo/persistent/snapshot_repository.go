package persistent

import (
	"context"
	"errors"
	"fmt"

	"cinesocial/pkg/models"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/store"

	"gorm.io/gorm"
)

const batchSize = 200

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// SnapshotRepository persists whole-store snapshots. Save replaces the
// previous snapshot atomically.
type SnapshotRepository interface {
	Save(ctx context.Context, snap *store.Snapshot) error
	Load(ctx context.Context) (*store.Snapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Migrate creates or updates every snapshot table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func insert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, batchSize).Error
}

func (r *snapshotRepository) Save(ctx context.Context, snap *store.Snapshot) error {
	movies := make([]models.Movie, len(snap.Movies))
	for i := range snap.Movies {
		m, err := ToMovieModel(&snap.Movies[i])
		if err != nil {
			return err
		}
		movies[i] = m
	}

	sequences := make([]models.IDSequence, 0, len(snap.Sequences))
	for kind, value := range snap.Sequences {
		sequences = append(sequences, models.IDSequence{Kind: kind, Value: value})
	}

	postLikes := make([]models.PostLike, len(snap.PostLikes))
	for i, e := range snap.PostLikes {
		postLikes[i] = models.PostLike{UserID: e.From, PostID: e.To}
	}
	commentLikes := make([]models.CommentLike, len(snap.CommentLikes))
	for i, e := range snap.CommentLikes {
		commentLikes[i] = models.CommentLike{UserID: e.From, CommentID: e.To}
	}
	follows := make([]models.Follow, len(snap.Follows))
	for i, e := range snap.Follows {
		follows[i] = models.Follow{FollowerID: e.From, FolloweeID: e.To}
	}
	movieLikes := make([]models.MovieLike, len(snap.MovieLikes))
	for i, e := range snap.MovieLikes {
		movieLikes[i] = models.MovieLike{UserID: e.From, MovieID: e.To}
	}
	movieCommentLikes := make([]models.MovieCommentLike, len(snap.MovieCommentLikes))
	for i, e := range snap.MovieCommentLikes {
		movieCommentLikes[i] = models.MovieCommentLike{UserID: e.From, CommentID: e.To}
	}
	reactions := make([]models.PostReaction, len(snap.Reactions))
	for i, re := range snap.Reactions {
		reactions[i] = models.PostReaction{UserID: re.UserID, PostID: re.PostID, Type: string(re.Type)}
	}
	members := make([]models.CommunityMember, len(snap.Memberships))
	for i, m := range snap.Memberships {
		members[i] = models.CommunityMember{UserID: m.UserID, CommunityID: m.CommunityID, Role: m.Role}
	}
	watchlist := make([]models.WatchlistEntry, len(snap.Watchlist))
	for i, w := range snap.Watchlist {
		watchlist[i] = models.WatchlistEntry{UserID: w.UserID, MovieID: w.MovieID, AddedAt: w.AddedAt}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, table := range models.All() {
			if err := wipe.Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", table, err)
			}
		}

		steps := []func() error{
			func() error { return insert(tx, sequences) },
			func() error { return insert(tx, mapAll(snap.Users, ToUserModel)) },
			func() error { return insert(tx, mapAll(snap.Posts, ToPostModel)) },
			func() error { return insert(tx, mapAll(snap.Comments, ToCommentModel)) },
			func() error { return insert(tx, mapAll(snap.Stories, ToStoryModel)) },
			func() error { return insert(tx, mapAll(snap.Conversations, ToConversationModel)) },
			func() error { return insert(tx, mapAll(snap.Messages, ToMessageModel)) },
			func() error { return insert(tx, mapAll(snap.Communities, ToCommunityModel)) },
			func() error { return insert(tx, movies) },
			func() error { return insert(tx, mapAll(snap.MovieComments, ToMovieCommentModel)) },
			func() error { return insert(tx, mapAll(snap.MovieReports, ToMovieReportModel)) },
			func() error { return insert(tx, mapAll(snap.MovieRatings, ToMovieRatingModel)) },
			func() error { return insert(tx, mapAll(snap.WatchHistory, ToWatchRecordModel)) },
			func() error { return insert(tx, mapAll(snap.DMCAClaims, ToDMCAClaimModel)) },
			func() error { return insert(tx, mapAll(snap.FriendRequests, ToFriendRequestModel)) },
			func() error { return insert(tx, mapAll(snap.Friendships, ToFriendshipModel)) },
			func() error { return insert(tx, mapAll(snap.Moderation, ToModerationItemModel)) },
			func() error { return insert(tx, postLikes) },
			func() error { return insert(tx, commentLikes) },
			func() error { return insert(tx, follows) },
			func() error { return insert(tx, movieLikes) },
			func() error { return insert(tx, movieCommentLikes) },
			func() error { return insert(tx, reactions) },
			func() error { return insert(tx, members) },
			func() error { return insert(tx, watchlist) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
		}
		return nil
	})
}

func find[T any](db *gorm.DB, order string) ([]T, error) {
	var rows []T
	if err := db.Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *snapshotRepository) Load(ctx context.Context) (*store.Snapshot, error) {
	db := r.db.WithContext(ctx)

	sequences, err := find[models.IDSequence](db, "kind")
	if err != nil {
		return nil, err
	}
	if len(sequences) == 0 {
		return nil, ErrNoSnapshot
	}

	snap := &store.Snapshot{Sequences: make(map[string]int64, len(sequences))}
	for _, s := range sequences {
		snap.Sequences[s.Kind] = s.Value
	}

	var loadErr error
	load := func(fn func() error) {
		if loadErr == nil {
			loadErr = fn()
		}
	}

	load(func() error {
		rows, err := find[models.User](db, "id")
		snap.Users = mapAll(rows, ToUserEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Post](db, "id")
		snap.Posts = mapAll(rows, ToPostEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Comment](db, "id")
		snap.Comments = mapAll(rows, ToCommentEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Story](db, "id")
		snap.Stories = mapAll(rows, ToStoryEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Conversation](db, "id")
		snap.Conversations = mapAll(rows, ToConversationEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Message](db, "id")
		snap.Messages = mapAll(rows, ToMessageEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Community](db, "id")
		snap.Communities = mapAll(rows, ToCommunityEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Movie](db, "id")
		if err != nil {
			return err
		}
		snap.Movies = make([]entity.Movie, len(rows))
		for i := range rows {
			if snap.Movies[i], err = ToMovieEntity(&rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	load(func() error {
		rows, err := find[models.MovieComment](db, "id")
		snap.MovieComments = mapAll(rows, ToMovieCommentEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.MovieReport](db, "id")
		snap.MovieReports = mapAll(rows, ToMovieReportEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.MovieRating](db, "id")
		snap.MovieRatings = mapAll(rows, ToMovieRatingEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.WatchRecord](db, "id")
		snap.WatchHistory = mapAll(rows, ToWatchRecordEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.DMCAClaim](db, "id")
		snap.DMCAClaims = mapAll(rows, ToDMCAClaimEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.FriendRequest](db, "id")
		snap.FriendRequests = mapAll(rows, ToFriendRequestEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.Friendship](db, "id")
		snap.Friendships = mapAll(rows, ToFriendshipEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.ModerationItem](db, "id")
		snap.Moderation = mapAll(rows, ToModerationItemEntity)
		return err
	})
	load(func() error {
		rows, err := find[models.PostLike](db, "user_id, post_id")
		snap.PostLikes = mapAll(rows, func(m *models.PostLike) store.Edge { return store.Edge{From: m.UserID, To: m.PostID} })
		return err
	})
	load(func() error {
		rows, err := find[models.CommentLike](db, "user_id, comment_id")
		snap.CommentLikes = mapAll(rows, func(m *models.CommentLike) store.Edge { return store.Edge{From: m.UserID, To: m.CommentID} })
		return err
	})
	load(func() error {
		rows, err := find[models.Follow](db, "follower_id, followee_id")
		snap.Follows = mapAll(rows, func(m *models.Follow) store.Edge { return store.Edge{From: m.FollowerID, To: m.FolloweeID} })
		return err
	})
	load(func() error {
		rows, err := find[models.MovieLike](db, "user_id, movie_id")
		snap.MovieLikes = mapAll(rows, func(m *models.MovieLike) store.Edge { return store.Edge{From: m.UserID, To: m.MovieID} })
		return err
	})
	load(func() error {
		rows, err := find[models.MovieCommentLike](db, "user_id, comment_id")
		snap.MovieCommentLikes = mapAll(rows, func(m *models.MovieCommentLike) store.Edge { return store.Edge{From: m.UserID, To: m.CommentID} })
		return err
	})
	load(func() error {
		rows, err := find[models.PostReaction](db, "user_id, post_id")
		snap.Reactions = mapAll(rows, func(m *models.PostReaction) store.Reaction {
			return store.Reaction{UserID: m.UserID, PostID: m.PostID, Type: entity.ReactionType(m.Type)}
		})
		return err
	})
	load(func() error {
		rows, err := find[models.CommunityMember](db, "user_id, community_id")
		snap.Memberships = mapAll(rows, func(m *models.CommunityMember) store.Membership {
			return store.Membership{UserID: m.UserID, CommunityID: m.CommunityID, Role: m.Role}
		})
		return err
	})
	load(func() error {
		rows, err := find[models.WatchlistEntry](db, "user_id, movie_id")
		snap.Watchlist = mapAll(rows, func(m *models.WatchlistEntry) store.WatchlistEntry {
			return store.WatchlistEntry{UserID: m.UserID, MovieID: m.MovieID, AddedAt: m.AddedAt}
		})
		return err
	})
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", loadErr)
	}
	return snap, nil
}
