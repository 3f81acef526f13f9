package main

import (
	"context"
	"flag"
	"fmt"

	"cinesocial/pkg/config"
	"cinesocial/pkg/database"
	"cinesocial/pkg/logger"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/repo/persistent"
	"cinesocial/services/social/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := flag.String("password", "password123", "password for every seeded user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithConfig(cfg.LogLevel, cfg.LogFormat)
	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	if db == nil {
		panic("DB_DRIVER=none: nowhere to save the seeded snapshot")
	}
	defer database.Close(db)

	if err := persistent.Migrate(db); err != nil {
		log.Error("Failed to migrate snapshot tables: %v", err)
		panic(err)
	}

	st := store.New(store.WithStoryTTL(cfg.StoryTTL))
	if err := seedStore(st, *password, log); err != nil {
		log.Error("Failed to seed store: %v", err)
		panic(err)
	}

	if err := persistent.NewSnapshotRepository(db).Save(context.Background(), st.Snapshot()); err != nil {
		log.Error("Failed to save snapshot: %v", err)
		panic(err)
	}

	stats := st.Stats()
	log.Info("Store seeded: %d users, %d posts, %d movies", stats.Users, stats.Posts, stats.Movies)
}

func seedStore(st *store.Store, password string, log *logger.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	testUsers := []struct {
		username string
		email    string
		role     string
	}{
		{"admin", "admin@cinesocial.test", entity.RoleAdmin},
		{"mod", "mod@cinesocial.test", entity.RoleModerator},
		{"alice", "alice@cinesocial.test", entity.RoleUser},
		{"bob", "bob@cinesocial.test", entity.RoleUser},
		{"charlie", "charlie@cinesocial.test", entity.RoleUser},
		{"diana", "diana@cinesocial.test", entity.RoleUser},
	}

	ids := make(map[string]int64, len(testUsers))
	for _, u := range testUsers {
		user, err := st.CreateUser(entity.NewUser{
			Username: u.username,
			Email:    u.email,
			Password: string(hashed),
			Role:     u.role,
			IsAdmin:  u.role == entity.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		ids[u.username] = user.ID
		log.Info("Created user: %s (%s)", user.Username, user.Email)
	}
	alice, bob, charlie, diana := ids["alice"], ids["bob"], ids["charlie"], ids["diana"]

	// Social graph: alice and bob are friends, charlie is a friend of both,
	// so diana gets suggestions once she befriends charlie.
	for _, pair := range [][2]int64{{alice, bob}, {alice, charlie}, {bob, charlie}, {diana, charlie}} {
		req := st.CreateFriendRequest(pair[0], pair[1], nil)
		if _, err := st.UpdateFriendRequestStatus(req.ID, entity.FriendRequestAccepted); err != nil {
			return fmt.Errorf("failed to accept friend request %d: %w", req.ID, err)
		}
	}
	st.FollowUser(alice, bob)
	st.FollowUser(bob, alice)
	st.FollowUser(diana, alice)

	community := st.CreateCommunity(alice, entity.NewCommunity{Name: "Film Noir Club", Type: entity.CommunityPublic})
	for _, member := range []int64{bob, charlie} {
		if err := st.JoinCommunity(member, community.ID, ""); err != nil {
			return fmt.Errorf("failed to join community: %w", err)
		}
	}

	posts := []struct {
		author   int64
		content  string
		hashtags []string
	}{
		{alice, "Rewatched Heat last night. The bank scene still holds up.", []string{"heat", "mann"}},
		{bob, "Anyone up for a noir marathon this weekend?", []string{"noir"}},
		{charlie, "Hot take: the Director's Cut is worse.", nil},
	}
	for _, p := range posts {
		post := st.CreatePost(p.author, entity.NewPost{Content: p.content, Hashtags: p.hashtags})
		for _, liker := range []int64{alice, bob, charlie} {
			if liker == p.author {
				continue
			}
			if _, err := st.LikePost(liker, post.ID); err != nil {
				return err
			}
		}
		if _, err := st.CreateComment(diana, entity.NewComment{PostID: post.ID, Content: "Agreed!"}); err != nil {
			return err
		}
	}

	conv := st.CreateConversation(alice, []int64{bob}, nil)
	st.SendMessage(alice, entity.NewMessage{ConversationID: conv.ID, Content: "Saturday at 8?"})
	st.SendMessage(bob, entity.NewMessage{ConversationID: conv.ID, Content: "Deal."})

	caption := "Premiere tonight"
	st.CreateStory(alice, entity.NewStory{MediaURL: "https://cdn.cinesocial.test/stories/premiere.jpg", MediaType: "image", Caption: &caption})

	director := "Michael Mann"
	year := 1995
	heat := st.CreateMovie(ids["admin"], entity.NewMovie{
		Title:       "Heat",
		Description: "A group of professional bank robbers and the detective on their trail.",
		VideoURL:    "https://cdn.cinesocial.test/movies/heat.mp4",
		Duration:    10200,
		Metadata: entity.MovieMetadata{
			Genre:       []string{"crime", "thriller"},
			Director:    &director,
			ReleaseYear: &year,
		},
	})
	if _, err := st.UpdateMovieStatus(heat.ID, entity.MovieStatusApproved); err != nil {
		return err
	}
	pending := st.CreateMovie(bob, entity.NewMovie{Title: "Home Movie", VideoURL: "https://cdn.cinesocial.test/movies/home.mp4", Duration: 600})

	for rating, user := range map[int]int64{5: alice, 4: bob, 3: charlie} {
		if _, err := st.RateMovie(user, heat.ID, rating, nil); err != nil {
			return err
		}
	}
	st.AddToWatchlist(diana, heat.ID)
	st.RecordWatch(alice, entity.NewWatchRecord{MovieID: heat.ID, WatchDuration: 10200, LastPosition: 10200, Completed: true})
	if _, err := st.AddMovieComment(charlie, heat.ID, "That diner scene."); err != nil {
		return err
	}

	st.ReportMovie(charlie, pending.ID, "low quality", nil)
	st.CreateDMCAClaim(entity.NewDMCAClaim{
		MovieID:       pending.ID,
		ClaimantName:  "Example Studios",
		ClaimantEmail: "legal@example-studios.test",
		Description:   "Contains our copyrighted soundtrack.",
	})
	reporter := charlie
	st.CreateModerationItem(entity.NewModerationItem{
		ContentType: entity.ContentTypeMovie,
		ContentID:   pending.ID,
		ReporterID:  &reporter,
		Reason:      "awaiting review",
	})
	return nil
}
