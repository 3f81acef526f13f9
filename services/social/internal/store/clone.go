package store

import (
	"sort"
	"time"

	"cinesocial/services/social/internal/entity"
)

// Entities are stored by pointer and handed out as deep copies so callers never
// share memory with the store.

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneSlice copies s and never returns nil.
func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneUser(u *entity.User) entity.User {
	c := *u
	c.DisplayName = clonePtr(u.DisplayName)
	c.Bio = clonePtr(u.Bio)
	c.AvatarURL = clonePtr(u.AvatarURL)
	c.CoverImageURL = clonePtr(u.CoverImageURL)
	c.Location = clonePtr(u.Location)
	c.Website = clonePtr(u.Website)
	c.GoogleID = clonePtr(u.GoogleID)
	c.LastLoginAt = clonePtr(u.LastLoginAt)
	c.Permissions = cloneSlice(u.Permissions)
	return c
}

func clonePost(p *entity.Post) entity.Post {
	c := *p
	c.CommunityID = clonePtr(p.CommunityID)
	c.Attachments = cloneSlice(p.Attachments)
	c.Hashtags = cloneSlice(p.Hashtags)
	c.Location = clonePtr(p.Location)
	c.EditedAt = clonePtr(p.EditedAt)
	return c
}

func cloneComment(cm *entity.Comment) entity.Comment {
	c := *cm
	c.ParentID = clonePtr(cm.ParentID)
	c.EditedAt = clonePtr(cm.EditedAt)
	return c
}

func cloneStory(st *entity.Story) entity.Story {
	c := *st
	c.Caption = clonePtr(st.Caption)
	return c
}

func cloneConversation(cv *entity.Conversation) entity.Conversation {
	c := *cv
	c.Name = clonePtr(cv.Name)
	c.MemberIDs = cloneSlice(cv.MemberIDs)
	return c
}

func cloneMessage(m *entity.Message) entity.Message {
	c := *m
	c.Attachments = cloneSlice(m.Attachments)
	c.EditedAt = clonePtr(m.EditedAt)
	return c
}

func cloneCommunity(cm *entity.Community) entity.Community {
	c := *cm
	c.Description = clonePtr(cm.Description)
	c.AvatarURL = clonePtr(cm.AvatarURL)
	c.CoverImageURL = clonePtr(cm.CoverImageURL)
	return c
}

func cloneMetadata(m entity.MovieMetadata) entity.MovieMetadata {
	c := m
	c.Genre = cloneSlice(m.Genre)
	c.Tags = cloneSlice(m.Tags)
	c.Cast = cloneSlice(m.Cast)
	c.AITags = cloneSlice(m.AITags)
	c.Subtitles = cloneSlice(m.Subtitles)
	c.Director = clonePtr(m.Director)
	c.ReleaseYear = clonePtr(m.ReleaseYear)
	c.Language = clonePtr(m.Language)
	c.ContentRating = clonePtr(m.ContentRating)
	return c
}

func cloneCopyright(cs entity.CopyrightStatus) entity.CopyrightStatus {
	c := cs
	c.PotentialMatches = cloneSlice(cs.PotentialMatches)
	c.Reason = clonePtr(cs.Reason)
	c.LastChecked = clonePtr(cs.LastChecked)
	return c
}

func cloneMovie(m *entity.Movie) entity.Movie {
	c := *m
	c.ThumbnailURL = clonePtr(m.ThumbnailURL)
	c.TrailerURL = clonePtr(m.TrailerURL)
	c.SeasonNumber = clonePtr(m.SeasonNumber)
	c.EpisodeNumber = clonePtr(m.EpisodeNumber)
	c.Metadata = cloneMetadata(m.Metadata)
	c.CopyrightStatus = cloneCopyright(m.CopyrightStatus)
	return c
}

func cloneMovieReport(r *entity.MovieReport) entity.MovieReport {
	c := *r
	c.Description = clonePtr(r.Description)
	return c
}

func cloneMovieRating(r *entity.MovieRating) entity.MovieRating {
	c := *r
	c.Review = clonePtr(r.Review)
	return c
}

func cloneDMCAClaim(d *entity.DMCAClaim) entity.DMCAClaim {
	c := *d
	c.Evidence = clonePtr(d.Evidence)
	c.ResponseMessage = clonePtr(d.ResponseMessage)
	return c
}

func cloneFriendRequest(fr *entity.FriendRequest) entity.FriendRequest {
	c := *fr
	c.Message = clonePtr(fr.Message)
	return c
}

func cloneModerationItem(m *entity.ModerationItem) entity.ModerationItem {
	c := *m
	c.ReporterID = clonePtr(m.ReporterID)
	c.ModeratorID = clonePtr(m.ModeratorID)
	c.Action = clonePtr(m.Action)
	c.Notes = clonePtr(m.Notes)
	return c
}

// newestFirst orders by creation time descending, breaking ties by id descending.
func newestFirst[T any](items []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}

// oldestFirst orders by creation time ascending, breaking ties by id ascending.
func oldestFirst[T any](items []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
