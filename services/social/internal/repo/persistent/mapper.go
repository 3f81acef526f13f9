package persistent

import (
	"encoding/json"
	"fmt"

	"cinesocial/pkg/models"
	"cinesocial/services/social/internal/entity"
)

func mapAll[A, B any](in []A, fn func(*A) B) []B {
	out := make([]B, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func ToUserModel(e *entity.User) models.User {
	return models.User{
		ID:            e.ID,
		Username:      e.Username,
		Password:      e.Password,
		Email:         e.Email,
		DisplayName:   e.DisplayName,
		Bio:           e.Bio,
		AvatarURL:     e.AvatarURL,
		CoverImageURL: e.CoverImageURL,
		Location:      e.Location,
		Website:       e.Website,
		GoogleID:      e.GoogleID,
		IsAdmin:       e.IsAdmin,
		IsVerified:    e.IsVerified,
		Role:          e.Role,
		Permissions:   e.Permissions,
		Status:        string(e.Status),
		LastLoginAt:   e.LastLoginAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToUserEntity(m *models.User) entity.User {
	return entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Password:      m.Password,
		Email:         m.Email,
		DisplayName:   m.DisplayName,
		Bio:           m.Bio,
		AvatarURL:     m.AvatarURL,
		CoverImageURL: m.CoverImageURL,
		Location:      m.Location,
		Website:       m.Website,
		GoogleID:      m.GoogleID,
		IsAdmin:       m.IsAdmin,
		IsVerified:    m.IsVerified,
		Role:          m.Role,
		Permissions:   m.Permissions,
		Status:        entity.UserStatus(m.Status),
		LastLoginAt:   m.LastLoginAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAttachmentModels(in []entity.Attachment) []models.Attachment {
	out := make([]models.Attachment, len(in))
	for i, a := range in {
		out[i] = models.Attachment{Type: a.Type, URL: a.URL}
	}
	return out
}

func toAttachmentEntities(in []models.Attachment) []entity.Attachment {
	out := make([]entity.Attachment, len(in))
	for i, a := range in {
		out[i] = entity.Attachment{Type: a.Type, URL: a.URL}
	}
	return out
}

func ToPostModel(e *entity.Post) models.Post {
	return models.Post{
		ID:          e.ID,
		UserID:      e.UserID,
		CommunityID: e.CommunityID,
		Content:     e.Content,
		Attachments: toAttachmentModels(e.Attachments),
		Visibility:  string(e.Visibility),
		Hashtags:    e.Hashtags,
		Location:    e.Location,
		Likes:       e.Likes,
		Shares:      e.Shares,
		Comments:    e.Comments,
		CreatedAt:   e.CreatedAt,
		EditedAt:    e.EditedAt,
	}
}

func ToPostEntity(m *models.Post) entity.Post {
	return entity.Post{
		ID:          m.ID,
		UserID:      m.UserID,
		CommunityID: m.CommunityID,
		Content:     m.Content,
		Attachments: toAttachmentEntities(m.Attachments),
		Visibility:  entity.Visibility(m.Visibility),
		Hashtags:    m.Hashtags,
		Location:    m.Location,
		Likes:       m.Likes,
		Shares:      m.Shares,
		Comments:    m.Comments,
		CreatedAt:   m.CreatedAt,
		EditedAt:    m.EditedAt,
	}
}

func ToCommentModel(e *entity.Comment) models.Comment {
	return models.Comment(*e)
}

func ToCommentEntity(m *models.Comment) entity.Comment {
	return entity.Comment(*m)
}

func ToStoryModel(e *entity.Story) models.Story {
	return models.Story(*e)
}

func ToStoryEntity(m *models.Story) entity.Story {
	return entity.Story(*m)
}

func ToConversationModel(e *entity.Conversation) models.Conversation {
	return models.Conversation{
		ID:            e.ID,
		Type:          string(e.Type),
		Name:          e.Name,
		MemberIDs:     e.MemberIDs,
		CreatedAt:     e.CreatedAt,
		LastMessageAt: e.LastMessageAt,
	}
}

func ToConversationEntity(m *models.Conversation) entity.Conversation {
	return entity.Conversation{
		ID:            m.ID,
		Type:          entity.ConversationType(m.Type),
		Name:          m.Name,
		MemberIDs:     m.MemberIDs,
		CreatedAt:     m.CreatedAt,
		LastMessageAt: m.LastMessageAt,
	}
}

func ToMessageModel(e *entity.Message) models.Message {
	return models.Message{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		Content:        e.Content,
		Attachments:    toAttachmentModels(e.Attachments),
		CreatedAt:      e.CreatedAt,
		EditedAt:       e.EditedAt,
		IsDeleted:      e.IsDeleted,
	}
}

func ToMessageEntity(m *models.Message) entity.Message {
	return entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Content:        m.Content,
		Attachments:    toAttachmentEntities(m.Attachments),
		CreatedAt:      m.CreatedAt,
		EditedAt:       m.EditedAt,
		IsDeleted:      m.IsDeleted,
	}
}

func ToCommunityModel(e *entity.Community) models.Community {
	return models.Community{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		AvatarURL:     e.AvatarURL,
		CoverImageURL: e.CoverImageURL,
		Type:          string(e.Type),
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
	}
}

func ToCommunityEntity(m *models.Community) entity.Community {
	return entity.Community{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		AvatarURL:     m.AvatarURL,
		CoverImageURL: m.CoverImageURL,
		Type:          entity.CommunityType(m.Type),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func ToMovieModel(e *entity.Movie) (models.Movie, error) {
	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie %d metadata: %w", e.ID, err)
	}
	copyright, err := json.Marshal(e.CopyrightStatus)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie %d copyright status: %w", e.ID, err)
	}
	return models.Movie{
		ID:              e.ID,
		UploaderID:      e.UploaderID,
		Title:           e.Title,
		Description:     e.Description,
		VideoURL:        e.VideoURL,
		ThumbnailURL:    e.ThumbnailURL,
		TrailerURL:      e.TrailerURL,
		Type:            string(e.Type),
		SeasonNumber:    e.SeasonNumber,
		EpisodeNumber:   e.EpisodeNumber,
		Duration:        e.Duration,
		Status:          string(e.Status),
		Views:           e.Views,
		Likes:           e.Likes,
		Comments:        e.Comments,
		Shares:          e.Shares,
		TotalRatings:    e.TotalRatings,
		AverageRating:   e.AverageRating,
		Metadata:        string(metadata),
		CopyrightStatus: string(copyright),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}, nil
}

func ToMovieEntity(m *models.Movie) (entity.Movie, error) {
	e := entity.Movie{
		ID:            m.ID,
		UploaderID:    m.UploaderID,
		Title:         m.Title,
		Description:   m.Description,
		VideoURL:      m.VideoURL,
		ThumbnailURL:  m.ThumbnailURL,
		TrailerURL:    m.TrailerURL,
		Type:          entity.MovieType(m.Type),
		SeasonNumber:  m.SeasonNumber,
		EpisodeNumber: m.EpisodeNumber,
		Duration:      m.Duration,
		Status:        entity.MovieStatus(m.Status),
		Views:         m.Views,
		Likes:         m.Likes,
		Comments:      m.Comments,
		Shares:        m.Shares,
		TotalRatings:  m.TotalRatings,
		AverageRating: m.AverageRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &e.Metadata); err != nil {
			return entity.Movie{}, fmt.Errorf("movie %d metadata: %w", m.ID, err)
		}
	}
	if m.CopyrightStatus != "" {
		if err := json.Unmarshal([]byte(m.CopyrightStatus), &e.CopyrightStatus); err != nil {
			return entity.Movie{}, fmt.Errorf("movie %d copyright status: %w", m.ID, err)
		}
	}
	return e, nil
}

func ToMovieCommentModel(e *entity.MovieComment) models.MovieComment {
	return models.MovieComment(*e)
}

func ToMovieCommentEntity(m *models.MovieComment) entity.MovieComment {
	return entity.MovieComment(*m)
}

func ToMovieReportModel(e *entity.MovieReport) models.MovieReport {
	return models.MovieReport{
		ID:          e.ID,
		MovieID:     e.MovieID,
		UserID:      e.UserID,
		Reason:      e.Reason,
		Description: e.Description,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToMovieReportEntity(m *models.MovieReport) entity.MovieReport {
	return entity.MovieReport{
		ID:          m.ID,
		MovieID:     m.MovieID,
		UserID:      m.UserID,
		Reason:      m.Reason,
		Description: m.Description,
		Status:      entity.ReportStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMovieRatingModel(e *entity.MovieRating) models.MovieRating {
	return models.MovieRating(*e)
}

func ToMovieRatingEntity(m *models.MovieRating) entity.MovieRating {
	return entity.MovieRating(*m)
}

func ToWatchRecordModel(e *entity.WatchRecord) models.WatchRecord {
	return models.WatchRecord(*e)
}

func ToWatchRecordEntity(m *models.WatchRecord) entity.WatchRecord {
	return entity.WatchRecord(*m)
}

func ToDMCAClaimModel(e *entity.DMCAClaim) models.DMCAClaim {
	return models.DMCAClaim{
		ID:              e.ID,
		MovieID:         e.MovieID,
		ClaimantName:    e.ClaimantName,
		ClaimantEmail:   e.ClaimantEmail,
		Description:     e.Description,
		Evidence:        e.Evidence,
		Status:          string(e.Status),
		ResponseMessage: e.ResponseMessage,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToDMCAClaimEntity(m *models.DMCAClaim) entity.DMCAClaim {
	return entity.DMCAClaim{
		ID:              m.ID,
		MovieID:         m.MovieID,
		ClaimantName:    m.ClaimantName,
		ClaimantEmail:   m.ClaimantEmail,
		Description:     m.Description,
		Evidence:        m.Evidence,
		Status:          entity.DMCAStatus(m.Status),
		ResponseMessage: m.ResponseMessage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToFriendRequestModel(e *entity.FriendRequest) models.FriendRequest {
	return models.FriendRequest{
		ID:         e.ID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Message:    e.Message,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToFriendRequestEntity(m *models.FriendRequest) entity.FriendRequest {
	return entity.FriendRequest{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Message,
		Status:     entity.FriendRequestStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToFriendshipModel(e *entity.Friendship) models.Friendship {
	return models.Friendship{
		ID:        e.ID,
		User1ID:   e.User1ID,
		User2ID:   e.User2ID,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToFriendshipEntity(m *models.Friendship) entity.Friendship {
	return entity.Friendship{
		ID:        m.ID,
		User1ID:   m.User1ID,
		User2ID:   m.User2ID,
		Status:    entity.FriendshipStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToModerationItemModel(e *entity.ModerationItem) models.ModerationItem {
	var action *string
	if e.Action != nil {
		a := string(*e.Action)
		action = &a
	}
	return models.ModerationItem{
		ID:          e.ID,
		ContentType: string(e.ContentType),
		ContentID:   e.ContentID,
		ReporterID:  e.ReporterID,
		Reason:      e.Reason,
		Status:      string(e.Status),
		ModeratorID: e.ModeratorID,
		Action:      action,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToModerationItemEntity(m *models.ModerationItem) entity.ModerationItem {
	var action *entity.ModerationAction
	if m.Action != nil {
		a := entity.ModerationAction(*m.Action)
		action = &a
	}
	return entity.ModerationItem{
		ID:          m.ID,
		ContentType: entity.ContentType(m.ContentType),
		ContentID:   m.ContentID,
		ReporterID:  m.ReporterID,
		Reason:      m.Reason,
		Status:      entity.ModerationStatus(m.Status),
		ModeratorID: m.ModeratorID,
		Action:      action,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
