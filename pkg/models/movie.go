package models

import "time"

type Movie struct {
	ID            int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UploaderID    int64   `gorm:"not null;index" json:"uploader_id"`
	Title         string  `gorm:"type:varchar(255);not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	VideoURL      string  `gorm:"type:varchar(500)" json:"video_url"`
	ThumbnailURL  *string `gorm:"type:varchar(500)" json:"thumbnail_url"`
	TrailerURL    *string `gorm:"type:varchar(500)" json:"trailer_url"`
	Type          string  `gorm:"type:varchar(10);default:'movie'" json:"type"`
	SeasonNumber  *int    `json:"season_number"`
	EpisodeNumber *int    `json:"episode_number"`
	Duration      int     `json:"duration"`
	Status        string  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Views         int     `gorm:"default:0" json:"views"`
	Likes         int     `gorm:"default:0" json:"likes"`
	Comments      int     `gorm:"default:0" json:"comments"`
	Shares        int     `gorm:"default:0" json:"shares"`
	TotalRatings  int     `gorm:"default:0" json:"total_ratings"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	// JSON documents, encoded by the repository mapper
	Metadata        string    `gorm:"type:text" json:"metadata"`
	CopyrightStatus string    `gorm:"type:text" json:"copyright_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MovieComment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieID   int64     `gorm:"not null;index" json:"movie_id"`
	UserID    int64     `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MovieReport struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieID     int64     `gorm:"not null;index" json:"movie_id"`
	UserID      int64     `gorm:"not null" json:"user_id"`
	Reason      string    `gorm:"not null" json:"reason"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MovieRating struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieID   int64     `gorm:"not null;uniqueIndex:idx_rating_user_movie" json:"movie_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_rating_user_movie" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Review    *string   `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WatchRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieID       int64     `gorm:"not null" json:"movie_id"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	WatchDuration int       `json:"watch_duration"`
	LastPosition  int       `json:"last_position"`
	Completed     bool      `json:"completed"`
	WatchedAt     time.Time `json:"watched_at"`
}

func (WatchRecord) TableName() string {
	return "watch_history"
}

type DMCAClaim struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieID         int64     `gorm:"not null;index" json:"movie_id"`
	ClaimantName    string    `json:"claimant_name"`
	ClaimantEmail   string    `json:"claimant_email"`
	Description     string    `gorm:"type:text" json:"description"`
	Evidence        *string   `gorm:"type:text" json:"evidence"`
	Status          string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ResponseMessage *string   `gorm:"type:text" json:"response_message"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (DMCAClaim) TableName() string {
	return "dmca_claims"
}
