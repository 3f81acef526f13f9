package entity

import "time"

type MovieStatus string

const (
	MovieStatusPending          MovieStatus = "pending"
	MovieStatusApproved         MovieStatus = "approved"
	MovieStatusRejected         MovieStatus = "rejected"
	MovieStatusRemovedCopyright MovieStatus = "removed_copyright"
)

func ValidMovieStatus(s MovieStatus) bool {
	switch s {
	case MovieStatusPending, MovieStatusApproved, MovieStatusRejected, MovieStatusRemovedCopyright:
		return true
	}
	return false
}

type MovieType string

const (
	MovieTypeMovie  MovieType = "movie"
	MovieTypeSeries MovieType = "series"
)

type Subtitle struct {
	Language string `json:"language"`
	URL      string `json:"url"`
}

type MovieMetadata struct {
	Genre         []string   `json:"genre"`
	Tags          []string   `json:"tags"`
	Cast          []string   `json:"cast"`
	Director      *string    `json:"director"`
	ReleaseYear   *int       `json:"release_year"`
	Language      *string    `json:"language"`
	ContentRating *string    `json:"content_rating"`
	AITags        []string   `json:"ai_tags"`
	Subtitles     []Subtitle `json:"subtitles"`
}

type CopyrightStatus struct {
	IsSafe           bool       `json:"is_safe"`
	Confidence       float64    `json:"confidence"`
	PotentialMatches []string   `json:"potential_matches"`
	Reason           *string    `json:"reason"`
	LastChecked      *time.Time `json:"last_checked"`
}

type Movie struct {
	ID              int64           `json:"id"`
	UploaderID      int64           `json:"uploader_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	VideoURL        string          `json:"video_url"`
	ThumbnailURL    *string         `json:"thumbnail_url"`
	TrailerURL      *string         `json:"trailer_url"`
	Type            MovieType       `json:"type"`
	SeasonNumber    *int            `json:"season_number"`
	EpisodeNumber   *int            `json:"episode_number"`
	Duration        int             `json:"duration"`
	Status          MovieStatus     `json:"status"`
	Views           int             `json:"views"`
	Likes           int             `json:"likes"`
	Comments        int             `json:"comments"`
	Shares          int             `json:"shares"`
	TotalRatings    int             `json:"total_ratings"`
	AverageRating   float64         `json:"average_rating"`
	Metadata        MovieMetadata   `json:"metadata"`
	CopyrightStatus CopyrightStatus `json:"copyright_status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type NewMovie struct {
	Title         string
	Description   string
	VideoURL      string
	ThumbnailURL  *string
	TrailerURL    *string
	Type          MovieType
	SeasonNumber  *int
	EpisodeNumber *int
	Duration      int
	Metadata      MovieMetadata
}

// MovieClassification is the content analyzer's output. Nil parts are left
// untouched; non-nil parts replace what the movie holds.
type MovieClassification struct {
	Genre           []string
	Tags            []string
	AITags          []string
	ContentRating   *string
	Language        *string
	CopyrightStatus *CopyrightStatus
}

type MovieComment struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
	ReportStatusRejected ReportStatus = "rejected"
)

func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}

type MovieReport struct {
	ID          int64        `json:"id"`
	MovieID     int64        `json:"movie_id"`
	UserID      int64        `json:"user_id"`
	Reason      string       `json:"reason"`
	Description *string      `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type MovieRating struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WatchRecord struct {
	ID            int64     `json:"id"`
	MovieID       int64     `json:"movie_id"`
	UserID        int64     `json:"user_id"`
	WatchDuration int       `json:"watch_duration"`
	LastPosition  int       `json:"last_position"`
	Completed     bool      `json:"completed"`
	WatchedAt     time.Time `json:"watched_at"`
}

type NewWatchRecord struct {
	MovieID       int64
	WatchDuration int
	LastPosition  int
	Completed     bool
}

type DMCAStatus string

const (
	DMCAStatusPending  DMCAStatus = "pending"
	DMCAStatusApproved DMCAStatus = "approved"
	DMCAStatusRejected DMCAStatus = "rejected"
)

type DMCAClaim struct {
	ID              int64      `json:"id"`
	MovieID         int64      `json:"movie_id"`
	ClaimantName    string     `json:"claimant_name"`
	ClaimantEmail   string     `json:"claimant_email"`
	Description     string     `json:"description"`
	Evidence        *string    `json:"evidence"`
	Status          DMCAStatus `json:"status"`
	ResponseMessage *string    `json:"response_message"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type NewDMCAClaim struct {
	MovieID       int64
	ClaimantName  string
	ClaimantEmail string
	Description   string
	Evidence      *string
}
