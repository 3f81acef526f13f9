package entity

import "time"

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

type RequestDirection string

const (
	RequestsSent     RequestDirection = "sent"
	RequestsReceived RequestDirection = "received"
)

type FriendRequest struct {
	ID         int64               `json:"id"`
	SenderID   int64               `json:"sender_id"`
	ReceiverID int64               `json:"receiver_id"`
	Message    *string             `json:"message"`
	Status     FriendRequestStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type FriendshipStatus string

const (
	FriendshipActive  FriendshipStatus = "active"
	FriendshipBlocked FriendshipStatus = "blocked"
)

// Friendship is an undirected edge; User1ID is always the smaller id.
type Friendship struct {
	ID        int64            `json:"id"`
	User1ID   int64            `json:"user1_id"`
	User2ID   int64            `json:"user2_id"`
	Status    FriendshipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type FriendSuggestion struct {
	User          User `json:"user"`
	MutualFriends int  `json:"mutual_friends"`
}
