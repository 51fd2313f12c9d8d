package models

// FollowEdge is a directed follow relationship between two users. The
// followId key is "<followerId>_<followingId>", which makes follow writes
// idempotent and existence checks a single GetItem.
type FollowEdge struct {
	FollowID    string `dynamodbav:"followId" json:"followId"`
	FollowerID  string `dynamodbav:"followerId" json:"followerId"`
	FollowingID string `dynamodbav:"followingId" json:"followingId"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// FollowCounts holds the follower/following totals for one user.
type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// FollowsTable is the DynamoDB table name for follow edges
const FollowsTable = "Follows"

// GSIs on the Follows table
const (
	FollowerIDIndex  = "followerId-index"
	FollowingIDIndex = "followingId-index"
)
