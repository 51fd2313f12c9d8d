package models

// FavoriteRecord is a single (user, movie) favorite stored in DynamoDB.
// The favoriteId key is "<userId>_<movieId>", so re-favoriting the same
// movie overwrites the existing record instead of duplicating it.
type FavoriteRecord struct {
	FavoriteID      string `dynamodbav:"favoriteId" json:"favoriteId"`
	UserID          string `dynamodbav:"userId" json:"userId"`
	UserDisplayName string `dynamodbav:"userDisplayName,omitempty" json:"userDisplayName,omitempty"`
	UserEmail       string `dynamodbav:"userEmail,omitempty" json:"userEmail,omitempty"`
	MovieID         int    `dynamodbav:"movieId" json:"movieId"`
	MovieTitle      string `dynamodbav:"movieTitle" json:"movieTitle"`
	MovieGenre      string `dynamodbav:"movieGenre" json:"movieGenre"` // may hold several comma-separated genres
	PosterPath      string `dynamodbav:"posterPath" json:"posterPath"`
	AddedAt         string `dynamodbav:"addedAt" json:"addedAt"`
}

// FavoriteMovieDisplay is the trimmed-down shape served to clients that
// render the favorites list.
type FavoriteMovieDisplay struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Genre      string `json:"genre"`
	PosterPath string `json:"posterPath"`
	AddedAt    string `json:"addedAt"`
}

// FavoritesTable is the DynamoDB table name for favorite records
const FavoritesTable = "Favorites"

// GSIs on the Favorites table
const (
	UserIDIndex  = "userId-index"
	MovieIDIndex = "movieId-index"
)
