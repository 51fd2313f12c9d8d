package models

// MatchingResult is the computed taste compatibility between the session
// user and another user. It is derived on every request and never persisted.
type MatchingResult struct {
	UserID                    string   `json:"userId"`
	MatchPercentage           int      `json:"matchPercentage"`
	CommonMovies              int      `json:"commonMovies"`
	CommonGenres              []string `json:"commonGenres"` // capped at 5, session user's first-seen order
	TotalCurrentUserFavorites int      `json:"totalCurrentUserFavorites"`
	TotalOtherUserFavorites   int      `json:"totalOtherUserFavorites"`
}

// MovieMatch is one movie both users favorited, with the fields as the
// other user stored them.
type MovieMatch struct {
	MovieID    int    `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	MovieGenre string `json:"movieGenre"`
	PosterPath string `json:"posterPath"`
}

// UserMatch is a batch-matching entry for one candidate user.
type UserMatch struct {
	UserID          string `json:"userId"`
	MatchPercentage int    `json:"matchPercentage"`
}
