package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"moviematch_server/models"
	"moviematch_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Weighting of the two components of the compatibility score.
const (
	movieMatchWeight = 0.6
	genreMatchWeight = 0.4
)

// maxCommonGenres caps the genres reported back to clients. The full
// intersection still drives the percentage.
const maxCommonGenres = 5

// MatchingService computes taste compatibility between the session user
// and other users from their favorite-movie records. Results are derived
// fresh on every call; nothing here is cached or persisted.
type MatchingService struct {
	Dynamo  DocumentStore
	Session *SessionService
}

// CalculateMatching scores the session user against another user.
//
// The score weighs shared favorite movies at 60% and shared genres at 40%.
// The movie term is normalized by the smaller favorites count, the genre
// term by the larger genre-set size. Without a session, or when either
// user has no favorites, the zero result is returned.
//
// CommonGenres is ordered by first appearance across the session user's
// favorites, so match(A,B) and match(B,A) can list the same genres in a
// different order even though the percentages agree.
func (ms *MatchingService) CalculateMatching(ctx context.Context, otherUserID string) models.MatchingResult {
	current := ms.Session.CurrentUser()
	if current == nil {
		return emptyMatchingResult(otherUserID)
	}

	currentFavorites := ms.getUserFavorites(ctx, current.UserID)
	otherFavorites := ms.getUserFavorites(ctx, otherUserID)

	if len(currentFavorites) == 0 || len(otherFavorites) == 0 {
		return emptyMatchingResult(otherUserID)
	}

	currentMovieIDs := movieIDSet(currentFavorites)
	otherMovieIDs := movieIDSet(otherFavorites)

	commonMovies := 0
	for id := range currentMovieIDs {
		if otherMovieIDs[id] {
			commonMovies++
		}
	}

	currentGenres := extractGenres(currentFavorites)
	otherGenres := extractGenres(otherFavorites)

	otherGenreSet := make(map[string]bool, len(otherGenres))
	for _, genre := range otherGenres {
		otherGenreSet[genre] = true
	}

	commonGenres := make([]string, 0, len(currentGenres))
	for _, genre := range currentGenres {
		if otherGenreSet[genre] {
			commonGenres = append(commonGenres, genre)
		}
	}

	movieMatchPercentage := float64(commonMovies) / float64(min(len(currentFavorites), len(otherFavorites))) * 100

	var genreMatchPercentage float64
	if denominator := max(len(currentGenres), len(otherGenres)); denominator > 0 {
		genreMatchPercentage = float64(len(commonGenres)) / float64(denominator) * 100
	}

	matchPercentage := int(math.Round(movieMatchPercentage*movieMatchWeight + genreMatchPercentage*genreMatchWeight))
	matchPercentage = min(matchPercentage, 100)

	topGenres := commonGenres
	if len(topGenres) > maxCommonGenres {
		topGenres = topGenres[:maxCommonGenres]
	}

	return models.MatchingResult{
		UserID:                    otherUserID,
		MatchPercentage:           matchPercentage,
		CommonMovies:              commonMovies,
		CommonGenres:              topGenres,
		TotalCurrentUserFavorites: len(currentFavorites),
		TotalOtherUserFavorites:   len(otherFavorites),
	}
}

// GetCommonMovies returns every movie both users favorited. Fields come
// from the other user's records, so a denormalized write can make them
// differ cosmetically from the session user's copy.
func (ms *MatchingService) GetCommonMovies(ctx context.Context, otherUserID string) []models.MovieMatch {
	current := ms.Session.CurrentUser()
	if current == nil {
		return []models.MovieMatch{}
	}

	currentFavorites := ms.getUserFavorites(ctx, current.UserID)
	otherFavorites := ms.getUserFavorites(ctx, otherUserID)

	currentMovieIDs := movieIDSet(currentFavorites)

	commonMovies := make([]models.MovieMatch, 0)
	for _, favorite := range otherFavorites {
		if currentMovieIDs[favorite.MovieID] {
			commonMovies = append(commonMovies, models.MovieMatch{
				MovieID:    favorite.MovieID,
				MovieTitle: favorite.MovieTitle,
				MovieGenre: favorite.MovieGenre,
				PosterPath: favorite.PosterPath,
			})
		}
	}
	return commonMovies
}

// GetMatchingUsers scores the session user against every user that has at
// least one favorite and returns those at or above minPercent, sorted by
// percentage descending.
//
// This is a full-table scan plus one matching computation per candidate,
// kept sequential so result ordering stays reproducible. Fine at small
// scale only.
func (ms *MatchingService) GetMatchingUsers(ctx context.Context, minPercent int) []models.UserMatch {
	current := ms.Session.CurrentUser()
	if current == nil {
		return []models.UserMatch{}
	}

	items, err := ms.Dynamo.ScanItems(ctx, models.FavoritesTable)
	if err != nil {
		log.Printf("❌ Failed to scan favorites for matching: %v", err)
		return []models.UserMatch{}
	}

	seen := make(map[string]bool)
	userIDs := make([]string, 0)
	for _, item := range items {
		userID := utils.ExtractString(item, "userId")
		if userID == "" || userID == current.UserID || seen[userID] {
			continue
		}
		seen[userID] = true
		userIDs = append(userIDs, userID)
	}

	results := make([]models.UserMatch, 0)
	for _, userID := range userIDs {
		matching := ms.CalculateMatching(ctx, userID)
		if matching.MatchPercentage >= minPercent {
			results = append(results, models.UserMatch{
				UserID:          userID,
				MatchPercentage: matching.MatchPercentage,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results
}

// getUserFavorites bulk-loads one user's favorite records. Store failures
// degrade to an empty slice, which the callers treat as "no favorites".
func (ms *MatchingService) getUserFavorites(ctx context.Context, userID string) []models.FavoriteRecord {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.FavoritesTable, models.UserIDIndex, keyCondition, expressionValues, nil, 0)
	if err != nil {
		log.Printf("❌ Failed to load favorites for matching (user %s): %v", userID, err)
		return nil
	}

	var records []models.FavoriteRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		log.Printf("❌ Failed to unmarshal favorites for matching (user %s): %v", userID, err)
		return nil
	}
	return records
}

// extractGenres splits each record's comma-separated genre field and
// deduplicates, preserving the order genres are first encountered. That
// order is what makes the reported common-genre list deterministic.
func extractGenres(favorites []models.FavoriteRecord) []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, favorite := range favorites {
		if favorite.MovieGenre == "" {
			continue
		}
		for _, genre := range strings.Split(favorite.MovieGenre, ",") {
			genre = strings.TrimSpace(genre)
			if genre == "" || seen[genre] {
				continue
			}
			seen[genre] = true
			genres = append(genres, genre)
		}
	}
	return genres
}

func movieIDSet(favorites []models.FavoriteRecord) map[int]bool {
	ids := make(map[int]bool, len(favorites))
	for _, favorite := range favorites {
		ids[favorite.MovieID] = true
	}
	return ids
}

func emptyMatchingResult(userID string) models.MatchingResult {
	return models.MatchingResult{
		UserID:       userID,
		CommonGenres: []string{},
	}
}
