package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"moviematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FavoritesListener is invoked after the local favorites cache changed.
// The write has already completed and the cache already reflects it by the
// time a listener runs.
type FavoritesListener func(userID string, favoriteIDs []int)

// FavoritesService owns the session user's favorite movies. The store is
// the source of truth; the service keeps local caches of the favorite ids
// and the display list so UI predicates like IsFavorite never need a store
// round-trip.
type FavoritesService struct {
	Dynamo  DocumentStore
	Session *SessionService

	mu             sync.RWMutex
	favoriteIDs    []int
	favoriteMovies []models.FavoriteMovieDisplay
	listeners      []FavoritesListener
}

// NewFavoritesService wires the service to the session: sign-in loads the
// user's favorites, sign-out clears the caches.
func NewFavoritesService(store DocumentStore, session *SessionService) *FavoritesService {
	fs := &FavoritesService{Dynamo: store, Session: session}
	session.OnAuthStateChanged(func(user *models.UserProfile) {
		if user != nil {
			fs.LoadUserFavorites(context.Background())
		} else {
			fs.mu.Lock()
			fs.favoriteIDs = nil
			fs.favoriteMovies = nil
			fs.mu.Unlock()
		}
	})
	return fs
}

func favoriteKey(userID string, movieID int) string {
	return fmt.Sprintf("%s_%d", userID, movieID)
}

// AddToFavorites writes a favorite record for the session user. The keyed
// write is idempotent; adding an already-favorited movie just refreshes the
// stored record.
func (fs *FavoritesService) AddToFavorites(ctx context.Context, movieID int, movieTitle, movieGenre, posterPath string) error {
	user := fs.Session.CurrentUser()
	if user == nil {
		return ErrUnauthenticated
	}

	record := models.FavoriteRecord{
		FavoriteID:      favoriteKey(user.UserID, movieID),
		UserID:          user.UserID,
		UserDisplayName: user.DisplayName,
		UserEmail:       user.Email,
		MovieID:         movieID,
		MovieTitle:      movieTitle,
		MovieGenre:      movieGenre,
		PosterPath:      posterPath,
		AddedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if err := fs.Dynamo.PutItem(ctx, models.FavoritesTable, record); err != nil {
		log.Printf("❌ Failed to add favorite %d for user %s: %v", movieID, user.UserID, err)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	fs.mu.Lock()
	known := containsInt(fs.favoriteIDs, movieID)
	if !known {
		fs.favoriteIDs = append(fs.favoriteIDs, movieID)
	}
	fs.mu.Unlock()

	if !known {
		// Reload to pick up canonical store ordering for the display list.
		fs.LoadUserFavorites(ctx)
	}
	return nil
}

// RemoveFromFavorites deletes the session user's favorite record for a movie.
func (fs *FavoritesService) RemoveFromFavorites(ctx context.Context, movieID int) error {
	user := fs.Session.CurrentUser()
	if user == nil {
		return ErrUnauthenticated
	}

	key := map[string]types.AttributeValue{
		"favoriteId": &types.AttributeValueMemberS{Value: favoriteKey(user.UserID, movieID)},
	}
	if err := fs.Dynamo.DeleteItem(ctx, models.FavoritesTable, key); err != nil {
		log.Printf("❌ Failed to remove favorite %d for user %s: %v", movieID, user.UserID, err)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	fs.mu.Lock()
	ids := fs.favoriteIDs[:0]
	for _, id := range fs.favoriteIDs {
		if id != movieID {
			ids = append(ids, id)
		}
	}
	fs.favoriteIDs = ids

	movies := fs.favoriteMovies[:0]
	for _, movie := range fs.favoriteMovies {
		if movie.ID != movieID {
			movies = append(movies, movie)
		}
	}
	fs.favoriteMovies = movies
	fs.mu.Unlock()

	fs.notify(user.UserID)
	return nil
}

// ToggleFavorite removes the movie if it is currently a favorite and adds
// it otherwise. The cache read and the write are not atomic: two toggles
// for the same movie racing from the same user resolve by write-arrival
// order at the keyed record, not by call order.
func (fs *FavoritesService) ToggleFavorite(ctx context.Context, movieID int, movieTitle, movieGenre, posterPath string) error {
	if fs.IsFavorite(movieID) {
		return fs.RemoveFromFavorites(ctx, movieID)
	}
	return fs.AddToFavorites(ctx, movieID, movieTitle, movieGenre, posterPath)
}

// IsFavorite reports whether the movie is in the local cache. Never hits
// the store.
func (fs *FavoritesService) IsFavorite(movieID int) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return containsInt(fs.favoriteIDs, movieID)
}

// LoadUserFavorites rebuilds both local caches from the store. A query
// failure resets the caches to empty instead of propagating; a missing
// session is a no-op.
func (fs *FavoritesService) LoadUserFavorites(ctx context.Context) {
	user := fs.Session.CurrentUser()
	if user == nil {
		return
	}

	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: user.UserID},
	}

	items, err := fs.Dynamo.QueryItemsWithIndex(ctx, models.FavoritesTable, models.UserIDIndex, keyCondition, expressionValues, nil, 0)
	if err != nil {
		log.Printf("❌ Failed to load favorites for user %s: %v", user.UserID, err)
		fs.resetCaches(user.UserID)
		return
	}

	var records []models.FavoriteRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		log.Printf("❌ Failed to unmarshal favorites for user %s: %v", user.UserID, err)
		fs.resetCaches(user.UserID)
		return
	}

	ids := make([]int, 0, len(records))
	movies := make([]models.FavoriteMovieDisplay, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.MovieID)
		movies = append(movies, models.FavoriteMovieDisplay{
			ID:         record.MovieID,
			Title:      record.MovieTitle,
			Genre:      record.MovieGenre,
			PosterPath: record.PosterPath,
			AddedAt:    record.AddedAt,
		})
	}

	fs.mu.Lock()
	fs.favoriteIDs = ids
	fs.favoriteMovies = movies
	fs.mu.Unlock()

	fs.notify(user.UserID)
}

// Refresh reloads the caches from the store.
func (fs *FavoritesService) Refresh(ctx context.Context) {
	fs.LoadUserFavorites(ctx)
}

// GetFavoritesForMovie returns every user's favorite record for one movie,
// deduplicated by userId. Store failures degrade to an empty list.
func (fs *FavoritesService) GetFavoritesForMovie(ctx context.Context, movieID int) []models.FavoriteRecord {
	keyCondition := "movieId = :movieId"
	expressionValues := map[string]types.AttributeValue{
		":movieId": &types.AttributeValueMemberN{Value: strconv.Itoa(movieID)},
	}

	items, err := fs.Dynamo.QueryItemsWithIndex(ctx, models.FavoritesTable, models.MovieIDIndex, keyCondition, expressionValues, nil, 0)
	if err != nil {
		log.Printf("❌ Failed to load favorites for movie %d: %v", movieID, err)
		return []models.FavoriteRecord{}
	}

	var records []models.FavoriteRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		log.Printf("❌ Failed to unmarshal favorites for movie %d: %v", movieID, err)
		return []models.FavoriteRecord{}
	}

	seen := make(map[string]bool, len(records))
	unique := make([]models.FavoriteRecord, 0, len(records))
	for _, record := range records {
		if seen[record.UserID] {
			continue
		}
		seen[record.UserID] = true
		unique = append(unique, record)
	}
	return unique
}

// FavoriteIDs returns a copy of the cached favorite movie ids.
func (fs *FavoritesService) FavoriteIDs() []int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	ids := make([]int, len(fs.favoriteIDs))
	copy(ids, fs.favoriteIDs)
	return ids
}

// FavoriteMovies returns a copy of the cached display list.
func (fs *FavoritesService) FavoriteMovies() []models.FavoriteMovieDisplay {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	movies := make([]models.FavoriteMovieDisplay, len(fs.favoriteMovies))
	copy(movies, fs.favoriteMovies)
	return movies
}

// Count returns the number of cached favorites.
func (fs *FavoritesService) Count() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.favoriteIDs)
}

// OnFavoritesChanged registers a listener for cache updates.
func (fs *FavoritesService) OnFavoritesChanged(listener FavoritesListener) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.listeners = append(fs.listeners, listener)
}

func (fs *FavoritesService) resetCaches(userID string) {
	fs.mu.Lock()
	fs.favoriteIDs = nil
	fs.favoriteMovies = nil
	fs.mu.Unlock()
	fs.notify(userID)
}

func (fs *FavoritesService) notify(userID string) {
	fs.mu.RLock()
	listeners := make([]FavoritesListener, len(fs.listeners))
	copy(listeners, fs.listeners)
	ids := make([]int, len(fs.favoriteIDs))
	copy(ids, fs.favoriteIDs)
	fs.mu.RUnlock()

	for _, listener := range listeners {
		listener(userID, ids)
	}
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
