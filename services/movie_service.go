package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"moviematch_server/models"

	gocache "github.com/patrickmn/go-cache"
)

const tmdbImageBaseURL = "https://image.tmdb.org/t/p/w500"

// MovieService is the client for the external movie catalog (TMDB). Only
// the first page of each list is fetched; responses are cached briefly so
// repeated home-screen loads don't hammer the API.
type MovieService struct {
	APIKey  string
	BaseURL string
	Client  *http.Client

	responseCache *gocache.Cache
}

// NewMovieServiceFromEnv reads TMDB_API_KEY and TMDB_BASE_URL from the
// environment.
func NewMovieServiceFromEnv() *MovieService {
	baseURL := os.Getenv("TMDB_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	return &MovieService{
		APIKey:        os.Getenv("TMDB_API_KEY"),
		BaseURL:       baseURL,
		Client:        &http.Client{Timeout: 10 * time.Second},
		responseCache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

// GetTrendingMovies fetches this week's trending movies.
func (s *MovieService) GetTrendingMovies(ctx context.Context) (*models.MoviesResponse, error) {
	return s.fetchMovies(ctx, "/trending/movie/week")
}

// GetTopRatedMovies fetches the top-rated movies.
func (s *MovieService) GetTopRatedMovies(ctx context.Context) (*models.MoviesResponse, error) {
	return s.fetchMovies(ctx, "/movie/top_rated")
}

// GetUpcomingMovies fetches the upcoming movies.
func (s *MovieService) GetUpcomingMovies(ctx context.Context) (*models.MoviesResponse, error) {
	return s.fetchMovies(ctx, "/movie/upcoming")
}

// PosterURL returns the full poster image URL, or "" for an empty path.
func (s *MovieService) PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return tmdbImageBaseURL + posterPath
}

// BackdropURL returns the full backdrop image URL, or "" for an empty path.
func (s *MovieService) BackdropURL(backdropPath string) string {
	if backdropPath == "" {
		return ""
	}
	return tmdbImageBaseURL + backdropPath
}

func (s *MovieService) fetchMovies(ctx context.Context, path string) (*models.MoviesResponse, error) {
	if cached, ok := s.responseCache.Get(path); ok {
		response := cached.(models.MoviesResponse)
		return &response, nil
	}

	requestURL := fmt.Sprintf("%s%s?api_key=%s&page=1", s.BaseURL, path, url.QueryEscape(s.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request %s returned status %d", path, resp.StatusCode)
	}

	var response models.MoviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	s.responseCache.SetDefault(path, response)
	return &response, nil
}
