package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(handler http.HandlerFunc) (*MovieService, *httptest.Server) {
	server := httptest.NewServer(handler)
	service := &MovieService{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		Client:        server.Client(),
		responseCache: gocache.New(time.Minute, time.Minute),
	}
	return service, server
}

func TestGetTrendingMoviesParsesResponse(t *testing.T) {
	ctx := context.Background()
	service, server := newCatalogFixture(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		fmt.Fprint(w, `{"page":1,"results":[{"id":603,"title":"The Matrix","poster_path":"/matrix.jpg","genre_ids":[28,878],"vote_average":8.2}],"total_pages":1,"total_results":1}`)
	})
	defer server.Close()

	response, err := service.GetTrendingMovies(ctx)
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, 603, response.Results[0].ID)
	assert.Equal(t, "The Matrix", response.Results[0].Title)
	assert.Equal(t, []int{28, 878}, response.Results[0].GenreIDs)
}

func TestFetchMoviesCachesResponses(t *testing.T) {
	ctx := context.Background()
	calls := 0
	service, server := newCatalogFixture(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"page":1,"results":[],"total_pages":1,"total_results":0}`)
	})
	defer server.Close()

	_, err := service.GetTopRatedMovies(ctx)
	require.NoError(t, err)
	_, err = service.GetTopRatedMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchMoviesRejectsErrorStatus(t *testing.T) {
	ctx := context.Background()
	service, server := newCatalogFixture(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := service.GetUpcomingMovies(ctx)
	assert.Error(t, err)
}

func TestImageURLHelpers(t *testing.T) {
	service := NewMovieServiceFromEnv()

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", service.PosterURL("/matrix.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/back.jpg", service.BackdropURL("/back.jpg"))
	assert.Empty(t, service.PosterURL(""))
	assert.Empty(t, service.BackdropURL(""))
}
