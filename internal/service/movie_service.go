package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"
	"github.com/Nathal25/LUMIX-BACKEND/internal/pexels"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// VideoProvider is the third-party catalog source.
type VideoProvider interface {
	Search(ctx context.Context, query string, perPage int) ([]pexels.Video, error)
	Popular(ctx context.Context, perPage int) ([]pexels.Video, error)
}

type MovieService struct {
	movies   MovieStore
	provider VideoProvider
}

func NewMovieService(movies MovieStore, provider VideoProvider) *MovieService {
	return &MovieService{movies: movies, provider: provider}
}

func (s *MovieService) Get(ctx context.Context, idHex string) (*models.Movie, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *MovieService) List(ctx context.Context, q string, limit, offset int) ([]models.Movie, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.movies.List(ctx, q, limit, offset)
}

// SyncSearch pulls provider videos matching the query into the catalog,
// skipping entries already ingested. Returns the number of new movies.
func (s *MovieService) SyncSearch(ctx context.Context, query string, perPage int) (int, error) {
	videos, err := s.provider.Search(ctx, query, normalizePerPage(perPage))
	if err != nil {
		return 0, err
	}
	return s.ingest(ctx, videos, query)
}

func (s *MovieService) SyncPopular(ctx context.Context, perPage int) (int, error) {
	videos, err := s.provider.Popular(ctx, normalizePerPage(perPage))
	if err != nil {
		return 0, err
	}
	return s.ingest(ctx, videos, "popular")
}

// Pexels caps per_page at 80.
func normalizePerPage(n int) int {
	if n <= 0 {
		return 15
	}
	if n > 80 {
		return 80
	}
	return n
}

func (s *MovieService) ingest(ctx context.Context, videos []pexels.Video, label string) (int, error) {
	added := 0
	for _, v := range videos {
		existing, err := s.movies.FindByPexelsID(ctx, v.ID)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}

		now := time.Now().UTC()
		m := &models.Movie{
			PexelsID:  v.ID,
			Title:     titleFor(v, label),
			Image:     v.Image,
			VideoURL:  v.BestFile(),
			Duration:  v.Duration,
			Author:    v.User.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := s.movies.Create(ctx, m); err != nil {
			// Concurrent syncs can race on the same provider id; the unique
			// index makes the duplicate harmless.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return added, err
		}
		added++
	}
	log.Info().Str("label", label).Int("added", added).Msg("catalog sync done")
	return added, nil
}

// titleFor derives a human title from the provider URL slug; Pexels videos
// carry no title of their own.
func titleFor(v pexels.Video, fallback string) string {
	slug := strings.Trim(v.URL, "/")
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	// Strip the trailing numeric id from slugs like "ocean-waves-85423".
	if i := strings.LastIndex(slug, "-"); i > 0 {
		if _, ok := numeric(slug[i+1:]); ok {
			slug = slug[:i]
		}
	}
	slug = strings.ReplaceAll(slug, "-", " ")
	if slug == "" {
		return fmt.Sprintf("%s #%d", fallback, v.ID)
	}
	return titleCase(slug)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func numeric(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
