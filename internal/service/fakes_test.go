package service

import (
	"context"
	"sync"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes. They mirror the repository conventions: nil on
// missing lookups, mongo.ErrNoDocuments on unmatched update/delete, and a
// code-11000 write exception on unique-key violations.

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, duplicateKeyErr()
		}
	}
	id := primitive.NewObjectID()
	cp := *u
	cp.ID = id
	s.users[id] = &cp
	return id, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateByID(_ context.Context, id primitive.ObjectID, update bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := update["firstName"].(string); ok {
		u.FirstName = v
	}
	if v, ok := update["lastName"].(string); ok {
		u.LastName = v
	}
	if v, ok := update["age"].(int); ok {
		u.Age = v
	}
	return nil
}

func (s *fakeUserStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByResetToken(_ context.Context, email, token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && u.ResetToken == token &&
			u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(time.Now()) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) SetResetToken(_ context.Context, email, token string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u.ResetToken = token
			u.ResetTokenExpiry = &expiry
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *fakeUserStore) ResetPassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u.PasswordHash = passwordHash
			u.ResetToken = ""
			u.ResetTokenExpiry = nil
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  int
	to    string
	links []string
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent++
	m.to = to
	m.links = append(m.links, resetLink)
	return nil
}

type fakeMovieStore struct {
	mu     sync.Mutex
	movies map[primitive.ObjectID]*models.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: map[primitive.ObjectID]*models.Movie{}}
}

func (s *fakeMovieStore) Create(_ context.Context, m *models.Movie) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.movies {
		if existing.PexelsID == m.PexelsID {
			return primitive.NilObjectID, duplicateKeyErr()
		}
	}
	id := primitive.NewObjectID()
	cp := *m
	cp.ID = id
	s.movies[id] = &cp
	return id, nil
}

func (s *fakeMovieStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.movies[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeMovieStore) List(_ context.Context, q string, limit, offset int) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Movie
	for _, m := range s.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (s *fakeMovieStore) FindByPexelsID(_ context.Context, pexelsID int) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.PexelsID == pexelsID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeFavoriteStore struct {
	mu        sync.Mutex
	favorites map[primitive.ObjectID]*models.Favorite
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{favorites: map[primitive.ObjectID]*models.Favorite{}}
}

func (s *fakeFavoriteStore) Create(_ context.Context, f *models.Favorite) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.favorites {
		if existing.UserID == f.UserID && existing.MovieID == f.MovieID {
			return primitive.NilObjectID, duplicateKeyErr()
		}
	}
	id := primitive.NewObjectID()
	cp := *f
	cp.ID = id
	s.favorites[id] = &cp
	return id, nil
}

func (s *fakeFavoriteStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.favorites, id)
	return nil
}

func (s *fakeFavoriteStore) FindByUserAndMovie(_ context.Context, userID, movieID primitive.ObjectID) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.UserID == userID && f.MovieID == movieID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeFavoriteStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.FavoriteWithMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FavoriteWithMovie
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, models.FavoriteWithMovie{
				ID:        f.ID,
				UserID:    f.UserID,
				CreatedAt: f.CreatedAt,
			})
		}
	}
	return out, nil
}

type fakeReviewStore struct {
	mu      sync.Mutex
	reviews map[primitive.ObjectID]*models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[primitive.ObjectID]*models.Review{}}
}

func (s *fakeReviewStore) Create(_ context.Context, rv *models.Review) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.UserID == rv.UserID && existing.MovieID == rv.MovieID {
			return primitive.NilObjectID, duplicateKeyErr()
		}
	}
	id := primitive.NewObjectID()
	cp := *rv
	cp.ID = id
	s.reviews[id] = &cp
	return id, nil
}

func (s *fakeReviewStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.reviews, id)
	return nil
}

func (s *fakeReviewStore) ListByMovie(_ context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for _, rv := range s.reviews {
		if rv.MovieID == movieID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (s *fakeReviewStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for _, rv := range s.reviews {
		if rv.UserID == userID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (s *fakeReviewStore) FindByUserAndMovie(_ context.Context, userID, movieID primitive.ObjectID) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.reviews {
		if rv.UserID == userID && rv.MovieID == movieID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeReviewStore) UpdateByUserAndMovie(_ context.Context, userID, movieID primitive.ObjectID, comment string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.reviews {
		if rv.UserID == userID && rv.MovieID == movieID {
			rv.Comment = comment
			rv.Rating = rating
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *fakeReviewStore) AverageRating(_ context.Context, movieID primitive.ObjectID) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, count := 0, 0
	for _, rv := range s.reviews {
		if rv.MovieID == movieID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}
