package service

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenTTL is the lifetime of the session cookie and of the JWT inside it.
	TokenTTL = 2 * time.Hour
	resetTTL = 1 * time.Hour

	minPasswordLen = 8
	minAge         = 13
)

type AuthService struct {
	users      UserStore
	mailer     Mailer
	jwtSecret  []byte
	appBaseURL string
}

type RegisterUserData struct {
	FirstName       string
	LastName        string
	Age             int
	Email           string
	Password        string
	ConfirmPassword string
}

type UpdateProfileData struct {
	FirstName *string
	LastName  *string
	Age       *int
}

func NewAuthService(users UserStore, mailer Mailer, secret, appBaseURL string) *AuthService {
	return &AuthService{
		users:      users,
		mailer:     mailer,
		jwtSecret:  []byte(secret),
		appBaseURL: appBaseURL,
	}
}

// ================== REGISTER & LOGIN ==================

func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.User, error) {
	if data.Password != data.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if err := ValidatePassword(data.Password); err != nil {
		return nil, err
	}
	if data.Age < minAge {
		return nil, fmt.Errorf("%w: age must be at least %d", ErrValidation, minAge)
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.User{
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Age:          data.Age,
		Email:        data.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index turns the loser into the same conflict outcome.
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Login verifies the credentials and issues a signed session token bound to
// the user id. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrUnauthorized
	}

	token, err := s.issueToken(u.ID.Hex(), TokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// VerifyToken validates a session token and returns the bound user id.
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrUnauthorized
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrUnauthorized
	}
	return sub, nil
}

// ================== PASSWORD RESET ==================

// RequestPasswordReset issues a time-boxed reset token and mails the reset
// link. The outcome is identical whether or not the email is registered, so
// the endpoint cannot be used to enumerate accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token, err := s.issueToken(email, resetTTL)
	if err != nil {
		return err
	}

	expiry := time.Now().Add(resetTTL)
	if err := s.users.SetResetToken(ctx, email, token, expiry); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.appBaseURL, url.QueryEscape(token), url.QueryEscape(email))
	if err := s.mailer.SendPasswordReset(ctx, email, link); err != nil {
		// Mail failure must not change the response the caller sees.
		log.Error().Err(err).Msg("failed to send password reset email")
	}
	return nil
}

// ResetPassword consumes a reset token. The token is valid for a single use:
// a matching (email, token) pair with a future expiry, cleared on success.
func (s *AuthService) ResetPassword(ctx context.Context, email, token, newPassword, confirmPassword string) error {
	u, err := s.users.FindByResetToken(ctx, email, token)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidToken
	}

	if newPassword != confirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.ResetPassword(ctx, email, string(hash))
}

// ================== PROFILE ==================

func (s *AuthService) GetUser(ctx context.Context, idHex string) (*models.User, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, idHex string, data UpdateProfileData) (*models.User, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}

	update := map[string]interface{}{}
	if data.FirstName != nil {
		update["firstName"] = *data.FirstName
	}
	if data.LastName != nil {
		update["lastName"] = *data.LastName
	}
	if data.Age != nil {
		if *data.Age < minAge {
			return nil, fmt.Errorf("%w: age must be at least %d", ErrValidation, minAge)
		}
		update["age"] = *data.Age
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	update["updatedAt"] = time.Now().UTC()

	if err := s.users.UpdateByID(ctx, id, update); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, idHex)
}

// DeleteUser removes the account. Favorites and reviews written by the user
// are left in place.
func (s *AuthService) DeleteUser(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	if err := s.users.DeleteByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ================== HELPERS ==================

func (s *AuthService) issueToken(sub string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// ValidatePassword enforces the complexity policy: at least 8 characters
// with one uppercase letter, one digit and one symbol.
func ValidatePassword(pw string) error {
	if len(pw) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	var upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !digit || !symbol {
		return fmt.Errorf("%w: password needs an uppercase letter, a digit and a symbol", ErrValidation)
	}
	return nil
}
