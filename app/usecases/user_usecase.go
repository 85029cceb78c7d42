package usecases

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/repositories"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// RevocationStore remembers logged-out tokens until they expire on their
// own. Replaces a process-wide revoked-token list with a keyed store.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type UserUsecase interface {
	Register(user entities.User) error
	Login(usernameOrEmail, password string) (string, string, error) // accessToken, refreshToken
	Logout(ctx context.Context, token string) error
	GetProfile(id int) (entities.GetUser, error)
	UpdateUser(id int, input entities.UpdateUser) error
}

type userUsecase struct {
	userRepo  repositories.UserRepository
	revoked   RevocationStore
	jwtSecret []byte
}

func NewUserUsecase(userRepo repositories.UserRepository, revoked RevocationStore, jwtSecret string) UserUsecase {
	return &userUsecase{userRepo: userRepo, revoked: revoked, jwtSecret: []byte(jwtSecret)}
}

// --- 1. REGISTER ---
func (u *userUsecase) Register(user entities.User) error {
	if !isValidPassword(user.Password) {
		return &UseCaseError{
			Code:    http.StatusBadRequest,
			Message: "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character",
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if user.Role == "" {
		user.Role = "user"
	}
	return u.userRepo.Create(user, string(hashedPassword))
}

// --- 2. LOGIN ---
func (u *userUsecase) Login(usernameOrEmail, password string) (string, string, error) {
	username, storedHash, err := u.userRepo.GetCredentials(usernameOrEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", &UseCaseError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) != nil {
		return "", "", &UseCaseError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	user, err := u.userRepo.GetByUsername(username)
	if err != nil {
		return "", "", err
	}

	accessToken, err := u.signToken(username, user.Email, user.Role, accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := u.signToken(username, user.Email, user.Role, refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (u *userUsecase) signToken(username, email, role string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}

// --- 3. LOGOUT ---
// The token stays in the revocation store only for its remaining
// lifetime; after expiry the verifier rejects it anyway.
func (u *userUsecase) Logout(ctx context.Context, token string) error {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return u.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return &UseCaseError{Code: http.StatusUnauthorized, Message: "invalid token"}
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := u.revoked.Revoke(ctx, token, ttl); err != nil {
		return &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to revoke token"}
	}
	return nil
}

// --- 4. PROFILE ---
func (u *userUsecase) GetProfile(id int) (entities.GetUser, error) {
	user, err := u.userRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.GetUser{}, &UseCaseError{Code: http.StatusNotFound, Message: "user not found"}
	}
	return user, err
}

func (u *userUsecase) UpdateUser(id int, input entities.UpdateUser) error {
	if _, err := u.userRepo.GetByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &UseCaseError{Code: http.StatusNotFound, Message: "user not found"}
		}
		return err
	}
	return u.userRepo.Update(id, input)
}

func isValidPassword(password string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= '0' && char <= '9':
			hasNumber = true
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial && len(password) >= 8
}
