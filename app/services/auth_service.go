package services

import (
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Identity is the acting user extracted from a verified token. Handlers
// must take authorship from here, never from a request body.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// AuthService registers users, checks credentials and issues/verifies
// bearer tokens.
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
}

// NewAuthService creates a new AuthService signing tokens with secret
func NewAuthService(userRepo repositories.UserRepository, secret []byte) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
	}
}

// Register creates a new user with a hashed password. Usernames are
// unique; a taken username fails with ErrConflict.
func (s *AuthService) Register(username, firstName, lastName, password string) (*models.User, error) {
	if username == "" || firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: username, first name and last name are required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must have 8 or more characters", ErrValidation)
	}

	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, fmt.Errorf("%w: a user with the same username already exists", ErrConflict)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hashed),
		IsAdmin:   false,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns a signed token. An unknown
// username fails with ErrNotFound, a wrong password with ErrUnauthorized.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: incorrect password", ErrUnauthorized)
	}

	// The token carries the identity only, never the user record.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"admin": user.IsAdmin,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})

	return token.SignedString(s.secret)
}

// Authenticate verifies a bearer token and returns the identity it
// carries. Any parse, signature or expiry failure is ErrForbidden.
func (s *AuthService) Authenticate(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid or expired JSON web token", ErrForbidden)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("%w: invalid or expired JSON web token", ErrForbidden)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("%w: invalid or expired JSON web token", ErrForbidden)
	}
	admin, _ := claims["admin"].(bool)

	return Identity{UserID: sub, IsAdmin: admin}, nil
}

// canModify reports whether the actor may mutate a resource owned by
// ownerID. Admins may mutate anything.
func canModify(actor Identity, ownerID string) bool {
	return actor.IsAdmin || actor.UserID == ownerID
}
