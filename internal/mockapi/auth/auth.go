package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email is unknown or the password
// does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is the profile returned at login.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

type account struct {
	user         User
	passwordHash []byte
}

// Service holds admin accounts and the tokens issued to them.
type Service struct {
	bcryptCost int
	logger     *slog.Logger

	mu       sync.RWMutex
	accounts map[string]account
	tokens   map[string]int64
	nextID   int64
}

// NewService creates an empty Service hashing passwords at bcryptCost.
func NewService(bcryptCost int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		bcryptCost: bcryptCost,
		logger:     logger,
		accounts:   make(map[string]account),
		tokens:     make(map[string]int64),
		nextID:     1,
	}
}

// AddAccount registers an admin. Emails are matched case-insensitively.
func (s *Service) AddAccount(email, password, name string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	u := User{ID: s.nextID, Email: email, Name: name}
	s.nextID++
	s.accounts[key] = account{user: u, passwordHash: hash}
	return u, nil
}

// Login checks the credentials and issues a new token.
func (s *Service) Login(email, password string) (string, User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return "", User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", User{}, err
	}

	s.mu.Lock()
	s.tokens[token] = acc.user.ID
	s.mu.Unlock()

	s.logger.Info("admin logged in", "userId", acc.user.ID)
	return token, acc.user, nil
}

// Valid reports whether token was issued by Login.
func (s *Service) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// generateToken returns 32 random bytes, base64url encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
