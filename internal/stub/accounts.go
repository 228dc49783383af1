package stub

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountExists = errors.New("account already exists")
	ErrInvalidLogin  = errors.New("invalid login or password")
)

type account struct {
	id           int
	login        string
	passwordHash string
}

// Accounts implements registration and login over an in-memory account table.
type Accounts struct {
	mu       sync.Mutex
	byLogin  map[string]account
	nextID   int
	secret   string
	tokenTTL time.Duration
	cost     int
}

func NewAccounts(secret string, tokenTTL time.Duration, bcryptCost int) *Accounts {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Accounts{
		byLogin:  make(map[string]account),
		nextID:   1,
		secret:   secret,
		tokenTTL: tokenTTL,
		cost:     bcryptCost,
	}
}

func (a *Accounts) Register(login, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byLogin[login]; exists {
		return ErrAccountExists
	}
	a.byLogin[login] = account{id: a.nextID, login: login, passwordHash: string(hash)}
	a.nextID++
	return nil
}

// Login checks the password and returns a signed HS256 token.
func (a *Accounts) Login(login, password string) (string, error) {
	a.mu.Lock()
	acc, ok := a.byLogin[login]
	a.mu.Unlock()
	if !ok {
		return "", ErrInvalidLogin
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)) != nil {
		return "", ErrInvalidLogin
	}

	return a.generateToken(acc)
}

func (a *Accounts) generateToken(acc account) (string, error) {
	claims := jwt.MapClaims{
		"id":    acc.id,
		"login": acc.login,
		"exp":   time.Now().Add(a.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(a.secret))
}
