package server

import (
	"golang.org/x/crypto/bcrypt"
)

// Role grants access to parts of the server.
type Role string

const (
	RoleCollector Role = "collector"
	RoleAdmin     Role = "admin"
)

// User is a logged in user as stored in the session.
type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type account struct {
	user User
	hash []byte
}

// userStore is the in-memory demo user table.
type userStore struct {
	accounts map[string]account
	// dummy is compared against for unknown users so that lookups take
	// the same time as failed passwords.
	dummy []byte
}

var demoUsers = []struct {
	name, password string
	role           Role
}{
	{"collector", "collector123", RoleCollector},
	{"admin", "admin123", RoleAdmin},
}

func newUserStore(cost int) (*userStore, error) {
	s := &userStore{accounts: make(map[string]account)}
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), cost)
		if err != nil {
			return nil, err
		}
		s.accounts[u.name] = account{user: User{Username: u.name, Role: u.role}, hash: hash}
	}
	var err error
	s.dummy, err = bcrypt.GenerateFromPassword([]byte("not a password"), cost)
	return s, err
}

// authenticate returns the user with the given credentials.
func (s *userStore) authenticate(username, password string) (User, bool) {
	acc, ok := s.accounts[username]
	hash := acc.hash
	if !ok {
		hash = s.dummy
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !ok {
		return User{}, false
	}
	return acc.user, true
}
