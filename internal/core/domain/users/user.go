package users

import (
	"errors"
	"regexp"
)

// ErrEmailTaken signals that a signup email is already registered.
var ErrEmailTaken = errors.New("email already taken")

// ErrNotFound signals that no user matched the lookup.
var ErrNotFound = errors.New("user not found")

type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	PasswordHash string `json:"-"`
}

// NewUserInput carries a signup payload before hashing.
type NewUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// signupRules are evaluated in declaration order so the response lists
// violations in a stable, documented order.
var signupRules = []struct {
	message string
	failed  func(in NewUserInput) bool
}{
	{"firstName is missing", func(in NewUserInput) bool { return in.FirstName == "" }},
	{"lastName is missing", func(in NewUserInput) bool { return in.LastName == "" }},
	{"emailAddress is missing", func(in NewUserInput) bool { return in.EmailAddress == "" }},
	{"password is missing", func(in NewUserInput) bool { return in.Password == "" }},
	{"not a valid email", func(in NewUserInput) bool {
		return in.EmailAddress != "" && !emailPattern.MatchString(in.EmailAddress)
	}},
}

// ValidateNew returns one human-readable message per violated rule,
// in rule declaration order. An empty slice means the input is valid.
func (in NewUserInput) ValidateNew() []string {
	var msgs []string
	for _, rule := range signupRules {
		if rule.failed(in) {
			msgs = append(msgs, rule.message)
		}
	}
	return msgs
}
