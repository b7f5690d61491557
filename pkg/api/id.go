package api

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const (
	idLength = 24
	charset  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	userIDPrefix        = "user_"
	destinationIDPrefix = "dest_"
	exploreIDPrefix     = "exp_"
)

var (
	userIDPattern        = regexp.MustCompile(`^user_[a-zA-Z0-9]{24}$`)
	destinationIDPattern = regexp.MustCompile(`^dest_[a-zA-Z0-9]{24}$`)
	exploreIDPattern     = regexp.MustCompile(`^exp_[a-zA-Z0-9]{24}$`)
)

// NewUserID generates a new user ID with the "user_" prefix followed by
// 24 cryptographically random alphanumeric characters.
func NewUserID() string {
	return userIDPrefix + randomAlphanumeric(idLength)
}

// NewDestinationID generates a new destination ID with the "dest_" prefix.
func NewDestinationID() string {
	return destinationIDPrefix + randomAlphanumeric(idLength)
}

// NewExploreID generates a new explore item ID with the "exp_" prefix.
func NewExploreID() string {
	return exploreIDPrefix + randomAlphanumeric(idLength)
}

// ValidateUserID checks whether the given string is a well-formed user ID.
func ValidateUserID(id string) bool {
	return userIDPattern.MatchString(id)
}

// ValidateDestinationID checks whether the given string is a well-formed
// destination ID.
func ValidateDestinationID(id string) bool {
	return destinationIDPattern.MatchString(id)
}

// ValidateExploreID checks whether the given string is a well-formed
// explore item ID.
func ValidateExploreID(id string) bool {
	return exploreIDPattern.MatchString(id)
}

func randomAlphanumeric(n int) string {
	max := big.NewInt(int64(len(charset)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b)
}
