package domain

import "github.com/google/uuid"

// shortIDLen is how many leading characters of an ID are shown to users.
const shortIDLen = 8

// generateID creates a new unique identifier.
func generateID() string {
	return uuid.New().String()
}

// ShortID returns the user-facing prefix of an ID.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
