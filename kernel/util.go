package kernel

import "github.com/google/uuid"

// UuidV7 returns a time-ordered uuid, used as the X-Request-ID on
// outbound HTTP calls.
func UuidV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
