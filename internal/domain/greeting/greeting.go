package greeting

import (
	"errors"
	"fmt"
	"net/http"
)

const StatusAccessDenied = http.StatusForbidden

// DefaultSecretCode is the code accepted by Secret unless configured otherwise.
const DefaultSecretCode = 42

var ErrAccessDenied = errors.New("access denied")

type AccessDeniedError struct{}

func (e *AccessDeniedError) Error() string { return "Incorrect code!" }

func (e *AccessDeniedError) StatusCode() int { return StatusAccessDenied }

func (e *AccessDeniedError) Is(target error) bool { return target == ErrAccessDenied }

// Welcome builds the root greeting. An empty name greets a stranger.
func Welcome(name, title string) string {
	if name == "" {
		name = "stranger"
	}
	return fmt.Sprintf("Welcome %s%s!", title, name)
}

// Secret returns the agent message when code matches want.
func Secret(code, want int) (string, error) {
	if code != want {
		return "", &AccessDeniedError{}
	}
	return "Welcome, agent HAL", nil
}
