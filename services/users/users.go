package users

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"linearbot/clients"
	"linearbot/models"
)

type UsersService struct {
	linearClient clients.LinearClient
}

func NewUsersService(linearClient clients.LinearClient) *UsersService {
	return &UsersService{linearClient: linearClient}
}

// FindUserIDByName matches name against every Linear user, case-insensitively.
// An exact match beats a substring match regardless of list order. No match is not an error.
func (s *UsersService) FindUserIDByName(ctx context.Context, name string) (mo.Option[string], error) {
	log.Printf("📋 Starting to find Linear user by name: %q", name)

	// The full list is fetched instead of filtering server-side to avoid query-syntax
	// problems with special characters in names
	users, err := s.linearClient.ListUsers(ctx)
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to list Linear users: %w", err)
	}

	match := matchUserByName(users, name)
	if !match.IsPresent() {
		log.Printf("📋 Completed successfully - no Linear user matches %q", name)
		return mo.None[string](), nil
	}

	log.Printf("📋 Completed successfully - matched %q to Linear user %s", name, match.MustGet())
	return match, nil
}

func matchUserByName(users []models.User, name string) mo.Option[string] {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return mo.None[string]()
	}

	for _, user := range users {
		if strings.ToLower(user.Name) == needle {
			return userID(user)
		}
	}
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			return userID(user)
		}
	}
	return mo.None[string]()
}

func userID(user models.User) mo.Option[string] {
	if user.ID == "" {
		return mo.None[string]()
	}
	return mo.Some(user.ID)
}
