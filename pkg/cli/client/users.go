package client

import (
	"fmt"
	"net/http"

	"photo-vault-go/pkg/models"
)

// CreateUserRequest represents the request payload for creating a user
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateUser creates a new user and returns the user with API key
func (c *Client) CreateUser(firstName, lastName, email string) (*models.User, error) {
	var user models.User
	payload := CreateUserRequest{FirstName: firstName, LastName: lastName, Email: email}
	if err := c.doJSONRequest(http.MethodPost, "/api/v1/users", payload, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetCurrentUser fetches the user owning the configured API key
func (c *Client) GetCurrentUser() (*models.User, error) {
	var user models.User
	if err := c.doGetRequest("/api/v1/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
