package payments

import (
	"context"
	"fmt"
	"time"
)

// DirectoryUser is a user record returned by the simulated directory.
type DirectoryUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Directory is a stand-in for a user table. Each lookup costs a fixed delay.
type Directory struct {
	delay time.Duration
}

// NewDirectory creates a Directory whose lookups take delay each.
func NewDirectory(delay time.Duration) *Directory {
	return &Directory{delay: delay}
}

// FetchUser returns the user with the given id after the lookup delay.
func (d *Directory) FetchUser(ctx context.Context, id int) (DirectoryUser, error) {
	if err := sleep(ctx, d.delay); err != nil {
		return DirectoryUser{}, fmt.Errorf("fetch user %d: %w", id, err)
	}
	return DirectoryUser{ID: id, Name: fmt.Sprintf("User %d", id)}, nil
}
