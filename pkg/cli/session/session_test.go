package session

import (
	"testing"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstablishAndClear(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	var events []bool
	s.OnChange(func(established bool) {
		events = append(events, established)
	})

	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	s.Establish(user, "key-1")

	assert.True(t, s.Authenticated())
	assert.Equal(t, "key-1", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, user.Email, s.User().Email)

	s.Clear()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	assert.Equal(t, []bool{true, false}, events)
}

func TestAllSubscribersAreNotified(t *testing.T) {
	s := New()

	calls := 0
	s.OnChange(func(bool) { calls++ })
	s.OnChange(func(bool) { calls++ })

	s.Establish(&models.User{ID: uuid.New()}, "key")
	assert.Equal(t, 2, calls)
}
