package service

import (
	"testing"

	dmn "github.com/beka-birhanu/wumpus-api/domain"
	"github.com/stretchr/testify/assert"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestAuth(t *testing.T) {
	repo := newMemoryUserRepo()
	tokenizer := &stubTokenizer{}
	auth, err := NewAuthService(repo, tokenizer)
	assert.NoError(t, err)

	t.Run("Register then sign in", func(t *testing.T) {
		assert.NoError(t, auth.Register("cave_walker", strongPassword))

		user, token, err := auth.SignIn("cave_walker", strongPassword)
		assert.NoError(t, err)
		assert.Equal(t, "cave_walker", user.Username)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, user.ID.String(), tokenizer.claims["userID"])
		assert.Equal(t, tokenLifetime, tokenizer.exp)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("cave_walker", "not-the-password")
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("nobody", strongPassword)
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})

	t.Run("Weak password is rejected", func(t *testing.T) {
		err := auth.Register("another_one", "123")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
	})
}
