package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name: "valid user",
			user: &User{
				ID:        "user0001",
				Username:  "alice",
				FirstName: "Alice",
				LastName:  "Smith",
				Password:  "hashed",
			},
			wantErr: false,
		},
		{
			name: "username with non-alphanumeric characters",
			user: &User{
				ID:        "user0001",
				Username:  "alice smith!",
				FirstName: "Alice",
				LastName:  "Smith",
				Password:  "hashed",
			},
			wantErr: true,
		},
		{
			name: "missing username",
			user: &User{
				ID:        "user0001",
				FirstName: "Alice",
				LastName:  "Smith",
				Password:  "hashed",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserReferences(t *testing.T) {
	user := &User{Username: "alice", FirstName: "Alice", LastName: "Smith", Password: "hashed"}
	user.BeforeCreate()

	assert.NotNil(t, user.Posts)
	assert.NotNil(t, user.Comments)

	t.Run("posts", func(t *testing.T) {
		assert.NoError(t, user.AddPost("post0001"))
		assert.NoError(t, user.AddPost("post0001"), "adding twice keeps one entry")
		assert.Equal(t, []string{"post0001"}, user.Posts)

		user.RemovePost("post0001")
		assert.Empty(t, user.Posts)
		user.RemovePost("post0001")
		assert.Empty(t, user.Posts)
	})

	t.Run("comments", func(t *testing.T) {
		assert.NoError(t, user.AddComment("comment0001"))
		assert.Equal(t, []string{"comment0001"}, user.Comments)

		user.RemoveComment("comment0001")
		assert.Empty(t, user.Comments)
		user.RemoveComment("comment0001")
		assert.Empty(t, user.Comments)
	})

	t.Run("empty ids rejected", func(t *testing.T) {
		assert.Error(t, user.AddPost(""))
		assert.Error(t, user.AddComment(""))
	})
}
