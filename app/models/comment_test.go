package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:      "comment0001",
				Content: "hi",
				Date:    time.Now(),
				User:    "user0001",
				Post:    "post0001",
			},
			wantErr: false,
		},
		{
			name: "missing content",
			comment: &Comment{
				ID:   "comment0001",
				Date: time.Now(),
				User: "user0001",
				Post: "post0001",
			},
			wantErr: true,
		},
		{
			name: "missing post reference",
			comment: &Comment{
				ID:      "comment0001",
				Content: "hi",
				Date:    time.Now(),
				User:    "user0001",
			},
			wantErr: true,
		},
		{
			name: "missing author reference",
			comment: &Comment{
				ID:      "comment0001",
				Content: "hi",
				Date:    time.Now(),
				Post:    "post0001",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{Content: "hi", User: "user0001", Post: "post0001"}
	comment.BeforeCreate()

	assert.False(t, comment.Date.IsZero())
	assert.NotNil(t, comment.LikedBy)
}

func TestCommentLikes(t *testing.T) {
	comment := &Comment{Content: "hi", User: "user0001", Post: "post0001"}
	comment.BeforeCreate()

	assert.True(t, comment.Like("user0002"))
	assert.False(t, comment.Like("user0002"))
	assert.Equal(t, []string{"user0002"}, comment.LikedBy)

	assert.True(t, comment.Unlike("user0002"))
	assert.False(t, comment.Unlike("user0002"))
	assert.Empty(t, comment.LikedBy)
}
