package schemas

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestLikeSchema(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			name: "complete like",
			body: `{"data":{"id":1,"profileId":2,"likedUserId":"3","isLiked":true,
				"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"},
				"statusCode":201,"success":true}`,
			valid: true,
		},
		{name: "data omitted", body: `{"statusCode":201,"success":true}`, valid: true},
		{name: "data null", body: `{"data":null,"statusCode":201,"success":true}`, valid: true},
		{name: "missing status code", body: `{"success":true}`, valid: false},
		{
			name: "liked user id is a number",
			body: `{"data":{"id":1,"profileId":2,"likedUserId":3,"isLiked":true,
				"createdAt":"a","updatedAt":"b"},"statusCode":201,"success":true}`,
			valid: false,
		},
		{
			name: "missing isLiked",
			body: `{"data":{"id":1,"profileId":2,"likedUserId":"3",
				"createdAt":"a","updatedAt":"b"},"statusCode":201,"success":true}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Like.Validate(decode(t, tt.body))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProfileListSchema(t *testing.T) {
	body := `{"data":{"hasPrevious":false,"hasNext":true,"page":1,"size":10,"totalItems":11,"totalPages":2,
		"content":[{"id":4,"isOnline":true,"lastOnline":"2024-01-01T00:00:00Z","image":{"url":"/a.webp"},
		"navigator":{"distance":120.5}}]},"statusCode":200,"success":true}`
	assert.NoError(t, ProfileList.Validate(decode(t, body)))

	missing := `{"data":{"hasPrevious":false,"content":[]},"statusCode":200,"success":true}`
	assert.Error(t, ProfileList.Validate(decode(t, missing)))
}

func TestAllSchemasCompile(t *testing.T) {
	for _, name := range []string{"like.json", "review.json", "profile.json", "profileList.json", "user.json"} {
		_, err := Compile(name)
		assert.NoError(t, err, name)
	}
	_, err := Compile("nope.json")
	assert.Error(t, err)
}
