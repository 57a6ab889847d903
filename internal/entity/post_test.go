package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		image   string
		want    PostType
	}{
		{"content only", "hello world", "", PostTypeText},
		{"content and image", "hello world", "/uploads/a.png", PostTypeMixed},
		{"image only", "", "/uploads/a.png", PostTypeImage},
		{"neither", "", "", PostTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveType(tt.content, tt.image))
		})
	}
}

func TestPostType_Constants(t *testing.T) {
	assert.Equal(t, PostType("text"), PostTypeText)
	assert.Equal(t, PostType("image"), PostTypeImage)
	assert.Equal(t, PostType("mixed"), PostTypeMixed)
}
