package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaKey_Image(t *testing.T) {
	key := MediaKey("posts", "user-1", "image/jpeg")

	assert.True(t, strings.HasPrefix(key, "posts/user-1_"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestMediaKey_Video(t *testing.T) {
	key := MediaKey("stories", "user-2", "video/mp4")

	assert.True(t, strings.HasPrefix(key, "stories/user-2_"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
}

func TestMediaKey_UnknownTypeDefaultsToVideo(t *testing.T) {
	key := MediaKey("channels", "user-3", "application/octet-stream")
	assert.True(t, strings.HasSuffix(key, ".mp4"))
}
