package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresigner(t *testing.T) {
	p, err := NewPresigner(S3Options{
		Bucket:    "gallery",
		Region:    "us-east-1",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
		TTL:       5 * time.Minute,
	}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Signs Object Keys", func(t *testing.T) {
		url := p.Resolve(ctx, "salons/7/before/1.jpg")

		assert.Contains(t, url, "http://localhost:9000/gallery/salons/7/before/1.jpg?")
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.Contains(t, url, "X-Amz-Expires=300")
	})

	t.Run("Leaves Links Alone", func(t *testing.T) {
		assert.Equal(t, "https://cdn.test/a.jpg", p.Resolve(ctx, "https://cdn.test/a.jpg"))
		assert.Equal(t, "/static/a.jpg", p.Resolve(ctx, "/static/a.jpg"))
		assert.Equal(t, "/salons/7/before/1.jpg", p.Resolve(ctx, "/salons/7/before/1.jpg"))
		assert.Equal(t, "", p.Resolve(ctx, ""))
	})
}

func TestIsLink(t *testing.T) {
	assert.True(t, isLink("http://cdn.test/a.jpg"))
	assert.True(t, isLink("https://cdn.test/a.jpg"))
	assert.True(t, isLink("/static/img/photo-placeholder.svg"))
	assert.False(t, isLink("salons/7/after/2.jpg"))
}

func TestNewPresignerNeedsBucket(t *testing.T) {
	_, err := NewPresigner(S3Options{}, nil)
	assert.Error(t, err)
}

func TestPassThrough(t *testing.T) {
	assert.Equal(t, "k.jpg", PassThrough{}.Resolve(context.Background(), "k.jpg"))
}
