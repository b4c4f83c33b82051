package contextutil_test

import (
	"context"
	"go-leave/internal/shared/contextutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
}

func TestExtractMetadata_Empty(t *testing.T) {
	md := contextutil.ExtractMetadata(context.Background())

	assert.Empty(t, md.RequestID)
	assert.Empty(t, md.UserID)
}

func TestGetLogger(t *testing.T) {
	t.Run("logger from context", func(t *testing.T) {
		l := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), l)

		assert.Same(t, l, contextutil.GetLogger(ctx, zap.NewNop()))
	})

	t.Run("fallback to default", func(t *testing.T) {
		def := zap.NewNop()

		assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
