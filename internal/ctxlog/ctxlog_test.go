package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_DefaultWithoutLogger(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
	assert.NotPanics(t, func() { FromContext(Discard(context.Background())).Debug("dropped") })
}
