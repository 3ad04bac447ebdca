package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("dev", &buf)

	l.With("component", "category").Warn(context.Background(), "failed to delete image", "image", "a.png")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=category")
	assert.Contains(t, out, "image=a.png")
}

func TestSlogLogger_JSONInProd(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", &buf)

	l.Error(context.Background(), "boom", "err", "x")

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"msg":"boom"`)
}

func TestSlogLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("dev", &buf)

	l.Info(context.Background(), "order placed", "order", "o1")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "order=o1")
}
