package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestNew_DefaultLanguages(t *testing.T) {
	assert.Equal(t, []string{"eng", "hin"}, New().Languages())
}

func TestWithLanguages(t *testing.T) {
	assert.Equal(t, []string{"deu"}, New(WithLanguages("deu")).Languages())
	assert.Equal(t, DefaultLanguages, New(WithLanguages()).Languages())
}

func TestSupportedMIMETypes(t *testing.T) {
	types := New().SupportedMIMETypes()

	assert.Contains(t, types, "image/png")
	assert.Contains(t, types, "image/jpeg")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestCollect_NilCapture(t *testing.T) {
	text, err := New().Collect(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, text)
}

func TestCollect_EmptyImage(t *testing.T) {
	text, err := New().Collect(context.Background(), &domain.Capture{MIMEType: "image/png"})

	assert.ErrorIs(t, err, domain.ErrNoContent)
	assert.Nil(t, text)
}

func TestCollect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Collect(ctx, &domain.Capture{Content: []byte{0x89, 'P', 'N', 'G'}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_WithoutTesseract(t *testing.T) {
	if Available {
		t.Skip("built with tesseract")
	}

	_, err := New().Collect(context.Background(), &domain.Capture{
		Source:  "shot.png",
		Content: []byte{0x89, 'P', 'N', 'G'},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
