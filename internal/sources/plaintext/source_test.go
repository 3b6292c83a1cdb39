package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	source := New()
	require.NotNil(t, source)
	assert.IsType(t, &Source{}, source)
}

func TestSupportedMIMETypes(t *testing.T) {
	types := New().SupportedMIMETypes()

	assert.Contains(t, types, "text/plain")
	assert.Contains(t, types, "text/html")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestCollect_Success(t *testing.T) {
	capture := &domain.Capture{
		Source:   "/screens/label.txt",
		MIMEType: "text/plain",
		Content:  []byte("Ingredients: oats, honey.\nStorage: cool."),
	}

	text, err := New().Collect(context.Background(), capture)

	require.NoError(t, err)
	assert.Equal(t, "/screens/label.txt", text.Source)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Equal(t, "Ingredients: oats, honey.\nStorage: cool.", text.Text)
	assert.False(t, text.CapturedAt.IsZero())
}

func TestCollect_EmptyContent(t *testing.T) {
	text, err := New().Collect(context.Background(), &domain.Capture{MIMEType: "text/plain"})

	require.NoError(t, err)
	assert.Empty(t, text.Text)
}

func TestCollect_NilCapture(t *testing.T) {
	text, err := New().Collect(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, text)
}
