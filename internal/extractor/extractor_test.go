package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestNew_Defaults(t *testing.T) {
	e := New()

	require.NotNil(t, e)
	assert.Equal(t, domain.DefaultAnchors().Lowered(), e.Anchors())
	assert.Equal(t, domain.DefaultStops().Lowered(), e.Stops())
	assert.Equal(t, domain.DefaultStopOffset, e.stopOffset)
	assert.Equal(t, domain.DefaultMaxBlockLength, e.maxLength)
}

func TestNew_FoldsKeywords(t *testing.T) {
	e := New(WithAnchors([]string{"INGREDIENTS:"}), WithStops([]string{"Allergen", ""}))

	assert.Equal(t, domain.KeywordSet{"ingredients:"}, e.Anchors())
	assert.Equal(t, domain.KeywordSet{"allergen"}, e.Stops())
}

func TestWithStopOffset(t *testing.T) {
	text := "Contains allergen free oats and honey. Storage: cool."

	assert.Equal(t, "Contains", New(WithStopOffset(0)).Extract(text))
	assert.Equal(t, 5, New(WithStopOffset(5)).stopOffset)
	assert.Equal(t, domain.DefaultStopOffset, New(WithStopOffset(-1)).stopOffset)
}

func TestWithMaxLength(t *testing.T) {
	assert.Equal(t, "Ingredients:", New(WithMaxLength(12)).Extract("Ingredients: rice"))
	assert.Equal(t, domain.DefaultMaxBlockLength, New(WithMaxLength(0)).maxLength)
}

func TestLocate_ReportsMatches(t *testing.T) {
	text := "Nutrition label Ingredients: Wheat flour, Sugar, Salt. Allergen advice: contains gluten."

	block := New().Locate(text)

	assert.True(t, block.Found())
	assert.Equal(t, "ingredients:", block.Anchor)
	assert.Equal(t, "allergen", block.Stop)
	assert.Equal(t, 16, block.Start)
	assert.Equal(t, 55, block.End)
}

func TestLocate_CapClearsStop(t *testing.T) {
	block := New(WithMaxLength(15)).Locate("Ingredients: rice, salt. Allergen: none")

	assert.Equal(t, "Ingredients: ri", block.Text)
	assert.Equal(t, "", block.Stop)
	assert.Equal(t, 15, block.End)
}

func TestLocate_NotFound(t *testing.T) {
	block := New().Locate("just some marketing copy")

	assert.False(t, block.Found())
	assert.Equal(t, domain.IngredientBlock{}, block)
}

func TestWithSettings(t *testing.T) {
	settings := domain.DefaultExtractionSettings()
	settings.Anchors = domain.KeywordSet{"Zutaten:"}
	settings.Stops = domain.KeywordSet{"Nährwerte"}
	settings.MaxBlockLength = 100

	e := New(WithSettings(settings))

	assert.Equal(t, "Zutaten: Weizenmehl, Zucker.", e.Extract("Müsli Zutaten: Weizenmehl, Zucker. Nährwerte pro 100g"))
	assert.Equal(t, 100, e.maxLength)
}

func TestHeuristic_Locate(t *testing.T) {
	settings := domain.DefaultExtractionSettings()

	block := Heuristic{}.Locate("Ingredients: oats, honey. Best before 2026", settings)

	assert.Equal(t, "Ingredients: oats, honey.", block.Text)
	assert.Equal(t, "best before", block.Stop)
}
