package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Use(t *testing.T) {
	assert.Equal(t, "extract [file|-]", extractCmd.Use)
}

func TestExtractCmd_Flags(t *testing.T) {
	for _, name := range []string{"json", "anchor", "stop", "max-length"} {
		assert.NotNil(t, extractCmd.Flags().Lookup(name), name)
	}
}

func TestExtractCmd_NotConfigured(t *testing.T) {
	clearServices(t)

	_, err := execute(t, labelText, "extract")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract service not configured")
}

func TestExtractCmd_Stdin(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, labelText, "extract")

	require.NoError(t, err)
	assert.Contains(t, out, "Ingredients: sugar, cocoa butter, milk powder.")
	assert.NotContains(t, out, "Nutrition facts")
}

func TestExtractCmd_File(t *testing.T) {
	setupTestServices(t)
	path := writeFile(t, "label.txt", labelText)

	out, err := execute(t, "", "extract", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Ingredients: sugar")
}

func TestExtractCmd_HTMLFile(t *testing.T) {
	setupTestServices(t)
	path := writeFile(t, "page.html",
		`<html><body><h1>Choco Bar</h1><p>Ingredients: sugar, cocoa butter.</p><p>Allergen advice: milk</p></body></html>`)

	out, err := execute(t, "", "extract", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Ingredients: sugar, cocoa butter.")
	assert.NotContains(t, out, "<p>")
}

func TestExtractCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "extract", "/nonexistent/label.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading /nonexistent/label.txt")
}

func TestExtractCmd_NoAnchor(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "Just a product photo and a price tag", "extract")

	require.NoError(t, err)
	assert.Contains(t, out, "No ingredient list found.")
}

func TestExtractCmd_EmptyInput(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "   ", "extract")

	require.NoError(t, err)
	assert.Contains(t, out, "No ingredient list found.")
}

func TestExtractCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, labelText, "extract", "--json")
	require.NoError(t, err)

	var got extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.True(t, got.Found)
	assert.Equal(t, "ingredients:", got.Anchor)
	assert.Equal(t, "nutrition facts", got.Stop)
	assert.Equal(t, "Ingredients: sugar, cocoa butter, milk powder.", got.Block)
}

func TestExtractCmd_CustomKeywords(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "Produkt Zutaten: Zucker, Kakaobutter. Nährwerte je 100g",
		"extract", "--json", "--anchor", "zutaten", "--stop", "nährwerte")
	require.NoError(t, err)

	var got extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "zutaten", got.Anchor)
	assert.Equal(t, "Zutaten: Zucker, Kakaobutter.", got.Block)
}

func TestExtractCmd_MaxLength(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, labelText, "extract", "--json", "--max-length", "20")
	require.NoError(t, err)

	var got extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "Ingredients: sugar,", got.Block)
}
