package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	source := New(nil)
	require.NotNil(t, source)
	require.NotNil(t, source.collector)
}

func TestSupportedMIMETypes(t *testing.T) {
	types := New(nil).SupportedMIMETypes()

	assert.Contains(t, types, "text/html")
	assert.Contains(t, types, "application/xhtml+xml")
	assert.Len(t, types, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New(nil).Priority())
}

const productPage = `<html><head><title>Shop</title><script>var x = 1</script></head>` +
	`<body><h1>Oat Bar</h1><img alt="Oat bar photo" src="a.png">` +
	`<p>Ingredients: oats, honey.</p><input placeholder="Search products">` +
	`<button aria-label="Scan" title="Scan screen">S</button><style>p{}</style></body></html>`

func TestCollect_ProductPage(t *testing.T) {
	capture := &domain.Capture{
		Source:   "product.html",
		MIMEType: "text/html",
		Content:  []byte(productPage),
	}

	text, err := New(nil).Collect(context.Background(), capture)

	require.NoError(t, err)
	assert.Equal(t, "product.html", text.Source)
	assert.Equal(t,
		"Oat Bar Oat bar photo Ingredients: oats, honey. Search products Scan Scan screen ",
		text.Text)
}

func TestCollect_SkipsInvisibleElements(t *testing.T) {
	page := `<html><head><style>.a{}</style></head><body>` +
		`<noscript>enable js</noscript><template><p>hidden</p></template>` +
		`<!-- note --><p>visible</p></body></html>`

	text, err := New(nil).Collect(context.Background(), &domain.Capture{Content: []byte(page)})

	require.NoError(t, err)
	assert.Equal(t, "visible ", text.Text)
}

func TestCollect_AltPreferredOverAriaLabel(t *testing.T) {
	page := `<img aria-label="label" alt="alt text">`

	text, err := New(nil).Collect(context.Background(), &domain.Capture{Content: []byte(page)})

	require.NoError(t, err)
	assert.Equal(t, "alt text ", text.Text)
}

func TestCollect_RespectsCollectorDepth(t *testing.T) {
	// Document, html and body take levels 0 to 2.
	page := `<div>shallow<div>deeper</div></div>`

	text, err := New(collector.New(collector.WithMaxDepth(4))).Collect(
		context.Background(), &domain.Capture{Content: []byte(page)})

	require.NoError(t, err)
	assert.Equal(t, "shallow ", text.Text)
}

func TestCollect_NilCapture(t *testing.T) {
	text, err := New(nil).Collect(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, text)
}

func TestParse_TextNodes(t *testing.T) {
	root, err := Parse([]byte(`<p>Ingredients: <b>salt</b></p>`))

	require.NoError(t, err)
	assert.Equal(t, "Ingredients: salt ", collector.Flatten(root))
}
