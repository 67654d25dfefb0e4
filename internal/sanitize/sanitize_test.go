package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripsScripts(t *testing.T) {
	out := HTML(`<p>Hello</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Hello</p>", out)
}

func TestHTMLKeepsFormatting(t *testing.T) {
	out := HTML(`<p><strong>18k</strong> gold with <em>pavé</em> setting</p>`)
	assert.Equal(t, `<p><strong>18k</strong> gold with <em>pavé</em> setting</p>`, out)
}

func TestHTMLDropsEventHandlers(t *testing.T) {
	out := HTML(`<p onclick="steal()">ring</p>`)
	assert.Equal(t, "<p>ring</p>", out)
}

func TestTextStripsAllMarkup(t *testing.T) {
	out := Text(`<p>Elegant <b>diamond</b> ring</p>`)
	assert.Equal(t, "Elegant diamond ring", out)
}

func TestTextUnescapesEntities(t *testing.T) {
	out := Text("<p>Gold &amp; Silver</p>")
	assert.Equal(t, "Gold & Silver", out)
}
