package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head><body>
		<nav>Home | About</nav>
		<main>
			<h2>EDUCATION</h2>
			<p>State University</p>
			<ul><li>CGPA: 8.2</li></ul>
		</main>
		<footer>Generated by ResumeBuilder</footer>
	</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "EDUCATION")
	assert.Contains(t, text, "State University")
	assert.Contains(t, text, "CGPA: 8.2")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "ResumeBuilder")
	assert.NotContains(t, text, "color: red")
}

func TestExtractHTMLTextFallsBackToBody(t *testing.T) {
	text, err := ExtractHTMLText(`<html><body><p>Jane Doe</p><p>Engineer</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", text)
}

func TestExtractHTMLTextBlocksBecomeLines(t *testing.T) {
	html := `<main><h2>SKILLS</h2><p>Python</p><p>Go</p></main>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)
	assert.Equal(t, "SKILLS\nPython\nGo", text)
}
