package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextNormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanTextCollapsesBlankLines(t *testing.T) {
	input := "Experience\n\n\n\n\nJan 2020 - Feb 2021"
	assert.Equal(t, "Experience\n\nJan 2020 - Feb 2021", CleanText(input))
}

func TestCleanTextNormalizesBullets(t *testing.T) {
	input := "• Built   Python services\n* Shipped Docker images\n  · Wrote docs"
	expected := "- Built Python services\n- Shipped Docker images\n  - Wrote docs"
	assert.Equal(t, expected, CleanText(input))
}

func TestCleanTextCollapsesInnerSpaces(t *testing.T) {
	input := "Senior   Engineer    Acme Corp\t \nJan 2020  -  Feb 2021"
	assert.Equal(t, "Senior Engineer Acme Corp\nJan 2020 - Feb 2021", CleanText(input))
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestReadDocumentPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\nPython, Docker"), 0644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nPython, Docker", text)
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument("/nonexistent/resume.txt")
	require.Error(t, err)

	var ingErr *Error
	require.ErrorAs(t, err, &ingErr)
	assert.Equal(t, "/nonexistent/resume.txt", ingErr.Path)
}

func TestReadDocumentHTML(t *testing.T) {
	html := `<html><head><script>noise()</script></head><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>We need 5+ years of experience.</p>
			<ul><li>Python</li><li>Kubernetes</li></ul>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	dir := t.TempDir()
	path := filepath.Join(dir, "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))

	text, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "5+ years of experience")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "noise()")
}

func TestExtractJobTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with Python.</p></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting with Python.")
}

func TestExtractJobTextSeparatesBlocks(t *testing.T) {
	html := `<html><body><div class="job-description"><h2>Skills</h2><p>Python</p><p>Docker</p></div></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.NotContains(t, text, "SkillsPython")
	assert.NotContains(t, text, "PythonDocker")
}

func TestSourceID(t *testing.T) {
	assert.Equal(t, "jane_doe", SourceID("/tmp/in/jane_doe.txt"))
	assert.Equal(t, "posting", SourceID("posting.html"))
	assert.Equal(t, "resume", SourceID("resume"))
}
