package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Senior Go Engineer</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "Senior Go Engineer")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, agent)
}

func TestExtractMainText_JobDescriptionSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Sign in | Jobs | Companies</nav>
			<div class="job-description">
				<h1>Backend Engineer</h1>
				<p>We build data pipelines in Go.</p>
			</div>
			<footer>About us</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, PostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "data pipelines")
	assert.NotContains(t, text, "Sign in")
	assert.NotContains(t, text, "About us")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div><p>Just a plain page.</p></div></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Contains(t, text, "Just a plain page.")
}

func TestExtractMainText_RemovesScriptsAndChrome(t *testing.T) {
	html := `
	<html>
		<body>
			<script>var tracking = true;</script>
			<div class="cookie-banner">We use cookies</div>
			<main><p>Posting text.</p></main>
		</body>
	</html>`

	text, err := ExtractMainText(html, PostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Posting text.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "cookies")
}

func TestPostingText_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article>
			<h1>Platform Engineer</h1>
			<p>Kubernetes, Terraform, and Go experience required. You will own our deployment tooling
			and work with the infrastructure team on reliability targets across three regions.</p>
		</article></body></html>`))
	}))
	defer server.Close()

	text, err := PostingText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Platform Engineer")
	assert.Contains(t, text, "Kubernetes")
}

func TestShouldUseBrowser_ShortContent(t *testing.T) {
	assert.True(t, ShouldUseBrowser("Loading..."))
	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  First line  \n\n\n   Second line\n   \n"
	assert.Equal(t, "First line\nSecond line", cleanWhitespace(in))
}
