package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingHTML(title string) string {
	return fmt.Sprintf(`<html><body><article><h1>%s</h1><p>Posting body.</p></article></body></html>`, title)
}

func TestPostingTexts_PreservesInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML("Posting " + r.URL.Query().Get("n"))))
	}))
	defer server.Close()

	urls := []string{
		server.URL + "/?n=one",
		server.URL + "/?n=two",
		server.URL + "/?n=three",
	}

	texts, err := PostingTexts(context.Background(), urls, nil)
	require.NoError(t, err)
	require.Len(t, texts, 3)
	assert.Contains(t, texts[0], "Posting one")
	assert.Contains(t, texts[1], "Posting two")
	assert.Contains(t, texts[2], "Posting three")
}

func TestPostingTexts_FirstFailureWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("n") == "bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(postingHTML("OK")))
	}))
	defer server.Close()

	_, err := PostingTexts(context.Background(), []string{
		server.URL + "/?n=good",
		server.URL + "/?n=bad",
	}, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestPostingTexts_Empty(t *testing.T) {
	texts, err := PostingTexts(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, texts)
}
