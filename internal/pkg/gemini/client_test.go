package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Summary text."}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gemini-2.5-flash")
	text, err := client.Generate(context.Background(), GenerateRequest{
		SystemInstruction: "Act as an HR analyst.",
		UserText:          "Summarize the reviews.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Summary text.", text)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "Summarize the reviews.", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "Act as an HR analyst.", gotBody.SystemInstruction.Parts[0].Text)
}

func TestGenerate_InlineFile(t *testing.T) {
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "gemini-2.5-flash")
	fileData := []byte("%PDF-1.4 fake resume")
	_, err := client.Generate(context.Background(), GenerateRequest{
		UserText: "Screen this resume.",
		Files:    []InlineFile{{MimeType: "application/pdf", Data: fileData}},
	})

	require.NoError(t, err)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 2)
	filePart := gotBody.Contents[0].Parts[1]
	require.NotNil(t, filePart.InlineData)
	assert.Equal(t, "application/pdf", filePart.InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(fileData), filePart.InlineData.Data)
}

func TestGenerate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "gemini-2.5-flash")
	_, err := client.Generate(context.Background(), GenerateRequest{UserText: "hello"})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, "Resource has been exhausted", upstreamErr.Message)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "gemini-2.5-flash")
	_, err := client.Generate(context.Background(), GenerateRequest{UserText: "hello"})

	assert.True(t, errors.Is(err, ErrEmptyResponse))
}
