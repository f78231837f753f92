package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrEmptyResponse = errors.New("no content returned from AI")
)

// UpstreamError carries the upstream status and message so handlers can
// surface the failure as a gateway error.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI API call failed with status %d: %s", e.StatusCode, e.Message)
}

// Client is a thin adapter over the Google generative-language HTTP API. It
// relays a prompt (optionally with inline file data) and returns the first
// candidate's text. No retries; every failure surfaces to the caller.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// InlineFile is a file forwarded to the model as inline base64 data.
type InlineFile struct {
	MimeType string
	Data     []byte
}

// GenerateRequest is one prompt relay: a system instruction, the user text and
// optional attachments.
type GenerateRequest struct {
	SystemInstruction string
	UserText          string
	Files             []InlineFile
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate relays the request and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	parts := []part{{Text: req.UserText}}
	for _, f := range req.Files {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: f.MimeType,
				Data:     base64.StdEncoding.EncodeToString(f.Data),
			},
		})
	}

	payload := generateContentRequest{
		Contents: []content{{Parts: parts}},
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call AI API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody upstreamErrorBody
		message := string(respBody)
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Error.Message != "" {
			message = errBody.Error.Message
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	var result generateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
