package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/ai"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

// Uploads are forwarded to the model in-memory and never written to disk.
const maxUploadSize = 10 << 20 // 10 MiB

type AIHandler interface {
	Insights(w http.ResponseWriter, r *http.Request)
	ScreenResume(w http.ResponseWriter, r *http.Request)
	Sentiment(w http.ResponseWriter, r *http.Request)
	Chat(w http.ResponseWriter, r *http.Request)
	GenerateTemplate(w http.ResponseWriter, r *http.Request)
	VoiceInterview(w http.ResponseWriter, r *http.Request)
}

type AIHandlerImpl struct {
	aiService ai.AIService
}

func NewAIHandler(aiService ai.AIService) AIHandler {
	return &AIHandlerImpl{aiService: aiService}
}

// Insights implements AIHandler.
func (h *AIHandlerImpl) Insights(w http.ResponseWriter, r *http.Request) {
	result, err := h.aiService.Insights(r.Context())
	if err != nil {
		slog.Error("AI insights service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ScreenResume implements AIHandler.
func (h *AIHandlerImpl) ScreenResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Screen resume multipart error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	screenReq := ai.ScreenResumeRequest{
		JobDescription: r.FormValue("job_description"),
	}

	attachment, err := readAttachment(r, "resume")
	if err == nil {
		screenReq.Resume = attachment
	} else if err != http.ErrMissingFile {
		slog.Error("Screen resume file error", "error", err)
		response.BadRequest(w, "Could not read uploaded file", nil)
		return
	}

	result, err := h.aiService.ScreenResume(r.Context(), screenReq)
	if err != nil {
		slog.Error("Screen resume service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Resume screened", "file_name", result.FileName)
	response.Success(w, result)
}

// Sentiment implements AIHandler.
func (h *AIHandlerImpl) Sentiment(w http.ResponseWriter, r *http.Request) {
	result, err := h.aiService.Sentiment(r.Context())
	if err != nil {
		slog.Error("AI sentiment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Chat implements AIHandler.
func (h *AIHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	var chatReq ai.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		slog.Error("Chat decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := chatReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.aiService.Chat(r.Context(), chatReq)
	if err != nil {
		slog.Error("Chat service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateTemplate implements AIHandler.
func (h *AIHandlerImpl) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	var templateReq ai.GenerateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&templateReq); err != nil {
		slog.Error("Generate template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := templateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.aiService.GenerateTemplate(r.Context(), templateReq)
	if err != nil {
		slog.Error("Generate template service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// VoiceInterview implements AIHandler.
func (h *AIHandlerImpl) VoiceInterview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Voice interview multipart error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var interviewReq ai.VoiceInterviewRequest

	attachment, err := readAttachment(r, "audio")
	if err == nil {
		interviewReq.Audio = attachment
	} else if err != http.ErrMissingFile {
		slog.Error("Voice interview file error", "error", err)
		response.BadRequest(w, "Could not read uploaded file", nil)
		return
	}

	result, err := h.aiService.VoiceInterview(r.Context(), interviewReq)
	if err != nil {
		slog.Error("Voice interview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Voice interview analyzed", "file_name", result.FileName)
	response.Success(w, result)
}

func readAttachment(r *http.Request, field string) (ai.Attachment, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return ai.Attachment{}, err
	}
	defer func(file multipart.File) { _ = file.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return ai.Attachment{}, err
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return ai.Attachment{
		FileName: header.Filename,
		MimeType: mimeType,
		Data:     data,
	}, nil
}
