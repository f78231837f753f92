package ai

import (
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type ChatRequest struct {
	Message string `json:"message"`
}

func (r *ChatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateTemplateRequest struct {
	TemplateType string `json:"template_type"`
	Details      string `json:"details,omitempty"`
}

func (r *GenerateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateType) {
		errs = append(errs, validator.ValidationError{Field: "template_type", Message: "template_type is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Attachment carries an uploaded file forwarded to the model in-memory. The
// bytes are never persisted.
type Attachment struct {
	FileName string
	MimeType string
	Data     []byte
}

type ScreenResumeRequest struct {
	JobDescription string
	Resume         Attachment
}

type VoiceInterviewRequest struct {
	Audio Attachment
}

type InsightsResponse struct {
	SourceData []performance.ReviewResponse `json:"source_data"`
	AISummary  string                       `json:"ai_summary"`
}

type ScreenResumeResponse struct {
	FileName string `json:"file_name"`
	Analysis string `json:"analysis"`
}

type SentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type GenerateTemplateResponse struct {
	Template string `json:"template"`
}

type VoiceInterviewResponse struct {
	FileName string `json:"file_name"`
	Analysis string `json:"analysis"`
}
