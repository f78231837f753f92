package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/peoplecore/hrms-backend-go/internal/domain/ai"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/gemini"
)

// Generator is the upstream text-generation adapter. Satisfied by
// *gemini.Client; tests swap in a fake.
type Generator interface {
	Generate(ctx context.Context, req gemini.GenerateRequest) (string, error)
}

type AIServiceImpl struct {
	generator  Generator
	reviewRepo performance.ReviewRepository
}

func NewAIService(generator Generator, reviewRepo performance.ReviewRepository) ai.AIService {
	return &AIServiceImpl{
		generator:  generator,
		reviewRepo: reviewRepo,
	}
}

func formatReviews(reviews []performance.Review) string {
	var b strings.Builder
	for _, r := range reviews {
		fmt.Fprintf(&b, "Employee: %s %s, Rating: %d, Comment: %s\n",
			r.EmployeeFirstName, r.EmployeeLastName, r.Rating, r.Comments)
	}
	return b.String()
}

// Insights implements ai.AIService.
func (s *AIServiceImpl) Insights(ctx context.Context) (ai.InsightsResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return ai.InsightsResponse{}, fmt.Errorf("failed to load reviews: %w", err)
	}
	if len(reviews) == 0 {
		return ai.InsightsResponse{}, ai.ErrNoReviews
	}

	userQuery := fmt.Sprintf(`Analyze the following performance data and provide a 2-3 sentence summary of overall team sentiment and performance. Then, identify the single "Top Performer" and the "Employee to Watch" (lowest performer) based on ratings and comments.

Data:
%s`, formatReviews(reviews))

	summary, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "Act as an expert HR analyst. Your tone is professional and insightful.",
		UserText:          userQuery,
	})
	if err != nil {
		return ai.InsightsResponse{}, err
	}

	sourceData := make([]performance.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		sourceData = append(sourceData, performance.ToResponse(r))
	}

	return ai.InsightsResponse{
		SourceData: sourceData,
		AISummary:  summary,
	}, nil
}

// ScreenResume implements ai.AIService. The uploaded file is forwarded inline
// to the model and never persisted.
func (s *AIServiceImpl) ScreenResume(ctx context.Context, req ai.ScreenResumeRequest) (ai.ScreenResumeResponse, error) {
	if len(req.Resume.Data) == 0 {
		return ai.ScreenResumeResponse{}, ai.ErrMissingFile
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return ai.ScreenResumeResponse{}, ai.ErrMissingJobDesc
	}

	userQuery := fmt.Sprintf(`Analyze the attached resume (file) against the provided job description (text).

Job Description:
%s

Provide your analysis with:
1. A "Fit Score" from 1 to 100.
2. A 2-3 sentence "Summary" of the candidate's qualifications.
3. A list of "Missing Key Skills".`, req.JobDescription)

	analysis, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "Act as a senior HR recruiter. You are screening a resume against a job description.",
		UserText:          userQuery,
		Files: []gemini.InlineFile{{
			MimeType: req.Resume.MimeType,
			Data:     req.Resume.Data,
		}},
	})
	if err != nil {
		return ai.ScreenResumeResponse{}, err
	}

	return ai.ScreenResumeResponse{
		FileName: req.Resume.FileName,
		Analysis: analysis,
	}, nil
}

// Sentiment implements ai.AIService.
func (s *AIServiceImpl) Sentiment(ctx context.Context) (ai.SentimentResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return ai.SentimentResponse{}, fmt.Errorf("failed to load reviews: %w", err)
	}
	if len(reviews) == 0 {
		return ai.SentimentResponse{}, ai.ErrNoReviews
	}

	userQuery := fmt.Sprintf(`Classify the overall sentiment of the following performance review comments as Positive, Neutral or Negative, and explain the classification in one sentence.

Comments:
%s`, formatReviews(reviews))

	sentiment, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "Act as an HR sentiment analyst.",
		UserText:          userQuery,
	})
	if err != nil {
		return ai.SentimentResponse{}, err
	}

	return ai.SentimentResponse{Sentiment: sentiment}, nil
}

// Chat implements ai.AIService.
func (s *AIServiceImpl) Chat(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
	reply, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "You are a helpful HR assistant. Answer questions about HR policy, hiring and people management. Keep answers concise.",
		UserText:          req.Message,
	})
	if err != nil {
		return ai.ChatResponse{}, err
	}

	return ai.ChatResponse{Reply: reply}, nil
}

// GenerateTemplate implements ai.AIService.
func (s *AIServiceImpl) GenerateTemplate(ctx context.Context, req ai.GenerateTemplateRequest) (ai.GenerateTemplateResponse, error) {
	userQuery := fmt.Sprintf("Write a professional HR document template of type %q.", req.TemplateType)
	if req.Details != "" {
		userQuery += fmt.Sprintf(" Additional details: %s", req.Details)
	}

	template, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "Act as an HR operations specialist drafting reusable document templates.",
		UserText:          userQuery,
	})
	if err != nil {
		return ai.GenerateTemplateResponse{}, err
	}

	return ai.GenerateTemplateResponse{Template: template}, nil
}

// VoiceInterview implements ai.AIService.
func (s *AIServiceImpl) VoiceInterview(ctx context.Context, req ai.VoiceInterviewRequest) (ai.VoiceInterviewResponse, error) {
	if len(req.Audio.Data) == 0 {
		return ai.VoiceInterviewResponse{}, ai.ErrMissingFile
	}

	analysis, err := s.generator.Generate(ctx, gemini.GenerateRequest{
		SystemInstruction: "Act as a senior HR interviewer reviewing a recorded interview answer.",
		UserText: `Listen to the attached interview recording and provide:
1. A transcript summary in 2-3 sentences.
2. An assessment of communication clarity and confidence.
3. A hiring recommendation with one sentence of justification.`,
		Files: []gemini.InlineFile{{
			MimeType: req.Audio.MimeType,
			Data:     req.Audio.Data,
		}},
	})
	if err != nil {
		return ai.VoiceInterviewResponse{}, err
	}

	return ai.VoiceInterviewResponse{
		FileName: req.Audio.FileName,
		Analysis: analysis,
	}, nil
}
