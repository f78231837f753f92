package ai

import "context"

type AIService interface {
	Insights(ctx context.Context) (InsightsResponse, error)
	ScreenResume(ctx context.Context, req ScreenResumeRequest) (ScreenResumeResponse, error)
	Sentiment(ctx context.Context) (SentimentResponse, error)
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	GenerateTemplate(ctx context.Context, req GenerateTemplateRequest) (GenerateTemplateResponse, error)
	VoiceInterview(ctx context.Context, req VoiceInterviewRequest) (VoiceInterviewResponse, error)
}
