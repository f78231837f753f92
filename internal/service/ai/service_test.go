package ai

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/ai"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	lastRequest gemini.GenerateRequest
	reply       string
	err         error
}

func (f *fakeGenerator) Generate(_ context.Context, req gemini.GenerateRequest) (string, error) {
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeReviewRepo struct {
	reviews []performance.Review
	err     error
}

func (f *fakeReviewRepo) Create(_ context.Context, r performance.Review) (performance.Review, error) {
	return r, nil
}

func (f *fakeReviewRepo) List(_ context.Context) ([]performance.Review, error) {
	return f.reviews, f.err
}

func (f *fakeReviewRepo) ListByEmployee(_ context.Context, _ string) ([]performance.Review, error) {
	return f.reviews, f.err
}

func (f *fakeReviewRepo) DeleteByEmployee(_ context.Context, _ string) error {
	return nil
}

func (f *fakeReviewRepo) DeleteByReviewer(_ context.Context, _ string) error {
	return nil
}

func sampleReviews() []performance.Review {
	return []performance.Review{
		{
			ID:                "r1",
			EmployeeID:        "e1",
			Rating:            5,
			Comments:          "Outstanding delivery all quarter",
			ReviewDate:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EmployeeFirstName: "Ana",
			EmployeeLastName:  "Silva",
		},
		{
			ID:                "r2",
			EmployeeID:        "e2",
			Rating:            2,
			Comments:          "Missed several deadlines",
			ReviewDate:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			EmployeeFirstName: "Ben",
			EmployeeLastName:  "Okafor",
		},
	}
}

func TestInsights_NoReviews(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "unused"}, &fakeReviewRepo{})

	_, err := svc.Insights(context.Background())
	assert.ErrorIs(t, err, ai.ErrNoReviews)
}

func TestInsights_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Team is performing well. Top Performer: Ana Silva."}
	svc := NewAIService(gen, &fakeReviewRepo{reviews: sampleReviews()})

	result, err := svc.Insights(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Team is performing well. Top Performer: Ana Silva.", result.AISummary)
	require.Len(t, result.SourceData, 2)
	assert.Equal(t, "Ana", result.SourceData[0].EmployeeFirstName)

	// The prompt carries the raw review data, not just a reference
	assert.Contains(t, gen.lastRequest.UserText, "Ana Silva")
	assert.Contains(t, gen.lastRequest.UserText, "Missed several deadlines")
	assert.Contains(t, gen.lastRequest.SystemInstruction, "HR analyst")
}

func TestInsights_GeneratorFailure(t *testing.T) {
	upstream := &gemini.UpstreamError{StatusCode: 429, Message: "quota exceeded"}
	svc := NewAIService(&fakeGenerator{err: upstream}, &fakeReviewRepo{reviews: sampleReviews()})

	_, err := svc.Insights(context.Background())

	var gotErr *gemini.UpstreamError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, 429, gotErr.StatusCode)
}

func TestScreenResume_Validation(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "unused"}, &fakeReviewRepo{})

	_, err := svc.ScreenResume(context.Background(), ai.ScreenResumeRequest{
		JobDescription: "Backend engineer",
	})
	assert.ErrorIs(t, err, ai.ErrMissingFile)

	_, err = svc.ScreenResume(context.Background(), ai.ScreenResumeRequest{
		Resume: ai.Attachment{FileName: "cv.pdf", MimeType: "application/pdf", Data: []byte("pdf")},
	})
	assert.ErrorIs(t, err, ai.ErrMissingJobDesc)
}

func TestScreenResume_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Fit Score: 82"}
	svc := NewAIService(gen, &fakeReviewRepo{})

	result, err := svc.ScreenResume(context.Background(), ai.ScreenResumeRequest{
		JobDescription: "Senior backend engineer, Go and PostgreSQL",
		Resume:         ai.Attachment{FileName: "cv.pdf", MimeType: "application/pdf", Data: []byte("pdf-bytes")},
	})
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", result.FileName)
	assert.Equal(t, "Fit Score: 82", result.Analysis)
	require.Len(t, gen.lastRequest.Files, 1)
	assert.Equal(t, "application/pdf", gen.lastRequest.Files[0].MimeType)
	assert.Contains(t, gen.lastRequest.UserText, "Senior backend engineer")
}

func TestSentiment_NoReviews(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "unused"}, &fakeReviewRepo{})

	_, err := svc.Sentiment(context.Background())
	assert.ErrorIs(t, err, ai.ErrNoReviews)
}

func TestChat_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "You accrue 12 days per year."}
	svc := NewAIService(gen, &fakeReviewRepo{})

	result, err := svc.Chat(context.Background(), ai.ChatRequest{Message: "How much annual leave do I get?"})
	require.NoError(t, err)

	assert.Equal(t, "You accrue 12 days per year.", result.Reply)
	assert.Equal(t, "How much annual leave do I get?", gen.lastRequest.UserText)
}

func TestGenerateTemplate_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Dear [Candidate], ..."}
	svc := NewAIService(gen, &fakeReviewRepo{})

	result, err := svc.GenerateTemplate(context.Background(), ai.GenerateTemplateRequest{
		TemplateType: "offer letter",
		Details:      "remote position",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dear [Candidate], ...", result.Template)
	assert.Contains(t, gen.lastRequest.UserText, "offer letter")
	assert.Contains(t, gen.lastRequest.UserText, "remote position")
}

func TestVoiceInterview_MissingAudio(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "unused"}, &fakeReviewRepo{})

	_, err := svc.VoiceInterview(context.Background(), ai.VoiceInterviewRequest{})
	assert.ErrorIs(t, err, ai.ErrMissingFile)
}

func TestVoiceInterview_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Clear communicator. Recommend hire."}
	svc := NewAIService(gen, &fakeReviewRepo{})

	result, err := svc.VoiceInterview(context.Background(), ai.VoiceInterviewRequest{
		Audio: ai.Attachment{FileName: "answer.mp3", MimeType: "audio/mpeg", Data: []byte("audio")},
	})
	require.NoError(t, err)

	assert.Equal(t, "answer.mp3", result.FileName)
	assert.Equal(t, "Clear communicator. Recommend hire.", result.Analysis)
	require.Len(t, gen.lastRequest.Files, 1)
	assert.Equal(t, "audio/mpeg", gen.lastRequest.Files[0].MimeType)
}
