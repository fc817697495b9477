package app

import (
	"context"
	"sort"

	"blended-advisor/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository abstracts where in-progress answers live (in-memory, Redis, etc).
type SessionRepository interface {
	Create(ctx context.Context, sessionID string) error
	SetAnswer(ctx context.Context, sessionID string, question int, letter string) error
	Answers(ctx context.Context, sessionID string) (map[int]string, error)
	Delete(ctx context.Context, sessionID string) error
}

// Observer is notified of every recommendation attempt.
type Observer interface {
	ObserveRecommendation(rec domain.Recommendation, err error)
}

// AdvisorService contains the questionnaire use cases.
type AdvisorService struct {
	sessions SessionRepository
	observer Observer
	newID    func() string
}

// NewAdvisorService builds the service. observer may be nil.
func NewAdvisorService(sessions SessionRepository, observer Observer) *AdvisorService {
	return &AdvisorService{
		sessions: sessions,
		observer: observer,
		newID:    uuid.NewString,
	}
}

// Recommend runs the recommender over a complete set of responses.
func (s *AdvisorService) Recommend(_ context.Context, responses []string) (domain.Recommendation, error) {
	rec, err := Recommend(responses)
	if s.observer != nil {
		s.observer.ObserveRecommendation(rec, err)
	}
	return rec, err
}

// Start opens a new questionnaire session and returns its id.
func (s *AdvisorService) Start(ctx context.Context) (string, error) {
	id := s.newID()
	if err := s.sessions.Create(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// Answer records one answer. Answering a question again replaces the earlier answer.
func (s *AdvisorService) Answer(ctx context.Context, sessionID string, question int, letter string) (domain.Progress, error) {
	if _, ok := domain.LookupQuestion(question); !ok {
		return domain.Progress{}, domain.ErrQuestionNotFound
	}
	if !domain.ValidAnswer(question, letter) {
		return domain.Progress{}, domain.ErrOptionNotFound
	}
	if err := s.sessions.SetAnswer(ctx, sessionID, question, letter); err != nil {
		return domain.Progress{}, err
	}
	answers, err := s.sessions.Answers(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, err
	}
	return progressOf(sessionID, answers), nil
}

// Progress reports which questions a session has answered so far.
func (s *AdvisorService) Progress(ctx context.Context, sessionID string) (domain.Progress, error) {
	answers, err := s.sessions.Answers(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, err
	}
	return progressOf(sessionID, answers), nil
}

// Submit turns a fully answered session into a recommendation and closes it.
func (s *AdvisorService) Submit(ctx context.Context, sessionID string) (domain.Recommendation, error) {
	answers, err := s.sessions.Answers(ctx, sessionID)
	if err != nil {
		return domain.Recommendation{}, err
	}
	responses := make([]string, domain.QuestionCount)
	for q := 1; q <= domain.QuestionCount; q++ {
		letter, ok := answers[q]
		if !ok {
			return domain.Recommendation{}, domain.ErrIncomplete
		}
		responses[q-1] = letter
	}

	rec, err := s.Recommend(ctx, responses)
	if err != nil {
		return domain.Recommendation{}, err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return domain.Recommendation{}, err
	}
	return rec, nil
}

// Discard drops a session without producing a recommendation.
func (s *AdvisorService) Discard(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func progressOf(sessionID string, answers map[int]string) domain.Progress {
	answered := make([]int, 0, len(answers))
	for q := range answers {
		if q >= 1 && q <= domain.QuestionCount {
			answered = append(answered, q)
		}
	}
	sort.Ints(answered)
	return domain.Progress{
		SessionID: sessionID,
		Answered:  answered,
		Remaining: domain.QuestionCount - len(answered),
	}
}
