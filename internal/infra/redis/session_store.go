package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blended-advisor/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps in-progress answers in Redis so any instance can serve a respondent.
// Layout: HSET advisor:session:{id} started {unix} q1 a q2 c ...
// Every write refreshes the key's TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SessionStore) Create(ctx context.Context, sessionID string) error {
	key := s.key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, startedField, s.now().Unix())
		s.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *SessionStore) SetAnswer(ctx context.Context, sessionID string, question int, letter string) error {
	key := s.key(sessionID)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("lookup session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, questionField(question), letter)
		s.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store answer: %w", err)
	}
	return nil
}

func (s *SessionStore) Answers(ctx context.Context, sessionID string) (map[int]string, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	answers := make(map[int]string, len(fields))
	for field, letter := range fields {
		q, ok := parseQuestionField(field)
		if !ok {
			continue
		}
		answers[q] = letter
	}
	return answers, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

const startedField = "started"

func (s *SessionStore) key(sessionID string) string {
	return "advisor:session:" + sessionID
}

func (s *SessionStore) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
}

func questionField(question int) string {
	return "q" + strconv.Itoa(question)
}

func parseQuestionField(field string) (int, bool) {
	raw, ok := strings.CutPrefix(field, "q")
	if !ok {
		return 0, false
	}
	q, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return q, true
}
