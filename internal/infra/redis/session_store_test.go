package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"blended-advisor/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, store := newStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Create(ctx, "s1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !mr.Exists("advisor:session:s1") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("advisor:session:s1"); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", ttl)
	}

	if err := store.SetAnswer(ctx, "s1", 4, "b"); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	if got := mr.HGet("advisor:session:s1", "q4"); got != "b" {
		t.Fatalf("expected q4=b in hash, got %q", got)
	}

	answers, err := store.Answers(ctx, "s1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 1 || answers[4] != "b" {
		t.Fatalf("expected only q4=b, got %v", answers)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("advisor:session:s1") {
		t.Fatalf("expected redis key to be removed")
	}
}

func TestSessionStoreMissingSession(t *testing.T) {
	mr, store := newStore(t, time.Minute)
	ctx := context.Background()

	if err := store.SetAnswer(ctx, "nope", 1, "a"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if mr.Exists("advisor:session:nope") {
		t.Fatalf("answer to a missing session must not create it")
	}
	if _, err := store.Answers(ctx, "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStoreExpires(t *testing.T) {
	mr, store := newStore(t, time.Minute)
	ctx := context.Background()

	_ = store.Create(ctx, "s1")
	mr.FastForward(40 * time.Second)
	if err := store.SetAnswer(ctx, "s1", 1, "a"); err != nil {
		t.Fatalf("set answer: %v", err)
	}
	mr.FastForward(40 * time.Second)
	if _, err := store.Answers(ctx, "s1"); err != nil {
		t.Fatalf("expected ttl refreshed by write, got %v", err)
	}
	mr.FastForward(time.Minute)
	if _, err := store.Answers(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestParseQuestionField(t *testing.T) {
	if q, ok := parseQuestionField("q7"); !ok || q != 7 {
		t.Fatalf("expected 7, got %d %v", q, ok)
	}
	for _, f := range []string{"started", "q", "qx", "7"} {
		if _, ok := parseQuestionField(f); ok {
			t.Fatalf("expected %q to be ignored", f)
		}
	}
}

func newStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *SessionStore) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewSessionStore(client, ttl)
}
