package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"blended-advisor/internal/domain"
)

func TestRecommendCommand(t *testing.T) {
	out, errOut, err := execute(t, "recommend", "b", "a", "b", "b", "b", "c", "a")
	if err != nil {
		t.Fatalf("recommend: %v (stderr %q)", err, errOut)
	}
	want := "Recommended Blended Learning Models:\n" +
		"- Flex Model (41.7%)\n" +
		"- Enriched Virtual (41.7%)\n" +
		"- A La Carte (16.7%)\n"
	if out != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, out)
	}
}

func TestRecommendCommandWrongCount(t *testing.T) {
	out, errOut, err := execute(t, "recommend", "a", "b")
	if !errors.Is(err, domain.ErrInvalidResponseCount) {
		t.Fatalf("expected ErrInvalidResponseCount, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no recommendation output, got %q", out)
	}
	if strings.TrimSpace(errOut) != "Error: Please provide exactly 7 responses (one for each question)." {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestRecommendCommandNoMatches(t *testing.T) {
	out, _, err := execute(t, "recommend", "x", "x", "x", "x", "x", "x", "x")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if out != "No model matched your answers.\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAskCommandUsesCollectedAnswers(t *testing.T) {
	orig := collectAnswers
	t.Cleanup(func() { collectAnswers = orig })

	var seen []domain.Question
	collectAnswers = func(_ io.Reader, _ io.Writer, questions []domain.Question) ([]string, error) {
		seen = questions
		return []string{"a", "a", "a", "a", "a", "a", "a"}, nil
	}

	out, _, err := execute(t, "ask")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if len(seen) != domain.QuestionCount {
		t.Fatalf("expected the form to get every question, got %d", len(seen))
	}
	if !strings.Contains(out, "- Flipped Classroom (33.3%)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAskCommandAborted(t *testing.T) {
	orig := collectAnswers
	t.Cleanup(func() { collectAnswers = orig })

	boom := errors.New("user aborted")
	collectAnswers = func(io.Reader, io.Writer, []domain.Question) ([]string, error) {
		return nil, boom
	}

	if _, _, err := execute(t, "ask"); !errors.Is(err, boom) {
		t.Fatalf("expected abort error, got %v", err)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
