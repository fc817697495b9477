package cli

import (
	"fmt"
	"io"
	"os"

	"blended-advisor/internal/app"
	"blended-advisor/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// collectAnswers is a test hook for replacing the interactive form.
var collectAnswers = runQuestionnaireForm

// NewAskCmd walks the user through the questionnaire in the terminal.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Answer the questionnaire interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := collectAnswers(cmd.InOrStdin(), cmd.OutOrStdout(), domain.Questionnaire())
			if err != nil {
				return err
			}
			rec, err := app.Recommend(responses)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			printRecommendation(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

// runQuestionnaireForm shows one select per question; huh only returns once every field has a value.
func runQuestionnaireForm(in io.Reader, out io.Writer, questions []domain.Question) ([]string, error) {
	responses := make([]string, len(questions))
	groups := make([]*huh.Group, 0, len(questions))
	for i, q := range questions {
		groups = append(groups, huh.NewGroup(questionSelect(q, &responses[i])))
	}

	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	// Accessible mode reads plain numbered choices, which works for pipes and tests.
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("questionnaire aborted: %w", err)
	}
	return responses, nil
}

func questionSelect(q domain.Question, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s) %s", o.Letter, o.Text), o.Letter))
	}
	return huh.NewSelect[string]().
		Title(fmt.Sprintf("Question %d: %s", q.Number, q.Prompt)).
		Options(opts...).
		Value(value)
}
