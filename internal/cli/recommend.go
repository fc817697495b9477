package cli

import (
	"fmt"
	"io"

	"blended-advisor/internal/app"
	"blended-advisor/internal/domain"
	"github.com/spf13/cobra"
)

// NewRecommendCmd prints the recommendation for answers given as arguments.
func NewRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommend <q1> <q2> <q3> <q4> <q5> <q6> <q7>",
		Short:   "Recommend models for seven answer letters",
		Example: "  advisor recommend b a b b b c a",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Recommend(args)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			printRecommendation(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func printRecommendation(out io.Writer, rec domain.Recommendation) {
	if len(rec.Entries) == 0 {
		fmt.Fprintln(out, "No model matched your answers.")
		return
	}
	fmt.Fprintln(out, "Recommended Blended Learning Models:")
	for _, line := range rec.Lines() {
		fmt.Fprintf(out, "- %s\n", line)
	}
}
