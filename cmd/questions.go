package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/interviewprep/internal/corpus"
	"github.com/abhisek/interviewprep/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the interview questions and their suggested keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(questions.All()); err != nil {
				return fmt.Errorf("encode questions: %w", err)
			}
			return enc.Close()
		}

		counts := corpus.CountByQuestion(corpus.Examples())

		fmt.Printf("%-3s  %-42s  %-40s  %s\n", "#", "Question", "Keywords", "Examples")
		fmt.Println(strings.Repeat("─", 100))

		for i, q := range questions.All() {
			fmt.Printf("%-3d  %-42s  %-40s  %d\n",
				i+1, q.Text, strings.Join(q.Keywords, ", "), counts[q.Text])
		}

		fmt.Printf("\n%d questions\n", questions.Count())
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("yaml", false, "print the catalog as YAML")
}
