package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		identity, err := svcs.store.ActiveIdentity()
		if err != nil {
			return err
		}

		sum, err := quiz.NewService(svcs.store).Summarize()
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s (%s)\n", identity.Name, identity.ID)
		fmt.Printf("Lessons complete: %d/%d\n", sum.Completed, svcs.catalog.Len())
		if sum.Attempts > 0 {
			fmt.Printf("Quiz accuracy: %d/%d (%.0f%%)\n",
				sum.Correct, sum.Attempts, sum.Accuracy()*100)
		} else {
			fmt.Println("No quiz attempts yet.")
		}

		if len(sum.PerLesson) == 0 {
			return nil
		}

		keys := make([]string, 0, len(sum.PerLesson))
		for k := range sum.PerLesson {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println()
		for _, key := range keys {
			ls := sum.PerLesson[key]
			title := key
			if id, err := catalog.ParseKey(key); err == nil {
				if lesson, ok := svcs.catalog.Lesson(id); ok {
					title = lesson.Title
				}
			}
			fmt.Printf("  %-30s %d/%d correct\n", title, ls.Correct, ls.Attempts)
		}
		return nil
	},
}
