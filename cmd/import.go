package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/learnpy/internal/profile"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from a previously exported JSON file",
	Long: `Import a progress bundle. The bundle's data wholesale-replaces any
existing data stored under the bundle's user id; nothing is merged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		bundle, err := svcs.store.Import(raw)
		if err != nil {
			if errors.Is(err, profile.ErrInvalidFormat) {
				return fmt.Errorf("%s is not a valid export: %w", args[0], err)
			}
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Imported data for %s: %d progress entries, %d quiz records\n",
			bundle.UserID, len(bundle.Progress), len(bundle.QuizStats))
		return nil
	},
}
