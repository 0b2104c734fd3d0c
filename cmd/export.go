package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/learnpy/internal/profile"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the active profile's progress to a JSON file",
	Args:  cobra.MaximumNArgs(1),
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

		bundle, err := svcs.store.Export(identity.ID)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		data, err := bundle.MarshalPretty()
		if err != nil {
			return fmt.Errorf("encode bundle: %w", err)
		}

		path := profile.ExportFilename(identity.Name, identity.ID)
		if len(args) == 1 {
			path = args[0]
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Printf("Exported %d progress entries and %d quiz records to %s\n",
			len(bundle.Progress), len(bundle.QuizStats), path)
		return nil
	},
}
