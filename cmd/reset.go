package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the active profile's stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes the active profile's progress and quiz stats; re-run with --force to confirm")
		}

		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		identity, err := svcs.store.ActiveIdentity()
		if err != nil {
			return err
		}

		if err := svcs.store.Reset(identity.ID); err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		fmt.Printf("Deleted stored data for %s.\n", identity.ID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
