package cmd

import (
	"fmt"

	"github.com/abhisek/learnpy/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showProfile(cmd)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the active profile's name and email",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		identity := profile.Identity{Name: name, Email: email}
		if err := svcs.store.SetActiveIdentity(identity); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		saved, err := svcs.store.ActiveIdentity()
		if err != nil {
			return err
		}
		fmt.Printf("Saved. id: %s\n", saved.ID)
		return nil
	},
}

var profileSignoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out of the active profile",
	Long:  "Switch back to the guest profile. Saved progress stays in place, keyed by the signed-out identity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		if err := svcs.store.ClearActiveIdentity(); err != nil {
			return fmt.Errorf("sign out: %w", err)
		}
		fmt.Println("Signed out. Now browsing as guest.")
		return nil
	},
}

func showProfile(cmd *cobra.Command) error {
	svcs, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svcs.Close()

	identity, err := svcs.store.ActiveIdentity()
	if err != nil {
		return err
	}

	fmt.Printf("Name:  %s\n", identity.Name)
	if identity.Email != "" {
		fmt.Printf("Email: %s\n", identity.Email)
	}
	fmt.Printf("ID:    %s\n", identity.ID)
	return nil
}

func init() {
	profileSetCmd.Flags().String("name", "", "Display name")
	profileSetCmd.Flags().String("email", "", "Email address (determines the identity id)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileSignoutCmd)
}
