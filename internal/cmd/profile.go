package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/session"
	"github.com/ledgerline/ledgerline/internal/ux"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your own account",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		sess, err := store.Require()
		if err != nil {
			return err
		}

		client := newClient()
		client.SetToken(sess.Token)
		user, err := client.CurrentUser()
		if err != nil {
			return err
		}
		return output(ux.ProfileView{User: *user})
	},
}

// profileUpdateCmd updates name, email, or password; the stored session is
// refreshed so later commands show the new identity.
var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name, email, or password",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		sess, err := store.Require()
		if err != nil {
			return err
		}

		req := api.ProfileRequest{
			FullName: sess.User.FullName,
			Email:    sess.User.Email,
		}
		if cmd.Flags().Changed("name") {
			req.FullName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			req.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("password") {
			req.Password, _ = cmd.Flags().GetString("password")
		}
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("email") && !cmd.Flags().Changed("password") {
			return fmt.Errorf("nothing to update; pass --name, --email, or --password")
		}

		client := newClient()
		client.SetToken(sess.Token)
		user, err := client.UpdateProfile(req)
		if err != nil {
			return err
		}

		sess.User = session.User{ID: user.ID, FullName: user.FullName, Email: user.Email}
		if err := store.Save(sess); err != nil {
			return err
		}

		fmt.Printf("Profile updated: %s <%s>\n", user.FullName, user.Email)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("name", "", "full name")
	profileUpdateCmd.Flags().String("email", "", "email address")
	profileUpdateCmd.Flags().String("password", "", "new password")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)

	rootCmd.AddCommand(profileCmd)
}
