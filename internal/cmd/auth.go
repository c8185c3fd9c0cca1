package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/session"
	"github.com/ledgerline/ledgerline/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Log in to the expense platform, inspect the stored session, or log out.`,
}

// authLoginCmd exchanges credentials for a session token and persists it
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Long: `Authenticate against the platform and store the issued session locally.

Credentials can be passed as flags or entered interactively.

Examples:
  ledgerline auth login
  ledgerline auth login --email user@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if (email == "" || password == "") && tui.IsInteractive() {
			if err := tui.LoginForm(&email, &password); err != nil {
				return err
			}
		}
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		client := newClient()
		resp, err := client.Login(email, password)
		if err != nil {
			return err
		}

		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		sess := session.Session{
			Token: resp.Token,
			User: session.User{
				ID:       resp.User.ID,
				FullName: resp.User.FullName,
				Email:    resp.User.Email,
			},
		}
		if err := store.Save(sess); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", resp.User.FullName, resp.User.Email)
		return nil
	},
}

// authLogoutCmd discards the stored session
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// authStatusCmd shows whether a session is stored and still accepted
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		sess, err := store.Require()
		if err != nil {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'ledgerline auth login' to authenticate.")
			return nil
		}

		client := newClient()
		client.SetToken(sess.Token)
		user, err := client.CurrentUser()
		if err != nil {
			fmt.Println("Session is stored but the token was rejected.")
			fmt.Println("Use 'ledgerline auth login' to re-authenticate.")
			return nil
		}

		fmt.Println("Logged in")
		fmt.Printf("User ID: %s\n", user.ID)
		fmt.Printf("Name:    %s\n", user.FullName)
		fmt.Printf("Email:   %s\n", user.Email)
		return nil
	},
}

// authForgotCmd starts the OTP-based password reset
var authForgotCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset code by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if err := newClient().ForgotPassword(email); err != nil {
			return err
		}
		fmt.Printf("If %s belongs to an account, a reset code is on its way.\n", email)
		fmt.Println("Complete the reset with 'ledgerline auth reset-password'.")
		return nil
	},
}

// authResetCmd trades the emailed code for a new password
var authResetCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using the emailed reset code",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		otp, _ := cmd.Flags().GetString("code")
		password, _ := cmd.Flags().GetString("new-password")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if otp == "" {
			return fmt.Errorf("--code is required")
		}
		if password == "" && tui.IsInteractive() {
			var err error
			password, err = tui.PromptForString(tui.Prompt{
				Message:  "New password",
				Required: true,
				Secret:   true,
			})
			if err != nil {
				return err
			}
		}
		if password == "" {
			return fmt.Errorf("--new-password is required")
		}

		if err := newClient().ResetPassword(email, otp, password); err != nil {
			return err
		}
		fmt.Println("Password updated. Log in with 'ledgerline auth login'.")
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authForgotCmd.Flags().String("email", "", "account email")

	authResetCmd.Flags().String("email", "", "account email")
	authResetCmd.Flags().String("code", "", "reset code from the email")
	authResetCmd.Flags().String("new-password", "", "new password")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authForgotCmd)
	authCmd.AddCommand(authResetCmd)

	rootCmd.AddCommand(authCmd)
}
