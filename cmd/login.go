package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/lukman83/shopfront/internal/models"
	"github.com/lukman83/shopfront/internal/session"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().String("username", "", "Username")
	loginCmd.Flags().String("password", "", "Password")
	loginCmd.Flags().Bool("remember", false, "Persist the token to disk rather than this process only")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	remember, _ := cmd.Flags().GetBool("remember")

	prompter := ui.NewConsolePrompter()
	if username == "" {
		return fmt.Errorf("please enter a valid username")
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Logging in as %s...", username))
	sess, err := newSession().Login(context.Background(), models.Credentials{
		Username: username,
		Password: password,
		Remember: remember,
	})
	spin.Stop()
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			prompter.Notify("Invalid credentials", ui.Error)
		} else {
			prompter.Notify("Network error - please try again", ui.Error)
		}
		return err
	}

	store := session.StoreFor(remember, cfg.TokenFile)
	if err := store.Save(sess.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	prompter.Notify("Login successful!", ui.Info)
	if remember {
		fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", cfg.TokenFile)
	}
	return nil
}
