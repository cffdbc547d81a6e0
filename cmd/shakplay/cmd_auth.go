package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duynhne/shakplay/internal/core/domain"
	logicv1 "github.com/duynhne/shakplay/internal/logic/v1"
)

// loginCmd signs in and stores the token
func (c *cli) loginCmd() *cobra.Command {
	var creds domain.LoginCredentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.app.Session.Login(ctx, creds); err != nil {
				return err
			}
			user := c.app.Session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// registerCmd creates an account and signs in
func (c *cli) registerCmd() *cobra.Command {
	var data domain.RegisterData
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.app.Session.Register(ctx, data); err != nil {
				return err
			}
			user := c.app.Session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&data.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&data.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&data.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&data.Sport, "sport", "", "Main sport (default Tennis)")
	cmd.Flags().IntVar(&data.SkillLevel, "skill-level", 0, "Skill level (default 1)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// logoutCmd forgets the session
func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			c.app.Session.Logout(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// whoamiCmd prints the signed-in profile
func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			c.restore(ctx)
			user := c.app.Session.User()
			if user == nil {
				return logicv1.ErrNotAuthenticated
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

// statusCmd reports the workspace connection
func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the workspace connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			status := c.app.Client.Diagnose(ctx)
			out := struct {
				Offline bool `json:"offline"`
				Session string `json:"session"`
				Status  any    `json:"connection"`
			}{c.app.Offline, "", status}

			c.restore(ctx)
			out.Session = c.app.Session.State().String()
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
