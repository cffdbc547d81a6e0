package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	logicv1 "github.com/duynhne/shakplay/internal/logic/v1"
)

// matchesCmd is the parent command for match management
func (c *cli) matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List and record matches",
	}
	cmd.AddCommand(c.matchesListCmd(), c.matchesCreateCmd(), c.matchesStartCmd(), c.matchesEndCmd())
	return cmd
}

func (c *cli) requireSession(cmd *cobra.Command) error {
	c.restore(cmd.Context())
	if !c.app.Session.IsAuthenticated() {
		return fmt.Errorf("run 'shakplay login' first: %w", logicv1.ErrNotAuthenticated)
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (c *cli) matchesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.requireSession(cmd); err != nil {
				return err
			}
			if err := c.app.Matches.Load(ctx); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c.app.Matches.Matches())
		},
	}
}

func (c *cli) matchesCreateCmd() *cobra.Command {
	var (
		clubID, courtID int64
		duration        string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Set up a singles match on a court",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.requireSession(cmd); err != nil {
				return err
			}
			match, err := c.app.Matches.Create(ctx, clubID, courtID, duration)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), match)
		},
	}
	cmd.Flags().Int64Var(&clubID, "club", 0, "Club id")
	cmd.Flags().Int64Var(&courtID, "court", 0, "Court id")
	cmd.Flags().StringVar(&duration, "duration", "60", "Duration in minutes")
	_ = cmd.MarkFlagRequired("club")
	_ = cmd.MarkFlagRequired("court")
	return cmd
}

func (c *cli) matchesStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <match-id>",
		Short: "Start recording a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.requireSession(cmd); err != nil {
				return err
			}
			match, err := c.app.Matches.Start(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), match)
		},
	}
}

func (c *cli) matchesEndCmd() *cobra.Command {
	var finalScore string
	cmd := &cobra.Command{
		Use:   "end <match-id>",
		Short: "Finish a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.requireSession(cmd); err != nil {
				return err
			}
			match, err := c.app.Matches.End(ctx, id, finalScore)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), match)
		},
	}
	cmd.Flags().StringVar(&finalScore, "score", "", "Final score, e.g. 6-4 6-3")
	return cmd
}
