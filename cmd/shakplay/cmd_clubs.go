package main

import (
	"github.com/spf13/cobra"

	"github.com/duynhne/shakplay/internal/core/domain"
)

// clubsCmd is the parent command for club lookups
func (c *cli) clubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Browse clubs and courts",
	}
	cmd.AddCommand(c.clubsListCmd(), c.clubsShowCmd(), c.clubsCourtsCmd())
	return cmd
}

func (c *cli) clubsListCmd() *cobra.Command {
	var query, city string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clubs, or search with --query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if query != "" {
				return printJSON(cmd.OutOrStdout(), c.app.Clubs.Search(ctx, query, domain.ClubFilter{City: city}))
			}
			if err := c.app.Clubs.Load(ctx); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c.app.Clubs.Clubs())
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search text")
	cmd.Flags().StringVar(&city, "city", "", "Only clubs in this city (with --query)")
	return cmd
}

func (c *cli) clubsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <club-id>",
		Short: "Show one club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			club, err := c.app.Clubs.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), club)
		},
	}
}

func (c *cli) clubsCourtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courts <club-id>",
		Short: "List the courts of a club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c.app.Clubs.Courts(ctx, id))
		},
	}
}
