package cli

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/bitly"
)

func newShortenCmd(flags *globalFlags) *cobra.Command {
	var domain, group string

	cmd := &cobra.Command{
		Use:   "shorten <long-url>",
		Short: "Shorten a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withClient(cmd.Context(), func(c *bitly.Client) error {
				link, err := c.Bitlinks().ShortenWith(cmd.Context(), bitly.ShortenRequest{
					LongURL:   args[0],
					Domain:    domain,
					GroupGUID: group,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), link)
			})
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "Short domain, e.g. bit.ly")
	cmd.Flags().StringVar(&group, "group", "", "Group GUID")
	return cmd
}

func newExpandCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <bitlink>",
		Short: "Show the long URL behind a bitlink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withClient(cmd.Context(), func(c *bitly.Client) error {
				resp, err := c.Bitlinks().Expand(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func newGetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bitlink>",
		Short: "Show a bitlink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withClient(cmd.Context(), func(c *bitly.Client) error {
				link, err := c.Bitlinks().Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), link)
			})
		},
	}
}

func newUserCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withClient(cmd.Context(), func(c *bitly.Client) error {
				user, err := c.Users().Get(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
}
