package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/go2ubl/pkg/go2ubl"
)

// call runs one Go2UBL operation and writes its response.
func call(cmd *cobra.Command, op func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error)) error {
	raw, err := op(cmd.Context(), newClient())
	if err != nil {
		return err
	}
	return writeResponse(cmd.OutOrStdout(), viper.GetString("output"), raw)
}

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies registered with Go2UBL",
	Long: `Company commands address a company by its chamber of commerce (KvK)
number.`,
}

var companyGetCmd = &cobra.Command{
	Use:   "get <kvk>",
	Short: "Show a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.GetCompany(ctx, args[0])
		})
	},
}

var companyEnableCmd = &cobra.Command{
	Use:   "enable <kvk>",
	Short: "Enable a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.EnableCompany(ctx, args[0])
		})
	},
}

var companyDisableCmd = &cobra.Command{
	Use:   "disable <kvk>",
	Short: "Disable a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.DisableCompany(ctx, args[0])
		})
	},
}

var companyAddCmd = &cobra.Command{
	Use:   "add <kvk>",
	Short: "Register a company",
	Long: `Add registers a company with the address Go2UBL replies to and an
initial whitelist of senders (repeat --sender).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, _ := cmd.Flags().GetString("reply")
		senders, _ := cmd.Flags().GetStringSlice("sender")
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.AddCompany(ctx, args[0], senders, reply)
		})
	},
}

var whitelistCmd = &cobra.Command{
	Use:   "whitelist",
	Short: "Manage the senders allowed to submit documents for a company",
}

var whitelistListCmd = &cobra.Command{
	Use:   "list <kvk>",
	Short: "List whitelisted senders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.GetCompanyWhitelist(ctx, args[0])
		})
	},
}

var whitelistAddCmd = &cobra.Command{
	Use:   "add <kvk> <email>",
	Short: "Whitelist a sender",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.AddEmailToCompanyWhitelist(ctx, args[0], args[1])
		})
	},
}

var whitelistRemoveCmd = &cobra.Command{
	Use:   "remove <kvk> <email>",
	Short: "Remove a sender from the whitelist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.DeleteEmailFromCompanyWhitelist(ctx, args[0], args[1])
		})
	},
}

func init() {
	companyAddCmd.Flags().String("reply", "", "reply email address (required)")
	companyAddCmd.Flags().StringSlice("sender", nil, "whitelisted sender email address")
	_ = companyAddCmd.MarkFlagRequired("reply")

	whitelistCmd.AddCommand(whitelistListCmd, whitelistAddCmd, whitelistRemoveCmd)
	companyCmd.AddCommand(companyGetCmd, companyEnableCmd, companyDisableCmd, companyAddCmd, whitelistCmd)
	rootCmd.AddCommand(companyCmd)
}
