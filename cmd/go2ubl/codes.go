package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/go2ubl/pkg/types"
)

type codeEntry struct {
	Code int    `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

type codeTables struct {
	StatusDetail   []codeEntry `json:"status_detail" yaml:"status_detail"`
	DeclinedReason []codeEntry `json:"declined_reason" yaml:"declined_reason"`
}

func statusCodeTables() codeTables {
	var t codeTables
	for _, s := range types.AllStatusDetails() {
		t.StatusDetail = append(t.StatusDetail, codeEntry{Code: int(s), Name: s.String()})
	}
	for _, r := range types.AllDeclinedReasons() {
		t.DeclinedReason = append(t.DeclinedReason, codeEntry{Code: int(r), Name: r.String()})
	}
	return t
}

var statusCodesCmd = &cobra.Command{
	Use:   "status-codes",
	Short: "Print the StatusDetail and DeclinedReason code tables",
	Long: `Status-codes prints the numeric codes Go2UBL uses in document payloads
for the processing stage (StatusDetail) and the reason a document was
declined (DeclinedReason).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeValue(cmd.OutOrStdout(), viper.GetString("output"), statusCodeTables())
	},
}

func init() {
	rootCmd.AddCommand(statusCodesCmd)
}
