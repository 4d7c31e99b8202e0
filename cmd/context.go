package cmd

import (
	"github.com/spf13/cobra"

	"awsctx/internal/service/common"
)

// ContextCmd represents the context command
var ContextCmd = &cobra.Command{
	Use:   "context",
	Short: "コンテキスト全体の表示",
	Long: `現在のコンテキスト（プロファイル・アカウントID・エクスプローラーリージョン）を表示します。

使用例:
  ` + AppName + ` context show`,
}

var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "現在のコンテキストを表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		columns := []common.TableColumn{{Header: "項目"}, {Header: "値"}}
		data := [][]string{
			{"プロファイル", orUnset(manager.GetCredentialProfileName())},
			{"アカウントID", orUnset(manager.GetCredentialAccountID())},
			{"リージョン", formatRegions(manager.GetExplorerRegions())},
		}
		common.PrintTable("現在のコンテキスト", columns, data)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(ContextCmd)
	ContextCmd.AddCommand(contextShowCmd)
}
