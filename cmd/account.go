package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awsclient "awsctx/internal/aws"
	"awsctx/internal/service/account"
)

// AccountCmd represents the account command
var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "アカウントIDの管理",
	Long: `コンテキストに保存されたAWSアカウントIDを表示・設定・更新します。

refreshは現在のプロファイルで解決した認証情報を使い、STSから実際のアカウントIDを取得して保存します。

使用例:
  ` + AppName + ` account show
  ` + AppName + ` account refresh
  ` + AppName + ` account refresh -P my-profile`,
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "保存されているアカウントIDを表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := manager.GetCredentialAccountID()
		if id == "" {
			fmt.Println("アカウントIDは保存されていません（" + AppName + " account refresh で取得できます）")
			return nil
		}
		fmt.Printf("アカウントID: %s\n", id)
		return nil
	},
	SilenceUsage: true,
}

var accountSetCmd = &cobra.Command{
	Use:   "set <アカウントID>",
	Short: "アカウントIDを手動で設定",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := watchContext()
		defer sub.Dispose()

		if err := manager.SetCredentialAccountID(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("❌ アカウントIDの保存に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var accountRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "STSからアカウントIDを取得して保存",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := awsclient.NewAwsClients(newAwsContext(firstExplorerRegion()))
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みエラー: %w", err)
		}

		id, err := account.ResolveAccountID(clients.Sts())
		if err != nil {
			return err
		}

		sub := watchContext()
		defer sub.Dispose()

		if err := manager.SetCredentialAccountID(cmd.Context(), id); err != nil {
			return fmt.Errorf("❌ アカウントIDの保存に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

// firstExplorerRegion はSTS呼び出しに使うリージョンを返す（未登録なら空でSDKの既定に任せる）
func firstExplorerRegion() string {
	regions := manager.GetExplorerRegions()
	if len(regions) == 0 {
		return ""
	}
	return regions[0]
}

func init() {
	RootCmd.AddCommand(AccountCmd)
	AccountCmd.AddCommand(accountShowCmd)
	AccountCmd.AddCommand(accountSetCmd)
	AccountCmd.AddCommand(accountRefreshCmd)
}
