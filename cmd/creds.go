package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"awsctx/internal/service/common"
	credsSvc "awsctx/internal/service/creds"
)

// CredsCmd represents the creds command
var CredsCmd = &cobra.Command{
	Use:   "creds",
	Short: "認証情報の解決と確認",
	Long: `認証情報を解決チェーン（credential manager → 共有設定ファイル → credential_process）で解決します。

認証情報が見つからないことはエラーではありません。どの手段でも解決できない場合は
その旨を表示して正常終了します。

使用例:
  ` + AppName + ` creds show
  ` + AppName + ` creds show -P my-profile
  ` + AppName + ` creds check profile1 profile2`,
}

var credsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "解決した認証情報を表示（シークレットは伏せる）",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := effectiveProfile()
		if profile == "" {
			fmt.Println("プロファイルが設定されていません（" + AppName + " profile set か -P を使用してください）")
			return nil
		}

		provider, source, ok := manager.ResolveCredentials(cmd.Context(), profile)
		if !ok {
			// 解決できないのは異常ではなく「未解決」という通常の状態
			fmt.Printf("プロファイル '%s' の認証情報はどの手段でも解決できませんでした\n", profile)
			return nil
		}

		creds, err := provider.Retrieve(cmd.Context())
		if err != nil {
			return fmt.Errorf("❌ 認証情報の取得に失敗: %w", err)
		}

		fmt.Printf("%s プロファイル '%s' の認証情報を解決しました\n", common.SuccessIcon, profile)
		fmt.Printf("  解決元:        %s\n", source)
		fmt.Printf("  アクセスキー:  %s\n", credsSvc.MaskAccessKeyID(creds.AccessKeyID))
		if creds.SessionToken != "" {
			fmt.Println("  セッション:    あり")
		}
		return nil
	},
	SilenceUsage: true,
}

var credsCheckCmd = &cobra.Command{
	Use:   "check <プロファイル>...",
	Short: "複数プロファイルの解決可否をまとめて確認",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := credsSvc.CheckProfiles(cmd.Context(), manager, args)

		for _, result := range results {
			if result.Success {
				fmt.Printf("  %s %s\n", common.SuccessIcon, result.Item)
			} else {
				fmt.Printf("  %s %s\n", common.ErrorIcon, result.Item)
			}
		}

		success, fail := common.CollectResults(results)
		fmt.Printf("\n解決できたプロファイル: %d / %d\n", success, success+fail)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(CredsCmd)
	CredsCmd.AddCommand(credsShowCmd)
	CredsCmd.AddCommand(credsCheckCmd)
}
