package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ProfileCmd represents the profile command
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "アクティブプロファイルの管理",
	Long: `アクティブな認証プロファイルを表示・設定・解除します。

設定したプロファイルはグローバル設定に保存され、次回以降の実行でも使われます。

使用例:
  ` + AppName + ` profile show
  ` + AppName + ` profile set my-profile
  ` + AppName + ` profile unset`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "アクティブなプロファイルを表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := manager.GetCredentialProfileName()
		if name == "" {
			fmt.Println("プロファイルは設定されていません")
			return nil
		}
		fmt.Printf("アクティブなプロファイル: %s\n", name)
		return nil
	},
	SilenceUsage: true,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <プロファイル名>",
	Short: "アクティブなプロファイルを設定",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := watchContext()
		defer sub.Dispose()

		if err := manager.SetCredentialProfileName(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("❌ プロファイルの保存に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var profileUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "アクティブなプロファイルを解除",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := watchContext()
		defer sub.Dispose()

		if err := manager.SetCredentialProfileName(cmd.Context(), ""); err != nil {
			return fmt.Errorf("❌ プロファイルの解除に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(ProfileCmd)
	ProfileCmd.AddCommand(profileShowCmd)
	ProfileCmd.AddCommand(profileSetCmd)
	ProfileCmd.AddCommand(profileUnsetCmd)
}
