package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	awsclient "awsctx/internal/aws"
	"awsctx/internal/awsctx"
	"awsctx/internal/settings"
	"awsctx/internal/state"
)

// AppName はCLIのコマンド名
const AppName = "awsctx"

var (
	profileOverride string // -P で一時的に使うプロファイル（保存はしない）
	workspaceDir    string // --workspace で設定・状態の保存先ディレクトリを上書き（テスト/CI用）

	manager    *awsctx.Manager
	stateStore *state.Store
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "AWSツールコンテキストの管理CLI",
	Long: `AWSツールが共有するコンテキスト（プロファイル・アカウントID・エクスプローラーリージョン）を管理します。

コンテキストへの変更は設定ファイルへの書き込み完了後に通知として表示されます。

使用例:
  ` + AppName + ` profile set my-profile
  ` + AppName + ` region add "ap-northeast-*"
  ` + AppName + ` context show`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	closeManager()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&profileOverride, "profile", "P", "", "一時的に使用するAWSプロファイル（コンテキストには保存しない）")
	RootCmd.PersistentFlags().StringVar(&workspaceDir, "workspace", "", "設定と永続状態の保存先ディレクトリを上書きする")

	// コマンド実行前に共通でコンテキストマネージャーを初期化する
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとバージョンはストレージ不要
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return initManager()
	}
}

// initManager は設定ストアと永続状態を開いてコンテキストマネージャーを構築する
// --workspace 指定時は既定パスの代わりにそのディレクトリ配下へすべて保存する
func initManager() error {
	if manager != nil {
		return nil
	}

	globalPath, workspacePath, statePath, err := storagePaths()
	if err != nil {
		return err
	}
	store := settings.NewStore(globalPath, workspacePath)

	st, err := state.Open(statePath)
	if err != nil {
		return fmt.Errorf("❌ 永続状態のオープンに失敗: %w", err)
	}

	stateStore = st
	manager = awsctx.New(store, st)
	return nil
}

// storagePaths は設定ファイル（グローバル/ワークスペース）と状態DBのパスを返す
func storagePaths() (globalPath, workspacePath, statePath string, err error) {
	if workspaceDir != "" {
		return filepath.Join(workspaceDir, "settings.yaml"),
			filepath.Join(workspaceDir, settings.WorkspaceFileName),
			filepath.Join(workspaceDir, "state.db"),
			nil
	}

	globalPath, err = settings.DefaultGlobalPath()
	if err != nil {
		return "", "", "", fmt.Errorf("❌ 設定ストアの初期化に失敗: %w", err)
	}
	statePath, err = state.DefaultPath()
	if err != nil {
		return "", "", "", fmt.Errorf("❌ 永続状態の初期化に失敗: %w", err)
	}
	return globalPath, settings.WorkspaceFileName, statePath, nil
}

func closeManager() {
	if stateStore != nil {
		_ = stateStore.Close()
		stateStore = nil
	}
}

// effectiveProfile は-P指定があればそれを、なければ保存されたプロファイル名を返す
func effectiveProfile() string {
	if profileOverride != "" {
		return profileOverride
	}
	return manager.GetCredentialProfileName()
}

// newAwsContext は解決済みの認証情報を含むAWSコンテキストを作る
// 解決できない場合はプロファイル名だけを渡してSDKの既定チェーンに任せる
func newAwsContext(region string) awsclient.Context {
	profile := effectiveProfile()
	awsCtx := awsclient.Context{Profile: profile, Region: region}
	if provider, ok := manager.GetCredentials(context.Background(), profile); ok {
		awsCtx.Provider = provider
	}
	return awsCtx
}

// watchContext は変更通知を購読してスナップショットを表示する
// 変更系コマンドはこれを購読してからミューテーションを実行する
func watchContext() *awsctx.Subscription {
	return manager.OnDidChangeContext(printSnapshot)
}

// printSnapshot は変更通知が運ぶスナップショット全体を表示する
func printSnapshot(s awsctx.Snapshot) {
	fmt.Println("🔄 コンテキストが更新されました:")
	fmt.Printf("  プロファイル: %s\n", orUnset(s.ProfileName))
	fmt.Printf("  アカウントID: %s\n", orUnset(s.AccountID))
	fmt.Printf("  リージョン:   %s\n", formatRegions(s.Regions))
}

func orUnset(value string) string {
	if value == "" {
		return "（未設定）"
	}
	return value
}

func formatRegions(regions []string) string {
	if len(regions) == 0 {
		return "（未設定）"
	}
	return strings.Join(regions, ", ")
}
