package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awsclient "awsctx/internal/aws"
	"awsctx/internal/service/common"
	"awsctx/internal/service/explorer"
)

var explorerWithBuckets bool

// ExplorerCmd represents the explorer command
var ExplorerCmd = &cobra.Command{
	Use:   "explorer",
	Short: "エクスプローラーリージョンのリソースプレビュー",
	Long: `登録済みのエクスプローラーリージョンごとに、エクスプローラーが表示する
リソース（CloudFormationスタック、S3バケット）をプレビューします。

使用例:
  ` + AppName + ` explorer ls
  ` + AppName + ` explorer ls --buckets`,
}

var explorerLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "リージョンごとのリソースを一覧表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		regions := manager.GetExplorerRegions()
		if len(regions) == 0 {
			fmt.Println("エクスプローラーリージョンが登録されていません（" + AppName + " region add で追加してください）")
			return nil
		}

		awsCtx := newAwsContext("")
		summaries := explorer.Preview(awsCtx, regions)

		for _, summary := range summaries {
			if summary.Err != nil {
				fmt.Printf("%s %s: 取得に失敗: %v\n", common.WarningIcon, summary.Region, summary.Err)
				continue
			}
			common.PrintSimpleList(common.ListOutput{
				Title:        fmt.Sprintf("[%s] CloudFormationスタック", summary.Region),
				Items:        summary.Stacks,
				ResourceName: "スタック",
			})
		}

		if explorerWithBuckets {
			return listBuckets(awsCtx)
		}
		return nil
	},
	SilenceUsage: true,
}

// listBuckets はS3バケット一覧を表示する（S3はリージョン横断のため1回だけ取得）
func listBuckets(awsCtx awsclient.Context) error {
	clients, err := awsclient.NewAwsClients(awsCtx)
	if err != nil {
		return fmt.Errorf("❌ AWS設定の読み込みエラー: %w", err)
	}

	buckets, err := explorer.ListBuckets(clients.S3())
	if err != nil {
		return common.FormatAPIError("S3バケット一覧の取得", err)
	}

	common.PrintSimpleList(common.ListOutput{
		Title:        "S3バケット一覧",
		Items:        buckets,
		ResourceName: "バケット",
		ShowCount:    true,
	})
	return nil
}

func init() {
	RootCmd.AddCommand(ExplorerCmd)
	ExplorerCmd.AddCommand(explorerLsCmd)

	explorerLsCmd.Flags().BoolVar(&explorerWithBuckets, "buckets", false, "S3バケット一覧も表示")
}
