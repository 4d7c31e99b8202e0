package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	awsclient "awsctx/internal/aws"
	"awsctx/internal/service/common"
	regionSvc "awsctx/internal/service/region"
)

var showAllRegions bool
var removeAllRegions bool

// RegionCmd represents the region command
var RegionCmd = &cobra.Command{
	Use:   "region",
	Short: "エクスプローラーリージョンの管理",
	Long: `エクスプローラーに表示するリージョンを管理します。

addはワイルドカードパターン（例: "ap-northeast-*"）を受け付け、
利用可能なリージョン一覧に展開してから登録します。
登録順は保持され、同じリージョンを重複して登録することもできます。

使用例:
  ` + AppName + ` region ls
  ` + AppName + ` region add ap-northeast-1 us-east-1
  ` + AppName + ` region add "ap-*"
  ` + AppName + ` region rm us-east-1`,
}

var regionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "利用可能なAWSリージョンを一覧表示",
	Long: `利用可能なAWSリージョンの一覧を表示します。

エクスプローラーに登録済みのリージョンには印が付きます。
--all フラグを使用すると、無効なリージョンも含めて全てのリージョンを表示します。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRegions(showAllRegions)
	},
	SilenceUsage: true,
}

var regionAddCmd = &cobra.Command{
	Use:   "add <リージョン|パターン>...",
	Short: "エクスプローラーリージョンを追加",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toAdd := args

		// ワイルドカードを含む場合のみ、利用可能なリージョン一覧に展開する
		if strings.ContainsAny(strings.Join(args, ""), "*?") {
			candidates, err := availableRegionNames()
			if err != nil {
				return err
			}
			toAdd = regionSvc.ExpandPatterns(args, candidates)
			if len(toAdd) == 0 {
				return fmt.Errorf("❌ パターンに一致するリージョンがありません: %s", strings.Join(args, ", "))
			}
		}

		sub := watchContext()
		defer sub.Dispose()

		if err := manager.AddExplorerRegions(cmd.Context(), toAdd...); err != nil {
			return fmt.Errorf("❌ リージョンの追加に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var regionRmCmd = &cobra.Command{
	Use:   "rm <リージョン>...",
	Short: "エクスプローラーリージョンを削除",
	Long:  `指定したリージョンをエクスプローラーリージョンから削除します（重複登録もまとめて削除されます）。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toRemove := args
		if removeAllRegions {
			if len(args) > 0 {
				return fmt.Errorf("❌ エラー: --all とリージョン指定は同時に使えません")
			}
			toRemove = manager.GetExplorerRegions()
			if len(toRemove) == 0 {
				fmt.Println("エクスプローラーリージョンは登録されていません")
				return nil
			}
		} else if len(args) == 0 {
			return fmt.Errorf("❌ エラー: 削除するリージョンを指定するか --all を使用してください")
		}

		sub := watchContext()
		defer sub.Dispose()

		if err := manager.RemoveExplorerRegions(cmd.Context(), toRemove...); err != nil {
			return fmt.Errorf("❌ リージョンの削除に失敗: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

// listRegions は利用可能なリージョンを登録状態付きで表示する
func listRegions(showAll bool) error {
	clients, err := awsclient.NewAwsClients(newAwsContext(""))
	if err != nil {
		return fmt.Errorf("❌ AWS設定の読み込みエラー: %w", err)
	}

	regions, err := regionSvc.ListRegions(clients.Ec2(), showAll)
	if err != nil {
		return fmt.Errorf("❌ リージョン一覧取得でエラー: %w", err)
	}

	registered := make(map[string]bool)
	for _, r := range manager.GetExplorerRegions() {
		registered[r] = true
	}

	available, disabled := regionSvc.GroupRegions(regions)

	items := make([]common.ListItem, 0, len(available))
	for _, r := range available {
		item := common.ListItem{Name: r.RegionName}
		if registered[r.RegionName] {
			item.Status = "エクスプローラー登録済み"
		}
		items = append(items, item)
	}
	common.PrintStatusList("利用可能なリージョン", items, "リージョン")

	if showAll && len(disabled) > 0 {
		common.PrintSimpleList(common.ListOutput{
			Title:        "無効なリージョン",
			Items:        regionSvc.Names(disabled),
			ResourceName: "リージョン",
		})
	}
	return nil
}

// availableRegionNames はパターン展開の候補となるリージョン名一覧を取得する
func availableRegionNames() ([]string, error) {
	clients, err := awsclient.NewAwsClients(newAwsContext(""))
	if err != nil {
		return nil, fmt.Errorf("❌ AWS設定の読み込みエラー: %w", err)
	}
	regions, err := regionSvc.ListRegions(clients.Ec2(), false)
	if err != nil {
		return nil, fmt.Errorf("❌ リージョン一覧取得でエラー: %w", err)
	}
	return regionSvc.Names(regions), nil
}

func init() {
	RootCmd.AddCommand(RegionCmd)
	RegionCmd.AddCommand(regionLsCmd)
	RegionCmd.AddCommand(regionAddCmd)
	RegionCmd.AddCommand(regionRmCmd)

	regionLsCmd.Flags().BoolVarP(&showAllRegions, "all", "a", false, "無効なリージョンも含めて全てのリージョンを表示")
	regionRmCmd.Flags().BoolVar(&removeAllRegions, "all", false, "登録されているリージョンをすべて削除")
}
