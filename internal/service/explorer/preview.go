package explorer

import (
	"github.com/schollz/progressbar/v3"

	awsclient "awsctx/internal/aws"
	"awsctx/internal/service/common"
)

// Preview は各エクスプローラーリージョンのスタック一覧を並列で取得する
// リージョン単位の失敗は結果のErrに記録し、全体は継続する
func Preview(awsCtx awsclient.Context, regions []string) []RegionSummary {
	summaries := make([]RegionSummary, len(regions))

	bar := progressbar.NewOptions(len(regions),
		progressbar.OptionSetDescription("リージョンを確認中..."),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	executor := common.NewParallelExecutor(4)
	for i, regionName := range regions {
		executor.Execute(func() {
			defer func() { _ = bar.Add(1) }()
			summaries[i] = previewRegion(awsCtx, regionName)
		})
	}
	executor.Wait()

	return summaries
}

func previewRegion(awsCtx awsclient.Context, regionName string) RegionSummary {
	summary := RegionSummary{Region: regionName}

	regionCtx := awsCtx
	regionCtx.Region = regionName
	clients, err := awsclient.NewAwsClients(regionCtx)
	if err != nil {
		summary.Err = err
		return summary
	}

	stacks, err := ListStacks(clients.Cfn())
	if err != nil {
		summary.Err = err
		return summary
	}
	summary.Stacks = stacks
	return summary
}
