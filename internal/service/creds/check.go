package creds

import (
	"context"
	"strings"

	"github.com/schollz/progressbar/v3"

	"awsctx/internal/awsctx"
	"awsctx/internal/service/common"
)

// CheckProfiles は各プロファイルを解決チェーンで確認する
// 解決の成否のみ確認し、認証情報の取得（外部プロセス起動等）までは行わない
func CheckProfiles(ctx context.Context, manager *awsctx.Manager, profiles []string) []common.ProcessResult {
	bar := progressbar.NewOptions(len(profiles),
		progressbar.OptionSetDescription("プロファイルを確認中..."),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]common.ProcessResult, 0, len(profiles))
	for _, profile := range profiles {
		_, source, ok := manager.ResolveCredentials(ctx, profile)
		if ok {
			results = append(results, common.ProcessResult{Item: profile + " (" + source + ")", Success: true})
		} else {
			results = append(results, common.ProcessResult{Item: profile, Success: false})
		}
		_ = bar.Add(1)
	}
	return results
}

// MaskAccessKeyID はアクセスキーIDの先頭4文字だけ残して伏せる
func MaskAccessKeyID(accessKeyID string) string {
	if len(accessKeyID) <= 4 {
		return "****"
	}
	return accessKeyID[:4] + strings.Repeat("*", len(accessKeyID)-4)
}
