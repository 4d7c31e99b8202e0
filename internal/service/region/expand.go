package region

import (
	"strings"

	"awsctx/internal/service/common"
)

// ExpandPatterns はリージョンパターンを候補リストに展開する
// ワイルドカードを含まないパターンは候補に無くてもそのまま通す
// （オプトイン前のリージョンを先に登録するケースを許容する）
func ExpandPatterns(patterns, candidates []string) []string {
	var result []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?") {
			result = append(result, pattern)
			continue
		}
		for _, candidate := range candidates {
			if common.MatchPattern(candidate, pattern) {
				result = append(result, candidate)
			}
		}
	}
	return result
}
