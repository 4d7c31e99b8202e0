package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchPattern はワイルドカードパターンマッチングを行う
// ワイルドカード（* または ?）を含む場合はglob形式でマッチング、
// 含まない場合は部分一致で判定する
func MatchPattern(name, pattern string) bool {
	if strings.ContainsAny(pattern, "*?") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return false
		}
		return g.Match(name)
	}
	return strings.Contains(name, pattern)
}
