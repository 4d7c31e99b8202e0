package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"awsctx/internal/service/common"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		pattern string
		want    bool
	}{
		{"ワイルドカード前方一致", "ap-northeast-1", "ap-*", true},
		{"ワイルドカード不一致", "us-east-1", "ap-*", false},
		{"中間ワイルドカード", "ap-northeast-1", "ap-*-1", true},
		{"疑問符は1文字にマッチ", "us-east-1", "us-east-?", true},
		{"部分一致", "ap-northeast-1", "northeast", true},
		{"部分一致の不一致", "ap-northeast-1", "west", false},
		{"完全一致もパターンなしで通る", "us-east-1", "us-east-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, common.MatchPattern(tt.target, tt.pattern))
		})
	}
}
