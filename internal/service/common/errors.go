package common

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// エラーメッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
	ProcessIcon = "🔄"
)

// FormatAPIError はAWS APIエラーをエラーコード付きで整形する
func FormatAPIError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s %sに失敗 [%s]: %s", ErrorIcon, operation, apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Errorf("%s %sに失敗: %w", ErrorIcon, operation, err)
}
