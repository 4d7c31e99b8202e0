// Package awsctx はツール全体で共有するAWSコンテキスト（プロファイル・アカウントID・エクスプローラーリージョン）を管理する
package awsctx

import "context"

// Scope は設定の保存先ティアを表す
type Scope string

const (
	// ScopeGlobal はインストール全体で共有される設定ティア
	ScopeGlobal Scope = "global"
	// ScopeWorkspace は作業ディレクトリ単位の設定ティア
	ScopeWorkspace Scope = "workspace"
)

// 設定ストア上の論理キー
const (
	KeyProfile         = "profile"
	KeyExplorerRegions = "explorerRegions"
)

// keyAccountID はPersistentState側のキー（アカウントIDのみ永続状態に保存する）
const keyAccountID = "accountId"

// SettingsStore は設定の読み書きを行う最小インターフェース
type SettingsStore interface {
	// GetString はキーの文字列値を返す（未設定の場合はfalse）
	GetString(key string) (string, bool)
	// GetStringSlice はキーの文字列リストを返す（未設定の場合はnil）
	GetStringSlice(key string) []string
	// Set は指定スコープに値を書き込む
	Set(ctx context.Context, key string, value any, scope Scope) error
	// Delete は指定スコープからキーを削除する（存在しない場合も成功）
	Delete(ctx context.Context, key string, scope Scope) error
}

// PersistentState はインストール単位のキー/バリュー永続状態
type PersistentState interface {
	Get(key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Snapshot は変更通知が運ぶコンテキスト全体の状態
type Snapshot struct {
	ProfileName string
	AccountID   string
	Regions     []string
}
