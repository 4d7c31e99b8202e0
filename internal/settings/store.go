// Package settings はYAMLファイルを裏付けとするSettingsStore実装
package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"awsctx/internal/awsctx"
)

// WorkspaceFileName はワークスペーススコープの設定ファイル名
const WorkspaceFileName = ".awsctx.yaml"

// Store はグローバル/ワークスペースの2ティアを持つファイル設定ストア
// 読み取りはワークスペース側を優先し、書き込みは指定スコープのファイルに行う
type Store struct {
	globalPath    string
	workspacePath string
}

var _ awsctx.SettingsStore = (*Store)(nil)

// NewStore は指定パスのファイルを使うStoreを作成する
func NewStore(globalPath, workspacePath string) *Store {
	return &Store{globalPath: globalPath, workspacePath: workspacePath}
}

// DefaultGlobalPath はグローバル設定ファイルの既定パスを返す
func DefaultGlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("設定ディレクトリの取得に失敗: %w", err)
	}
	return filepath.Join(dir, "awsctx", "settings.yaml"), nil
}

// GetString はキーの文字列値を返す。ワークスペース設定がグローバル設定より優先される
func (s *Store) GetString(key string) (string, bool) {
	if v, ok := s.lookup(key); ok {
		str, ok := v.(string)
		return str, ok
	}
	return "", false
}

// GetStringSlice はキーの文字列リストを返す。未設定の場合はnil
func (s *Store) GetStringSlice(key string) []string {
	v, ok := s.lookup(key)
	if !ok {
		return nil
	}
	return toStringSlice(v)
}

// Set は指定スコープのファイルに値を書き込む。書き込み完了までブロックする
func (s *Store) Set(_ context.Context, key string, value any, scope awsctx.Scope) error {
	path := s.pathFor(scope)
	values := load(path)
	values[key] = value
	return save(path, values)
}

// Delete は指定スコープのファイルからキーを削除する。キーが無い場合も成功
func (s *Store) Delete(_ context.Context, key string, scope awsctx.Scope) error {
	path := s.pathFor(scope)
	values := load(path)
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return save(path, values)
}

func (s *Store) pathFor(scope awsctx.Scope) string {
	if scope == awsctx.ScopeWorkspace {
		return s.workspacePath
	}
	return s.globalPath
}

// lookup はワークスペース→グローバルの順でキーを探す
func (s *Store) lookup(key string) (any, bool) {
	if s.workspacePath != "" {
		if v, ok := load(s.workspacePath)[key]; ok {
			return v, true
		}
	}
	if v, ok := load(s.globalPath)[key]; ok {
		return v, true
	}
	return nil, false
}

// load はYAMLファイルをマップとして読み込む
// ファイルが無い・読めない・壊れている場合は空マップを返す（未設定扱い）
func load(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return map[string]any{}
	}
	return values
}

// save はマップをYAMLとしてファイルに書き出す。親ディレクトリが無ければ作成する
func save(path string, values map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("設定ディレクトリの作成に失敗: %w", err)
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("設定のシリアライズに失敗: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗: %w", err)
	}
	return nil
}

// toStringSlice はYAMLデシリアライズ後のリスト表現を[]stringへ揃える
func toStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		result := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}
