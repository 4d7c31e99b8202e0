// Package state はSQLiteを裏付けとするインストール単位のキー/バリュー永続状態
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // database/sqlにsqlite3ドライバを登録する

	"awsctx/internal/awsctx"
)

// Store は単一のkvテーブルを持つSQLiteストア
type Store struct {
	db *sql.DB
}

var _ awsctx.PersistentState = (*Store)(nil)

// DefaultPath は永続状態データベースの既定パスを返す
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("設定ディレクトリの取得に失敗: %w", err)
	}
	return filepath.Join(dir, "awsctx", "state.db"), nil
}

// Open は指定パスのデータベースを開き（無ければ作成し）、スキーマを初期化する
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("状態ディレクトリの作成に失敗: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("状態データベースのオープンに失敗: %w", err)
	}
	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close はデータベース接続を閉じる
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("状態スキーマの初期化に失敗: %w", err)
	}
	return nil
}

// Get はキーの値を返す。存在しない場合はfalse
func (s *Store) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		// sql.ErrNoRowsを含め、読めない場合は未設定として扱う
		return "", false
	}
	return value, true
}

// Set はキーに値を書き込む（既存の値は上書き）
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("状態の書き込みに失敗: %w", err)
	}
	return nil
}

// Delete はキーを削除する。存在しない場合も成功
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("状態の削除に失敗: %w", err)
	}
	return nil
}
