package awsctx

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Manager はプロファイル・アカウントID・エクスプローラーリージョンの唯一のアクセスポイント
// すべての変更は保存先への書き込み完了後に通知される（write-then-notify）
type Manager struct {
	settings  SettingsStore
	state     PersistentState
	credMgr   CredentialManager
	resolvers []CredentialsResolver
	events    *eventHub

	// mu は変更系操作（read-modify-writeを含む）を直列化する
	mu sync.Mutex
}

// Option はManagerの構成オプション
type Option func(*Manager)

// WithCredentialManager は解決チェーンの先頭で試すCredentialManagerを設定する
func WithCredentialManager(cm CredentialManager) Option {
	return func(m *Manager) { m.credMgr = cm }
}

// WithResolvers はCredentialManager以降の解決チェーンを差し替える（テスト用途）
func WithResolvers(resolvers ...CredentialsResolver) Option {
	return func(m *Manager) { m.resolvers = resolvers }
}

// New はManagerを作成する。既定の解決チェーンは共有設定ファイル→credential_process
func New(settings SettingsStore, state PersistentState, opts ...Option) *Manager {
	m := &Manager{
		settings:  settings,
		state:     state,
		resolvers: []CredentialsResolver{SharedFileResolver{}, ProcessResolver{}},
		events:    newEventHub(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetCredentialProfileName は保存されているプロファイル名を返す（常に保存先を読み直す）
func (m *Manager) GetCredentialProfileName() string {
	name, _ := m.settings.GetString(KeyProfile)
	return name
}

// SetCredentialProfileName はプロファイル名をグローバルスコープに保存して通知する
// 空文字列の場合はキーを削除する（プロファイル未選択の状態）
func (m *Manager) SetCredentialProfileName(ctx context.Context, name string) error {
	m.mu.Lock()

	var err error
	if name == "" {
		err = m.settings.Delete(ctx, KeyProfile, ScopeGlobal)
	} else {
		err = m.settings.Set(ctx, KeyProfile, name, ScopeGlobal)
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}

	// スナップショットはロック内で取り、通知はロック外で行う
	// （リスナーが別の変更系操作を呼んでもデッドロックしない）
	snap := m.snapshot()
	m.mu.Unlock()
	m.events.emit(snap)
	return nil
}

// GetCredentialAccountID は永続状態からアカウントIDを返す
func (m *Manager) GetCredentialAccountID() string {
	id, _ := m.state.Get(keyAccountID)
	return id
}

// SetCredentialAccountID はアカウントIDを永続状態に保存して通知する
func (m *Manager) SetCredentialAccountID(ctx context.Context, id string) error {
	m.mu.Lock()

	var err error
	if id == "" {
		err = m.state.Delete(ctx, keyAccountID)
	} else {
		err = m.state.Set(ctx, keyAccountID, id)
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}

	snap := m.snapshot()
	m.mu.Unlock()
	m.events.emit(snap)
	return nil
}

// GetExplorerRegions はエクスプローラーリージョンの一覧を返す（未設定なら空スライス、nilは返さない）
func (m *Manager) GetExplorerRegions() []string {
	regions := m.settings.GetStringSlice(KeyExplorerRegions)
	if regions == nil {
		return []string{}
	}
	return regions
}

// AddExplorerRegions は指定リージョンを指定順のまま末尾に追加して保存・通知する
// 重複は除外しない（同じリージョンを複数回追加できる）
func (m *Manager) AddExplorerRegions(ctx context.Context, regions ...string) error {
	m.mu.Lock()

	current := m.GetExplorerRegions()
	next := make([]string, 0, len(current)+len(regions))
	next = append(next, current...)
	next = append(next, regions...)

	if err := m.settings.Set(ctx, KeyExplorerRegions, next, ScopeGlobal); err != nil {
		m.mu.Unlock()
		return err
	}

	snap := m.snapshot()
	m.mu.Unlock()
	m.events.emit(snap)
	return nil
}

// RemoveExplorerRegions は指定リージョンをすべての出現位置から取り除いて保存・通知する
func (m *Manager) RemoveExplorerRegions(ctx context.Context, regions ...string) error {
	m.mu.Lock()

	drop := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		drop[r] = struct{}{}
	}

	current := m.GetExplorerRegions()
	next := make([]string, 0, len(current))
	for _, r := range current {
		if _, ok := drop[r]; !ok {
			next = append(next, r)
		}
	}

	if err := m.settings.Set(ctx, KeyExplorerRegions, next, ScopeGlobal); err != nil {
		m.mu.Unlock()
		return err
	}

	snap := m.snapshot()
	m.mu.Unlock()
	m.events.emit(snap)
	return nil
}

// OnDidChangeContext は変更通知の購読を登録する
// リスナーは変更1回につき1回、登録順に同期呼び出しされる（まとめ打ちはしない）
// 通知はロック外で行われるため、リスナーから変更系操作を呼び出してもよい
func (m *Manager) OnDidChangeContext(fn func(Snapshot)) *Subscription {
	return m.events.subscribe(fn)
}

// GetCredentials は解決チェーンで認証情報プロバイダを解決する
// プロファイル名が空の場合は保存されているプロファイル名を使う
// どの手段でも解決できない場合はfalseを返す（エラーにはしない）
func (m *Manager) GetCredentials(ctx context.Context, profileName string) (aws.CredentialsProvider, bool) {
	provider, _, ok := m.ResolveCredentials(ctx, profileName)
	return provider, ok
}

// ResolveCredentials はGetCredentialsと同じ解決を行い、解決に使われたリゾルバ名も返す
func (m *Manager) ResolveCredentials(ctx context.Context, profileName string) (aws.CredentialsProvider, string, bool) {
	name := profileName
	if name == "" {
		name = m.GetCredentialProfileName()
	}
	if name == "" {
		// プロファイルが決まらない場合は解決を試みない
		return nil, "", false
	}

	for _, r := range m.chain() {
		provider, err := r.Resolve(ctx, name)
		if err != nil || provider == nil {
			// 失敗は次のリゾルバへフォールスルー
			continue
		}
		return provider, r.Name(), true
	}
	return nil, "", false
}

// chain はCredentialManagerを先頭に置いた実効解決チェーンを返す
func (m *Manager) chain() []CredentialsResolver {
	if m.credMgr == nil {
		return m.resolvers
	}
	chain := make([]CredentialsResolver, 0, len(m.resolvers)+1)
	chain = append(chain, managerResolver{manager: m.credMgr})
	chain = append(chain, m.resolvers...)
	return chain
}

// snapshot は通知用に現在の状態を保存先から読み直す
func (m *Manager) snapshot() Snapshot {
	return Snapshot{
		ProfileName: m.GetCredentialProfileName(),
		AccountID:   m.GetCredentialAccountID(),
		Regions:     m.GetExplorerRegions(),
	}
}
