package awsctx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsctx/internal/awsctx"
)

// fakeSettings はSettingsStoreのインメモリ実装。書き込み操作をログに記録する
type fakeSettings struct {
	values map[string]any
	scopes map[string]awsctx.Scope
	log    *[]string
	err    error // 設定されている場合、次の書き込みが失敗する
}

func newFakeSettings(log *[]string) *fakeSettings {
	return &fakeSettings{
		values: map[string]any{},
		scopes: map[string]awsctx.Scope{},
		log:    log,
	}
}

func (s *fakeSettings) GetString(key string) (string, bool) {
	v, ok := s.values[key].(string)
	return v, ok
}

func (s *fakeSettings) GetStringSlice(key string) []string {
	v, _ := s.values[key].([]string)
	return v
}

func (s *fakeSettings) Set(_ context.Context, key string, value any, scope awsctx.Scope) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	s.scopes[key] = scope
	if s.log != nil {
		*s.log = append(*s.log, "write:"+key)
	}
	return nil
}

func (s *fakeSettings) Delete(_ context.Context, key string, _ awsctx.Scope) error {
	if s.err != nil {
		return s.err
	}
	delete(s.values, key)
	if s.log != nil {
		*s.log = append(*s.log, "delete:"+key)
	}
	return nil
}

// fakeState はPersistentStateのインメモリ実装
type fakeState struct {
	values map[string]string
	log    *[]string
	err    error
}

func newFakeState(log *[]string) *fakeState {
	return &fakeState{values: map[string]string{}, log: log}
}

func (s *fakeState) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *fakeState) Set(_ context.Context, key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	if s.log != nil {
		*s.log = append(*s.log, "state-write:"+key)
	}
	return nil
}

func (s *fakeState) Delete(_ context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.values, key)
	if s.log != nil {
		*s.log = append(*s.log, "state-delete:"+key)
	}
	return nil
}

func newTestManager(log *[]string) (*awsctx.Manager, *fakeSettings, *fakeState) {
	settings := newFakeSettings(log)
	state := newFakeState(log)
	return awsctx.New(settings, state), settings, state
}

func TestSetCredentialProfileName(t *testing.T) {
	m, _, _ := newTestManager(nil)

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.SetCredentialProfileName(context.Background(), "profile1"))

	assert.Equal(t, "profile1", m.GetCredentialProfileName())
	require.Len(t, events, 1)
	assert.Equal(t, "profile1", events[0].ProfileName)
	assert.Equal(t, "", events[0].AccountID)
	assert.Equal(t, []string{}, events[0].Regions)
}

func TestSetCredentialProfileNameEmptyClearsKey(t *testing.T) {
	m, settings, _ := newTestManager(nil)
	require.NoError(t, m.SetCredentialProfileName(context.Background(), "profile1"))

	require.NoError(t, m.SetCredentialProfileName(context.Background(), ""))

	assert.Equal(t, "", m.GetCredentialProfileName())
	_, ok := settings.values[awsctx.KeyProfile]
	assert.False(t, ok)
}

func TestSetCredentialAccountID(t *testing.T) {
	m, _, _ := newTestManager(nil)

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.SetCredentialAccountID(context.Background(), "123456789012"))

	assert.Equal(t, "123456789012", m.GetCredentialAccountID())
	require.Len(t, events, 1)
	assert.Equal(t, "123456789012", events[0].AccountID)
}

func TestGetExplorerRegionsEmptyStore(t *testing.T) {
	m, _, _ := newTestManager(nil)

	regions := m.GetExplorerRegions()

	// 未設定でもnilではなく空スライスを返す
	require.NotNil(t, regions)
	assert.Empty(t, regions)
}

func TestAddExplorerRegions(t *testing.T) {
	m, _, _ := newTestManager(nil)

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))

	assert.Equal(t, []string{"re-gion-1"}, m.GetExplorerRegions())
	require.Len(t, events, 1)
	assert.Equal(t, []string{"re-gion-1"}, events[0].Regions)
}

func TestAddExplorerRegionsVariadicKeepsOrder(t *testing.T) {
	m, _, _ := newTestManager(nil)

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1", "re-gion-2"))

	assert.Equal(t, []string{"re-gion-1", "re-gion-2"}, m.GetExplorerRegions())
	require.Len(t, events, 1)
}

func TestAddExplorerRegionsAllowsDuplicates(t *testing.T) {
	m, _, _ := newTestManager(nil)

	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))
	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))

	// 重複の除外はコアの責務ではない
	assert.Equal(t, []string{"re-gion-1", "re-gion-1"}, m.GetExplorerRegions())
}

func TestRemoveExplorerRegions(t *testing.T) {
	m, settings, _ := newTestManager(nil)
	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1", "re-gion-2"))

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.RemoveExplorerRegions(context.Background(), "re-gion-2"))

	assert.Equal(t, []string{"re-gion-1"}, m.GetExplorerRegions())
	assert.Equal(t, []string{"re-gion-1"}, settings.values[awsctx.KeyExplorerRegions])
	require.Len(t, events, 1)
	assert.Equal(t, []string{"re-gion-1"}, events[0].Regions)
}

func TestRemoveExplorerRegionsRemovesAllOccurrences(t *testing.T) {
	m, _, _ := newTestManager(nil)
	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1", "re-gion-2", "re-gion-1"))

	require.NoError(t, m.RemoveExplorerRegions(context.Background(), "re-gion-1"))

	assert.Equal(t, []string{"re-gion-2"}, m.GetExplorerRegions())
}

func TestMutationsWriteAtGlobalScope(t *testing.T) {
	m, settings, _ := newTestManager(nil)

	require.NoError(t, m.SetCredentialProfileName(context.Background(), "profile1"))
	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))

	assert.Equal(t, awsctx.ScopeGlobal, settings.scopes[awsctx.KeyProfile])
	assert.Equal(t, awsctx.ScopeGlobal, settings.scopes[awsctx.KeyExplorerRegions])
}

func TestNotificationFiresAfterWrite(t *testing.T) {
	var log []string
	m, _, _ := newTestManager(&log)

	m.OnDidChangeContext(func(awsctx.Snapshot) { log = append(log, "notify") })

	require.NoError(t, m.SetCredentialProfileName(context.Background(), "profile1"))
	require.NoError(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))
	require.NoError(t, m.SetCredentialAccountID(context.Background(), "123456789012"))

	assert.Equal(t, []string{
		"write:" + awsctx.KeyProfile, "notify",
		"write:" + awsctx.KeyExplorerRegions, "notify",
		"state-write:accountId", "notify",
	}, log)
}

func TestWriteFailureSuppressesNotification(t *testing.T) {
	m, settings, state := newTestManager(nil)

	notified := 0
	m.OnDidChangeContext(func(awsctx.Snapshot) { notified++ })

	settings.err = errors.New("disk full")
	assert.Error(t, m.SetCredentialProfileName(context.Background(), "profile1"))
	assert.Error(t, m.AddExplorerRegions(context.Background(), "re-gion-1"))
	assert.Error(t, m.RemoveExplorerRegions(context.Background(), "re-gion-1"))

	state.err = errors.New("disk full")
	assert.Error(t, m.SetCredentialAccountID(context.Background(), "123456789012"))

	assert.Zero(t, notified)
}

func TestEveryMutationNotifiesWithoutCoalescing(t *testing.T) {
	m, _, _ := newTestManager(nil)

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	ctx := context.Background()
	require.NoError(t, m.AddExplorerRegions(ctx, "re-gion-1"))
	require.NoError(t, m.AddExplorerRegions(ctx, "re-gion-2"))
	require.NoError(t, m.AddExplorerRegions(ctx, "re-gion-3"))

	// 連続した変更もまとめられず、1変更につき1通知
	require.Len(t, events, 3)
	assert.Equal(t, []string{"re-gion-1"}, events[0].Regions)
	assert.Equal(t, []string{"re-gion-1", "re-gion-2"}, events[1].Regions)
	assert.Equal(t, []string{"re-gion-1", "re-gion-2", "re-gion-3"}, events[2].Regions)
}

func TestNotificationCarriesFullSnapshot(t *testing.T) {
	m, _, _ := newTestManager(nil)
	ctx := context.Background()
	require.NoError(t, m.SetCredentialProfileName(ctx, "profile1"))
	require.NoError(t, m.SetCredentialAccountID(ctx, "123456789012"))

	var events []awsctx.Snapshot
	m.OnDidChangeContext(func(s awsctx.Snapshot) { events = append(events, s) })

	require.NoError(t, m.AddExplorerRegions(ctx, "re-gion-1"))

	// 通知は差分ではなく3フィールドすべてを運ぶ
	require.Len(t, events, 1)
	assert.Equal(t, "profile1", events[0].ProfileName)
	assert.Equal(t, "123456789012", events[0].AccountID)
	assert.Equal(t, []string{"re-gion-1"}, events[0].Regions)
}
