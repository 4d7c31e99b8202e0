package awsctx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsctx/internal/awsctx"
)

// fakeResolver は呼び出しを記録するCredentialsResolver
type fakeResolver struct {
	name     string
	provider aws.CredentialsProvider
	err      error
	calls    []string
}

func (r *fakeResolver) Name() string { return r.name }

func (r *fakeResolver) Resolve(_ context.Context, profileName string) (aws.CredentialsProvider, error) {
	r.calls = append(r.calls, profileName)
	if r.err != nil {
		return nil, r.err
	}
	return r.provider, nil
}

// fakeCredentialManager は特定のプロファイルのみ解決できるCredentialManager
type fakeCredentialManager struct {
	known    string
	provider aws.CredentialsProvider
	calls    []string
}

func (c *fakeCredentialManager) GetCredentials(_ context.Context, profileName string) (aws.CredentialsProvider, error) {
	c.calls = append(c.calls, profileName)
	if profileName != c.known {
		return nil, errors.New("unknown profile")
	}
	return c.provider, nil
}

func staticProvider(accessKey string) aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(accessKey, "secret", "")
}

func TestGetCredentialsPrefersCredentialManager(t *testing.T) {
	settings := newFakeSettings(nil)
	cm := &fakeCredentialManager{known: "profile1", provider: staticProvider("AKIDMANAGER")}
	fallback := &fakeResolver{name: "shared-config", provider: staticProvider("AKIDFILE")}
	m := awsctx.New(settings, newFakeState(nil),
		awsctx.WithCredentialManager(cm),
		awsctx.WithResolvers(fallback),
	)

	provider, ok := m.GetCredentials(context.Background(), "profile1")

	require.True(t, ok)
	creds, err := provider.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDMANAGER", creds.AccessKeyID)
	// CredentialManagerが成功した場合、後続のリゾルバは呼ばれない
	assert.Empty(t, fallback.calls)
}

func TestGetCredentialsNoProfileReturnsAbsent(t *testing.T) {
	settings := newFakeSettings(nil)
	fallback := &fakeResolver{name: "shared-config", provider: staticProvider("AKIDFILE")}
	m := awsctx.New(settings, newFakeState(nil), awsctx.WithResolvers(fallback))

	_, ok := m.GetCredentials(context.Background(), "")

	// 引数も保存値もない場合は解決を試みずに不在を返す
	assert.False(t, ok)
	assert.Empty(t, fallback.calls)
}

func TestGetCredentialsUsesStoredProfileName(t *testing.T) {
	settings := newFakeSettings(nil)
	settings.values[awsctx.KeyProfile] = "stored-profile"
	fallback := &fakeResolver{name: "shared-config", provider: staticProvider("AKIDFILE")}
	m := awsctx.New(settings, newFakeState(nil), awsctx.WithResolvers(fallback))

	_, ok := m.GetCredentials(context.Background(), "")

	require.True(t, ok)
	assert.Equal(t, []string{"stored-profile"}, fallback.calls)
}

func TestGetCredentialsFallsThroughOnManagerFailure(t *testing.T) {
	settings := newFakeSettings(nil)
	cm := &fakeCredentialManager{known: "other"}
	fallback := &fakeResolver{name: "shared-config", provider: staticProvider("AKIDFILE")}
	m := awsctx.New(settings, newFakeState(nil),
		awsctx.WithCredentialManager(cm),
		awsctx.WithResolvers(fallback),
	)

	provider, ok := m.GetCredentials(context.Background(), "profile1")

	// CredentialManagerの失敗は呼び出し側に伝播せず、次の手段へフォールスルーする
	require.True(t, ok)
	assert.Equal(t, []string{"profile1"}, cm.calls)
	assert.Equal(t, []string{"profile1"}, fallback.calls)
	creds, err := provider.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDFILE", creds.AccessKeyID)
}

func TestGetCredentialsAllResolversFailReturnsAbsent(t *testing.T) {
	settings := newFakeSettings(nil)
	first := &fakeResolver{name: "shared-config", err: errors.New("no static credentials")}
	second := &fakeResolver{name: "credential-process", err: errors.New("no credential_process")}
	m := awsctx.New(settings, newFakeState(nil), awsctx.WithResolvers(first, second))

	provider, ok := m.GetCredentials(context.Background(), "profile1")

	// すべて失敗しても panic やエラーにはならず、不在を返す
	assert.False(t, ok)
	assert.Nil(t, provider)
	assert.Equal(t, []string{"profile1"}, first.calls)
	assert.Equal(t, []string{"profile1"}, second.calls)
}

func TestGetCredentialsDoesNotMutateStoredProfile(t *testing.T) {
	settings := newFakeSettings(nil)
	settings.values[awsctx.KeyProfile] = "stored-profile"
	fallback := &fakeResolver{name: "shared-config", provider: staticProvider("AKIDFILE")}
	m := awsctx.New(settings, newFakeState(nil), awsctx.WithResolvers(fallback))

	_, ok := m.GetCredentials(context.Background(), "explicit-profile")

	require.True(t, ok)
	// 明示引数で解決しても保存されているプロファイル名は変わらない
	assert.Equal(t, "stored-profile", m.GetCredentialProfileName())
}

func TestResolveCredentialsReportsResolverName(t *testing.T) {
	settings := newFakeSettings(nil)
	first := &fakeResolver{name: "shared-config", err: errors.New("no static credentials")}
	second := &fakeResolver{name: "credential-process", provider: staticProvider("AKIDPROC")}
	m := awsctx.New(settings, newFakeState(nil), awsctx.WithResolvers(first, second))

	_, source, ok := m.ResolveCredentials(context.Background(), "profile1")

	require.True(t, ok)
	assert.Equal(t, "credential-process", source)
}
