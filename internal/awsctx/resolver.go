package awsctx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/processcreds"
)

// CredentialManager は名前付きプロファイルの認証情報を解決する差し替え可能なコラボレーター
// 未知のプロファイルの場合はエラーを返す
type CredentialManager interface {
	GetCredentials(ctx context.Context, profileName string) (aws.CredentialsProvider, error)
}

// CredentialsResolver は解決チェーンの1手段
// 失敗はエラーで表し、呼び出し側が次の手段へフォールスルーする
type CredentialsResolver interface {
	// Name はリゾルバの識別名（表示用）
	Name() string
	// Resolve はプロファイル名から認証情報プロバイダを構築する
	Resolve(ctx context.Context, profileName string) (aws.CredentialsProvider, error)
}

// managerResolver はCredentialManagerをチェーンの1手段として扱うアダプター
type managerResolver struct {
	manager CredentialManager
}

func (r managerResolver) Name() string { return "credential-manager" }

func (r managerResolver) Resolve(ctx context.Context, profileName string) (aws.CredentialsProvider, error) {
	provider, err := r.manager.GetCredentials(ctx, profileName)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("credential managerがプロファイル '%s' を解決できませんでした", profileName)
	}
	return provider, nil
}

// SharedFileResolver は共有設定ファイル（~/.aws/credentials等）の静的キーから解決する
type SharedFileResolver struct{}

func (SharedFileResolver) Name() string { return "shared-config" }

func (SharedFileResolver) Resolve(ctx context.Context, profileName string) (aws.CredentialsProvider, error) {
	sc, err := config.LoadSharedConfigProfile(ctx, profileName)
	if err != nil {
		return nil, fmt.Errorf("共有設定プロファイル '%s' の読み込みに失敗: %w", profileName, err)
	}
	if !sc.Credentials.HasKeys() {
		return nil, fmt.Errorf("プロファイル '%s' に静的な認証情報がありません", profileName)
	}
	return credentials.NewStaticCredentialsProvider(
		sc.Credentials.AccessKeyID,
		sc.Credentials.SecretAccessKey,
		sc.Credentials.SessionToken,
	), nil
}

// ProcessResolver は共有設定のcredential_processから解決する
// プロバイダの構築のみ行い、外部プロセスの起動は認証情報の取得時まで遅延される
type ProcessResolver struct{}

func (ProcessResolver) Name() string { return "credential-process" }

func (ProcessResolver) Resolve(ctx context.Context, profileName string) (aws.CredentialsProvider, error) {
	sc, err := config.LoadSharedConfigProfile(ctx, profileName)
	if err != nil {
		return nil, fmt.Errorf("共有設定プロファイル '%s' の読み込みに失敗: %w", profileName, err)
	}
	if sc.CredentialProcess == "" {
		return nil, fmt.Errorf("プロファイル '%s' にcredential_processの設定がありません", profileName)
	}
	return processcreds.NewProvider(sc.CredentialProcess), nil
}
