package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context はAWS呼び出しに使う認証情報を保持
type Context struct {
	Profile  string
	Region   string
	Provider aws.CredentialsProvider // コンテキストマネージャーが解決したプロバイダ（省略可）
	config   *aws.Config             // AWS設定のキャッシュ（非公開）
}
