package account

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"awsctx/internal/service/common"
)

// ResolveAccountID はSTSのGetCallerIdentityで現在の認証情報のアカウントIDを取得する
func ResolveAccountID(stsClient *sts.Client) (string, error) {
	result, err := stsClient.GetCallerIdentity(context.Background(), &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", common.FormatAPIError("アカウントIDの取得", err)
	}
	return aws.ToString(result.Account), nil
}
