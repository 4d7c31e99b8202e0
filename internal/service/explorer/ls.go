package explorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// activeStackStatuses はエクスプローラーに表示するスタックの状態
var activeStackStatuses = []types.StackStatus{
	types.StackStatusCreateComplete,
	types.StackStatusUpdateComplete,
	types.StackStatusUpdateRollbackComplete,
	types.StackStatusRollbackComplete,
	types.StackStatusImportComplete,
}

// ListStacks はアクティブなCloudFormationスタック名一覧を返す
func ListStacks(cfnClient *cloudformation.Client) ([]string, error) {
	resp, err := cfnClient.ListStacks(context.Background(), &cloudformation.ListStacksInput{
		StackStatusFilter: activeStackStatuses,
	})
	if err != nil {
		return nil, err
	}

	stacks := make([]string, 0, len(resp.StackSummaries))
	for _, summary := range resp.StackSummaries {
		stacks = append(stacks, aws.ToString(summary.StackName))
	}
	return stacks, nil
}

// ListBuckets はS3バケット名の一覧を返す（S3バケットはリージョン横断で1回だけ取得する）
func ListBuckets(s3Client *s3.Client) ([]string, error) {
	result, err := s3Client.ListBuckets(context.Background(), &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	buckets := make([]string, 0, len(result.Buckets))
	for _, bucket := range result.Buckets {
		buckets = append(buckets, *bucket.Name)
	}
	return buckets, nil
}
