package awscloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/elC0mpa/rios-reaper/model"
)

// CloudWatchClient is the subset of the CloudWatch API the sampler uses,
// narrowed so tests can inject a fake
type CloudWatchClient interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

type service struct {
	client CloudWatchClient
}

type CloudWatchService interface {
	GetAverageCPUUtilization(ctx context.Context, instanceID string, policy model.IdlePolicy) ([]float64, error)
}
