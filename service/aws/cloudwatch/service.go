package awscloudwatch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/elC0mpa/rios-reaper/model"
)

func NewService(awsconfig aws.Config) *service {
	client := cloudwatch.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func NewServiceWithClient(client CloudWatchClient) *service {
	return &service{
		client: client,
	}
}

// GetAverageCPUUtilization returns one average CPU sample per period over the
// window [now - period*numPeriods, now), oldest first. CloudWatch may return
// fewer datapoints than requested periods; the short series is passed through
// as-is.
func (s *service) GetAverageCPUUtilization(ctx context.Context, instanceID string, policy model.IdlePolicy) ([]float64, error) {
	now := time.Now()
	window := time.Duration(policy.PeriodSeconds*policy.NumPeriods) * time.Second

	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/EC2"),
		MetricName: aws.String("CPUUtilization"),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String("InstanceId"),
				Value: aws.String(instanceID),
			},
		},
		StartTime:  aws.Time(now.Add(-window)),
		EndTime:    aws.Time(now),
		Period:     aws.Int32(int32(policy.PeriodSeconds)),
		Statistics: []types.Statistic{types.StatisticAverage},
	}

	output, err := s.client.GetMetricStatistics(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU utilization for %s: %w", instanceID, err)
	}

	// Datapoints come back in no particular order
	datapoints := make([]types.Datapoint, len(output.Datapoints))
	copy(datapoints, output.Datapoints)
	sort.Slice(datapoints, func(i, j int) bool {
		return datapoints[i].Timestamp.Before(*datapoints[j].Timestamp)
	})

	samples := make([]float64, 0, len(datapoints))
	for _, datapoint := range datapoints {
		samples = append(samples, aws.ToFloat64(datapoint.Average))
	}

	return samples, nil
}
