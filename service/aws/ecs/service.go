package awsecs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/elC0mpa/rios-reaper/model"
)

// DescribeClusters accepts at most 100 cluster ARNs per call
const describeBatchSize = 100

func NewService(awsconfig aws.Config) *service {
	client := ecs.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func NewServiceWithClient(client ECSClient) *service {
	return &service{
		client: client,
	}
}

// FindStoppedClusters returns every cluster that carries the tag key under
// any value and reports zero running tasks at query time.
func (s *service) FindStoppedClusters(ctx context.Context, tagKey string) ([]model.StoppedCluster, error) {
	clusterArns, err := s.listClusterArns(ctx)
	if err != nil {
		return nil, err
	}

	if len(clusterArns) == 0 {
		return []model.StoppedCluster{}, nil
	}

	stopped := []model.StoppedCluster{}

	for start := 0; start < len(clusterArns); start += describeBatchSize {
		end := start + describeBatchSize
		if end > len(clusterArns) {
			end = len(clusterArns)
		}

		output, err := s.client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
			Clusters: clusterArns[start:end],
			Include:  []types.ClusterField{types.ClusterFieldTags},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe clusters: %w", err)
		}

		for _, cluster := range output.Clusters {
			if cluster.RunningTasksCount != 0 {
				continue
			}
			if !hasTagKey(cluster.Tags, tagKey) {
				continue
			}

			stopped = append(stopped, model.StoppedCluster{
				Name: aws.ToString(cluster.ClusterName),
				ARN:  aws.ToString(cluster.ClusterArn),
			})
		}
	}

	return stopped, nil
}

func (s *service) listClusterArns(ctx context.Context) ([]string, error) {
	input := &ecs.ListClustersInput{}

	var clusterArns []string

	for {
		output, err := s.client.ListClusters(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list clusters: %w", err)
		}

		clusterArns = append(clusterArns, output.ClusterArns...)

		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return clusterArns, nil
}

func hasTagKey(tags []types.Tag, key string) bool {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == key {
			return true
		}
	}
	return false
}
