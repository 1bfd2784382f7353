package awsecs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/elC0mpa/rios-reaper/model"
)

// ECSClient is the subset of the ECS API the cluster finder uses,
// narrowed so tests can inject a fake
type ECSClient interface {
	ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error)
	DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error)
}

type service struct {
	client ECSClient
}

type ECSService interface {
	FindStoppedClusters(ctx context.Context, tagKey string) ([]model.StoppedCluster, error)
}
