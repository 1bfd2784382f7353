package awsecs

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeECSClient struct {
	pages         [][]string
	clusters      map[string]types.Cluster
	describeCalls [][]string
}

func (f *fakeECSClient) ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error) {
	page := 0
	if params.NextToken != nil {
		fmt.Sscanf(*params.NextToken, "page-%d", &page)
	}

	output := &ecs.ListClustersOutput{ClusterArns: f.pages[page]}
	if page+1 < len(f.pages) {
		output.NextToken = aws.String(fmt.Sprintf("page-%d", page+1))
	}
	return output, nil
}

func (f *fakeECSClient) DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error) {
	f.describeCalls = append(f.describeCalls, params.Clusters)

	output := &ecs.DescribeClustersOutput{}
	for _, arn := range params.Clusters {
		cluster, ok := f.clusters[arn]
		if !ok {
			return nil, fmt.Errorf("unknown cluster %s", arn)
		}
		output.Clusters = append(output.Clusters, cluster)
	}
	return output, nil
}

func taggedCluster(name string, tagKey string, runningTasks int32) types.Cluster {
	cluster := types.Cluster{
		ClusterName:       aws.String(name),
		ClusterArn:        aws.String("arn:aws:ecs:us-west-2:123456789012:cluster/" + name),
		RunningTasksCount: runningTasks,
	}
	if tagKey != "" {
		cluster.Tags = []types.Tag{{Key: aws.String(tagKey), Value: aws.String("true")}}
	}
	return cluster
}

func TestFindStoppedClustersFiltersByTagAndTasks(t *testing.T) {
	fake := &fakeECSClient{clusters: map[string]types.Cluster{}}

	cX := taggedCluster("c-X", "RIOS-cluster", 0)
	cY := taggedCluster("c-Y", "RIOS-cluster", 3)
	cZ := taggedCluster("c-Z", "", 0)

	var arns []string
	for _, cluster := range []types.Cluster{cX, cY, cZ} {
		arn := aws.ToString(cluster.ClusterArn)
		fake.clusters[arn] = cluster
		arns = append(arns, arn)
	}
	fake.pages = [][]string{arns}

	stopped, err := NewServiceWithClient(fake).FindStoppedClusters(context.Background(), "RIOS-cluster")
	require.NoError(t, err)

	require.Len(t, stopped, 1)
	assert.Equal(t, "c-X", stopped[0].Name)
	assert.Equal(t, aws.ToString(cX.ClusterArn), stopped[0].ARN)
}

func TestFindStoppedClustersUnionsDescribeBatches(t *testing.T) {
	fake := &fakeECSClient{clusters: map[string]types.Cluster{}}

	// 250 stopped tagged clusters spread over three list pages
	var arns []string
	for i := 0; i < 250; i++ {
		cluster := taggedCluster(fmt.Sprintf("c-%03d", i), "RIOS-cluster", 0)
		arn := aws.ToString(cluster.ClusterArn)
		fake.clusters[arn] = cluster
		arns = append(arns, arn)
	}
	fake.pages = [][]string{arns[:100], arns[100:200], arns[200:]}

	stopped, err := NewServiceWithClient(fake).FindStoppedClusters(context.Background(), "RIOS-cluster")
	require.NoError(t, err)

	require.Len(t, fake.describeCalls, 3)
	assert.Len(t, fake.describeCalls[0], 100)
	assert.Len(t, fake.describeCalls[1], 100)
	assert.Len(t, fake.describeCalls[2], 50)

	require.Len(t, stopped, 250)
	seen := make(map[string]bool, len(stopped))
	for _, cluster := range stopped {
		assert.False(t, seen[cluster.Name], "duplicate cluster %s", cluster.Name)
		seen[cluster.Name] = true
	}
}

func TestFindStoppedClustersEmptyInventorySkipsDescribe(t *testing.T) {
	fake := &fakeECSClient{pages: [][]string{{}}}

	stopped, err := NewServiceWithClient(fake).FindStoppedClusters(context.Background(), "RIOS-cluster")
	require.NoError(t, err)

	assert.Empty(t, stopped)
	assert.Empty(t, fake.describeCalls, "DescribeClusters must not be called with zero clusters")
}
