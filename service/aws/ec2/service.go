package awsec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func NewServiceWithClient(client EC2Client) *service {
	return &service{
		client: client,
	}
}

// FindInstancesByTag returns the identifiers of every instance carrying the
// tag key, regardless of tag value or instance state.
func (s *service) FindInstancesByTag(ctx context.Context, tagKey string) ([]string, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("tag-key"),
				Values: []string{tagKey},
			},
		},
	}

	var instanceIds []string

	for {
		output, err := s.client.DescribeInstances(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instanceIds = append(instanceIds, aws.ToString(instance.InstanceId))
			}
		}

		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return instanceIds, nil
}
