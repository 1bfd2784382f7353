package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2Client is the subset of the EC2 API the inventory service uses,
// narrowed so tests can inject a fake
type EC2Client interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

type service struct {
	client EC2Client
}

type EC2Service interface {
	FindInstancesByTag(ctx context.Context, tagKey string) ([]string, error)
}
