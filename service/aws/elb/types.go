package awselb

import (
	"context"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/elC0mpa/rios-reaper/model"
)

// ELBClient is the subset of the ELBv2 API the load balancer finder uses,
// narrowed so tests can inject a fake
type ELBClient interface {
	DescribeLoadBalancers(ctx context.Context, params *elb.DescribeLoadBalancersInput, optFns ...func(*elb.Options)) (*elb.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elb.DescribeTargetGroupsInput, optFns ...func(*elb.Options)) (*elb.DescribeTargetGroupsOutput, error)
}

type service struct {
	client ELBClient
}

type ELBService interface {
	FindUnusedLoadBalancers(ctx context.Context) ([]model.UnusedLoadBalancer, error)
}
