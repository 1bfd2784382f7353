package awselb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/elC0mpa/rios-reaper/model"
)

func NewService(awsconfig aws.Config) *service {
	client := elb.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func NewServiceWithClient(client ELBClient) *service {
	return &service{
		client: client,
	}
}

// FindUnusedLoadBalancers returns application and network load balancers that
// no target group references.
func (s *service) FindUnusedLoadBalancers(ctx context.Context) ([]model.UnusedLoadBalancer, error) {
	lbOutput, err := s.client.DescribeLoadBalancers(ctx, &elb.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe load balancers: %w", err)
	}

	tgOutput, err := s.client.DescribeTargetGroups(ctx, &elb.DescribeTargetGroupsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe target groups: %w", err)
	}

	usedLbArns := make(map[string]bool)

	for _, tg := range tgOutput.TargetGroups {
		for _, lbArn := range tg.LoadBalancerArns {
			usedLbArns[lbArn] = true
		}
	}

	var orphanedLbs []model.UnusedLoadBalancer

	for _, lb := range lbOutput.LoadBalancers {
		if lb.Type != types.LoadBalancerTypeEnumApplication && lb.Type != types.LoadBalancerTypeEnumNetwork {
			continue
		}

		if usedLbArns[aws.ToString(lb.LoadBalancerArn)] {
			continue
		}

		orphanedLbs = append(orphanedLbs, model.UnusedLoadBalancer{
			Name: aws.ToString(lb.LoadBalancerName),
			ARN:  aws.ToString(lb.LoadBalancerArn),
			Type: string(lb.Type),
		})
	}

	return orphanedLbs, nil
}
