package awssns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

func NewService(awsconfig aws.Config, topicARN string) *service {
	client := sns.NewFromConfig(awsconfig)
	return &service{
		client:   client,
		topicARN: topicARN,
	}
}

func NewServiceWithClient(client SNSClient, topicARN string) *service {
	return &service{
		client:   client,
		topicARN: topicARN,
	}
}

// Configured reports whether a delivery channel has been provisioned.
// An empty topic ARN means the deployment has not been bootstrapped yet and
// delivery is skipped.
func (s *service) Configured() bool {
	return s.topicARN != ""
}

func (s *service) Publish(ctx context.Context, subject, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", s.topicARN, err)
	}

	return nil
}
