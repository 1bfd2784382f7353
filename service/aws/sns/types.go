package awssns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSClient is the subset of the SNS API the notifier uses,
// narrowed so tests can inject a fake
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type service struct {
	client   SNSClient
	topicARN string
}

type SNSService interface {
	Configured() bool
	Publish(ctx context.Context, subject, message string) error
}
