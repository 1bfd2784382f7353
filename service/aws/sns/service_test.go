package awssns

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNSClient struct {
	gotInput *sns.PublishInput
}

func (f *fakeSNSClient) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.gotInput = params
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewServiceWithClient(&fakeSNSClient{}, "").Configured())
	assert.True(t, NewServiceWithClient(&fakeSNSClient{}, "arn:aws:sns:us-west-2:123456789012:reaper").Configured())
}

func TestPublish(t *testing.T) {
	fake := &fakeSNSClient{}
	svc := NewServiceWithClient(fake, "arn:aws:sns:us-west-2:123456789012:reaper")

	err := svc.Publish(context.Background(), "RIOS Reaper Report", "No Idle Instances detected\nNo Stopped Clusters found")
	require.NoError(t, err)

	require.NotNil(t, fake.gotInput)
	assert.Equal(t, "arn:aws:sns:us-west-2:123456789012:reaper", aws.ToString(fake.gotInput.TopicArn))
	assert.Equal(t, "RIOS Reaper Report", aws.ToString(fake.gotInput.Subject))
	assert.Equal(t, "No Idle Instances detected\nNo Stopped Clusters found", aws.ToString(fake.gotInput.Message))
}
