package awsec2

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEC2Client struct {
	pages      []*ec2.DescribeInstancesOutput
	gotFilters []types.Filter
	calls      int
}

func (f *fakeEC2Client) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.gotFilters = params.Filters
	output := f.pages[f.calls]
	f.calls++
	return output, nil
}

func reservationWith(ids ...string) types.Reservation {
	reservation := types.Reservation{}
	for _, id := range ids {
		reservation.Instances = append(reservation.Instances, types.Instance{InstanceId: aws.String(id)})
	}
	return reservation
}

func TestFindInstancesByTagPaginates(t *testing.T) {
	fake := &fakeEC2Client{
		pages: []*ec2.DescribeInstancesOutput{
			{
				Reservations: []types.Reservation{reservationWith("i-1", "i-2"), reservationWith("i-3")},
				NextToken:    aws.String("next"),
			},
			{
				Reservations: []types.Reservation{reservationWith("i-4")},
			},
		},
	}

	instanceIds, err := NewServiceWithClient(fake).FindInstancesByTag(context.Background(), "RIOS-computeworkerinstance")
	require.NoError(t, err)

	assert.Equal(t, []string{"i-1", "i-2", "i-3", "i-4"}, instanceIds)
	assert.Equal(t, 2, fake.calls)

	require.Len(t, fake.gotFilters, 1)
	assert.Equal(t, "tag-key", aws.ToString(fake.gotFilters[0].Name))
	assert.Equal(t, []string{"RIOS-computeworkerinstance"}, fake.gotFilters[0].Values)
}

func TestFindInstancesByTagEmptyFleet(t *testing.T) {
	fake := &fakeEC2Client{pages: []*ec2.DescribeInstancesOutput{{}}}

	instanceIds, err := NewServiceWithClient(fake).FindInstancesByTag(context.Background(), "RIOS-computeworkerinstance")
	require.NoError(t, err)

	assert.Empty(t, instanceIds)
}
