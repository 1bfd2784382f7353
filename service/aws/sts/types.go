package awssts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/rios-reaper/model"
)

// STSClient is the subset of the STS API the identity service uses,
// narrowed so tests can inject a fake
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type service struct {
	client STSClient
}

type STSService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
