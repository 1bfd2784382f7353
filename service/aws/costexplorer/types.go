package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/rios-reaper/model"
)

// CostExplorerClient is the subset of the Cost Explorer API the cost service
// uses, narrowed so tests can inject a fake
type CostExplorerClient interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type service struct {
	client CostExplorerClient
}

type CostService interface {
	GetCurrentMonthComputeCosts(ctx context.Context) (*model.CostInfo, error)
}
