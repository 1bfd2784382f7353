package awscostexplorer

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/rios-reaper/model"
)

// Cost Explorer SERVICE dimension values for the compute services the reaper
// inspects
var computeServices = []string{
	"Amazon Elastic Compute Cloud - Compute",
	"Amazon Elastic Container Service",
}

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

func NewServiceWithClient(client CostExplorerClient) *service {
	return &service{
		client: client,
	}
}

// GetCurrentMonthComputeCosts returns month-to-date EC2 and ECS spend,
// grouped by service.
func (s *service) GetCurrentMonthComputeCosts(ctx context.Context) (*model.CostInfo, error) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	costsAggregation := "UnblendedCost"

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(firstOfMonth.Format("2006-01-02")),
			End:   aws.String(now.Format("2006-01-02")),
		},
		Metrics: []string{costsAggregation},
		Filter: &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: computeServices,
			},
		},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(output.ResultsByTime) == 0 {
		return &model.CostInfo{CostGroup: model.CostGroup{}}, nil
	}

	result := output.ResultsByTime[0]
	costGroups := make(model.CostGroup, len(result.Groups))

	for _, group := range result.Groups {
		metric, ok := group.Metrics[costsAggregation]
		if !ok || len(group.Keys) == 0 {
			continue
		}

		amount, err := strconv.ParseFloat(aws.ToString(metric.Amount), 64)
		if err != nil {
			continue
		}

		costGroups[group.Keys[0]] = struct {
			Amount float64
			Unit   string
		}{
			Amount: amount,
			Unit:   aws.ToString(metric.Unit),
		}
	}

	return &model.CostInfo{
		DateInterval: model.DateInterval{
			Start: result.TimePeriod.Start,
			End:   result.TimePeriod.End,
		},
		CostGroup: costGroups,
	}, nil
}
