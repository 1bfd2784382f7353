package response

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/rios-reaper/model"
	"github.com/elC0mpa/rios-reaper/service/reaper"
)

// ConvertReport converts a model.ReapReport to its JSON representation
func ConvertReport(report *model.ReapReport) *ReapReport {
	result := &ReapReport{
		IdleInstances:       make([]IdleInstance, 0, len(report.IdleInstances)),
		StoppedClusters:     make([]StoppedCluster, 0, len(report.StoppedClusters)),
		UnusedLoadBalancers: make([]UnusedLoadBalancer, 0, len(report.UnusedLoadBalancers)),
	}

	if report.Account != nil {
		result.AccountID = report.Account.AccountID
	}

	var lbNames []string
	for _, instance := range report.IdleInstances {
		result.IdleInstances = append(result.IdleInstances, IdleInstance{
			InstanceID:      instance.InstanceID,
			PeakUtilization: instance.PeakUtilization,
			SampleCount:     instance.SampleCount,
		})
	}
	for _, cluster := range report.StoppedClusters {
		result.StoppedClusters = append(result.StoppedClusters, StoppedCluster{
			Name: cluster.Name,
			ARN:  cluster.ARN,
		})
	}
	for _, lb := range report.UnusedLoadBalancers {
		result.UnusedLoadBalancers = append(result.UnusedLoadBalancers, UnusedLoadBalancer{
			Name: lb.Name,
			ARN:  lb.ARN,
			Type: lb.Type,
		})
		lbNames = append(lbNames, lb.Name)
	}

	result.Notification = Notification{
		Sent:    report.Notification.Sent,
		Skipped: report.Notification.Skipped,
	}
	if report.Notification.Error != nil {
		result.Notification.Error = report.Notification.Error.Error()
	}

	result.Message = reaper.BuildMessage(report.IdleInstanceIDs(), report.StoppedClusterNames(), lbNames)

	return result
}

// ConvertCosts converts model.CostInfo to its JSON representation
func ConvertCosts(costs *model.CostInfo) *ComputeCosts {
	if costs == nil {
		return nil
	}

	result := &ComputeCosts{
		StartDate: aws.ToString(costs.Start),
		EndDate:   aws.ToString(costs.End),
		Services:  make([]ServiceCost, 0, len(costs.CostGroup)),
	}

	for name, cost := range costs.CostGroup {
		result.Services = append(result.Services, ServiceCost{
			Name:   name,
			Amount: cost.Amount,
			Unit:   cost.Unit,
		})
		result.Total += cost.Amount
	}

	sort.Slice(result.Services, func(i, j int) bool {
		return result.Services[i].Amount > result.Services[j].Amount
	})

	return result
}
