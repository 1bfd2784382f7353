package service

import (
	"context"

	"github.com/elC0mpa/rios-reaper/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// InventoryService lists compute instances carrying a tag key under any value
type InventoryService interface {
	FindInstancesByTag(ctx context.Context, tagKey string) ([]string, error)
}

// MetricsService returns per-period average utilization samples for an
// instance, most recent last. A series shorter than policy.NumPeriods is a
// valid outcome (instance too new, metrics gap), not an error.
type MetricsService interface {
	GetAverageCPUUtilization(ctx context.Context, instanceID string, policy model.IdlePolicy) ([]float64, error)
}

// ClusterService lists tagged container clusters with zero running tasks
type ClusterService interface {
	FindStoppedClusters(ctx context.Context, tagKey string) ([]model.StoppedCluster, error)
}

// LoadBalancerService lists load balancers referenced by no target group
type LoadBalancerService interface {
	FindUnusedLoadBalancers(ctx context.Context) ([]model.UnusedLoadBalancer, error)
}

// NotificationService publishes a summary message to the configured channel
type NotificationService interface {
	Configured() bool
	Publish(ctx context.Context, subject, message string) error
}

// CostService provides compute spend context for reports
type CostService interface {
	GetCurrentMonthComputeCosts(ctx context.Context) (*model.CostInfo, error)
}
