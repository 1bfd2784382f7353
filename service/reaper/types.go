package reaper

import (
	"context"

	"github.com/elC0mpa/rios-reaper/model"
	"github.com/elC0mpa/rios-reaper/service"
)

// Config holds the tag filters and idle policy for a reaper pass
type Config struct {
	InstanceTagKey string
	ClusterTagKey  string
	Policy         model.IdlePolicy
}

type reaperService struct {
	cfg                 Config
	identityService     service.IdentityService
	inventoryService    service.InventoryService
	metricsService      service.MetricsService
	clusterService      service.ClusterService
	loadBalancerService service.LoadBalancerService
	notificationService service.NotificationService
	costService         service.CostService
}

type ReaperService interface {
	Reap(ctx context.Context) (*model.ReapReport, error)
}
