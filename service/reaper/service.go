package reaper

import (
	"context"
	"fmt"

	"github.com/elC0mpa/rios-reaper/logger"
	"github.com/elC0mpa/rios-reaper/model"
	"github.com/elC0mpa/rios-reaper/service"
	"github.com/sirupsen/logrus"
)

const notificationSubject = "RIOS Reaper Report"

// NewService wires the reaper from its collaborating capabilities. The load
// balancer and cost services are optional; pass nil to skip those report
// sections.
func NewService(
	cfg Config,
	identityService service.IdentityService,
	inventoryService service.InventoryService,
	metricsService service.MetricsService,
	clusterService service.ClusterService,
	loadBalancerService service.LoadBalancerService,
	notificationService service.NotificationService,
	costService service.CostService,
) *reaperService {
	return &reaperService{
		cfg:                 cfg,
		identityService:     identityService,
		inventoryService:    inventoryService,
		metricsService:      metricsService,
		clusterService:      clusterService,
		loadBalancerService: loadBalancerService,
		notificationService: notificationService,
		costService:         costService,
	}
}

// Reap performs one classification pass: inventory, sampling, classification,
// notification. Inventory, metrics and orchestration errors abort the pass;
// identity, cost and delivery failures do not.
func (s *reaperService) Reap(ctx context.Context) (*model.ReapReport, error) {
	report := &model.ReapReport{}

	idleInstances, err := s.findIdleInstances(ctx)
	if err != nil {
		return nil, err
	}
	report.IdleInstances = idleInstances

	stoppedClusters, err := s.clusterService.FindStoppedClusters(ctx, s.cfg.ClusterTagKey)
	if err != nil {
		return nil, fmt.Errorf("stopped cluster lookup failed: %w", err)
	}
	report.StoppedClusters = stoppedClusters

	if s.loadBalancerService != nil {
		unusedLbs, err := s.loadBalancerService.FindUnusedLoadBalancers(ctx)
		if err != nil {
			return nil, fmt.Errorf("unused load balancer lookup failed: %w", err)
		}
		report.UnusedLoadBalancers = unusedLbs
	}

	if account, err := s.identityService.GetAccountInfo(ctx); err != nil {
		logger.Warnf("account identity lookup failed: %v", err)
	} else {
		report.Account = account
	}

	if s.costService != nil {
		if costs, err := s.costService.GetCurrentMonthComputeCosts(ctx); err != nil {
			logger.Warnf("compute cost lookup failed: %v", err)
		} else {
			report.ComputeCosts = costs
		}
	}

	report.Notification = s.notify(ctx, report)

	logger.WithFields(logrus.Fields{
		"idle_instances":   len(report.IdleInstances),
		"stopped_clusters": len(report.StoppedClusters),
		"notification":     report.Notification.Sent,
	}).Info("reaper pass complete")

	return report, nil
}

func (s *reaperService) findIdleInstances(ctx context.Context) ([]model.IdleInstance, error) {
	instanceIds, err := s.inventoryService.FindInstancesByTag(ctx, s.cfg.InstanceTagKey)
	if err != nil {
		return nil, fmt.Errorf("instance inventory failed: %w", err)
	}

	logger.Debugf("inspecting %d tagged instances", len(instanceIds))

	idle := []model.IdleInstance{}

	for _, instanceID := range instanceIds {
		samples, err := s.metricsService.GetAverageCPUUtilization(ctx, instanceID, s.cfg.Policy)
		if err != nil {
			return nil, fmt.Errorf("utilization sampling for %s failed: %w", instanceID, err)
		}

		if !IsIdle(samples, s.cfg.Policy.NumPeriods, s.cfg.Policy.Threshold) {
			continue
		}

		idle = append(idle, model.IdleInstance{
			InstanceID:      instanceID,
			PeakUtilization: PeakUtilization(samples),
			SampleCount:     len(samples),
		})
	}

	return idle, nil
}

// notify builds and delivers the summary. Delivery problems are captured in
// the result rather than failing the pass, so callers still get the computed
// lists.
func (s *reaperService) notify(ctx context.Context, report *model.ReapReport) model.NotificationResult {
	if !s.notificationService.Configured() {
		logger.Infof("notification channel not configured, skipping delivery")
		return model.NotificationResult{Skipped: true}
	}

	message := BuildMessage(report.IdleInstanceIDs(), report.StoppedClusterNames(), unusedLoadBalancerNames(report))

	if err := s.notificationService.Publish(ctx, notificationSubject, message); err != nil {
		logger.Errorf("notification delivery failed: %v", err)
		return model.NotificationResult{Error: err}
	}

	return model.NotificationResult{Sent: true}
}

func unusedLoadBalancerNames(report *model.ReapReport) []string {
	names := make([]string, 0, len(report.UnusedLoadBalancers))
	for _, lb := range report.UnusedLoadBalancers {
		names = append(names, lb.Name)
	}
	return names
}
