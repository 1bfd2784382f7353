package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/elC0mpa/rios-reaper/logger"
	"github.com/elC0mpa/rios-reaper/model"
	"github.com/elC0mpa/rios-reaper/service"
	awscloudwatch "github.com/elC0mpa/rios-reaper/service/aws/cloudwatch"
	awsconfig "github.com/elC0mpa/rios-reaper/service/aws/config"
	awscostexplorer "github.com/elC0mpa/rios-reaper/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/rios-reaper/service/aws/ec2"
	awsecs "github.com/elC0mpa/rios-reaper/service/aws/ecs"
	awselb "github.com/elC0mpa/rios-reaper/service/aws/elb"
	awssns "github.com/elC0mpa/rios-reaper/service/aws/sns"
	awssts "github.com/elC0mpa/rios-reaper/service/aws/sts"
	"github.com/elC0mpa/rios-reaper/service/reaper"
	"github.com/sirupsen/logrus"
)

// Response is the structured invocation result returned to the scheduler
type Response struct {
	IdleInstances       []string `json:"idle_instances"`
	StoppedClusters     []string `json:"stopped_clusters"`
	UnusedLoadBalancers []string `json:"unused_load_balancers,omitempty"`
	NotificationSent    bool     `json:"notification_sent"`
	NotificationSkipped bool     `json:"notification_skipped"`
	NotificationError   string   `json:"notification_error,omitempty"`
}

// handler runs one reaper pass. The trigger event is opaque and only logged.
func handler(ctx context.Context, event json.RawMessage) (*Response, error) {
	logger.WithFields(logrus.Fields{"event": string(event)}).Info("received event")

	cfg := LoadConfig()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var costService service.CostService
	if cfg.IncludeCosts {
		costService = awscostexplorer.NewService(awsCfg)
	}

	reaperService := reaper.NewService(
		reaper.Config{
			InstanceTagKey: cfg.InstanceTagKey,
			ClusterTagKey:  cfg.ClusterTagKey,
			Policy:         cfg.Policy,
		},
		awssts.NewService(awsCfg),
		awsec2.NewService(awsCfg),
		awscloudwatch.NewService(awsCfg),
		awsecs.NewService(awsCfg),
		awselb.NewService(awsCfg),
		awssns.NewService(awsCfg, cfg.TopicARN),
		costService,
	)

	report, err := reaperService.Reap(ctx)
	if err != nil {
		return nil, err
	}

	return convertReport(report), nil
}

func convertReport(report *model.ReapReport) *Response {
	response := &Response{
		IdleInstances:       report.IdleInstanceIDs(),
		StoppedClusters:     report.StoppedClusterNames(),
		NotificationSent:    report.Notification.Sent,
		NotificationSkipped: report.Notification.Skipped,
	}

	for _, lb := range report.UnusedLoadBalancers {
		response.UnusedLoadBalancers = append(response.UnusedLoadBalancers, lb.Name)
	}

	if report.Notification.Error != nil {
		response.NotificationError = report.Notification.Error.Error()
	}

	return response
}

func main() {
	logger.Setup("info", true)
	lambda.Start(handler)
}
