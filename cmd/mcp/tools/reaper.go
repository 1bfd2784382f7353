package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/rios-reaper/cmd/mcp/response"
	"github.com/elC0mpa/rios-reaper/model"
	awscloudwatch "github.com/elC0mpa/rios-reaper/service/aws/cloudwatch"
	awsconfig "github.com/elC0mpa/rios-reaper/service/aws/config"
	awscostexplorer "github.com/elC0mpa/rios-reaper/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/rios-reaper/service/aws/ec2"
	awsecs "github.com/elC0mpa/rios-reaper/service/aws/ecs"
	awselb "github.com/elC0mpa/rios-reaper/service/aws/elb"
	awssns "github.com/elC0mpa/rios-reaper/service/aws/sns"
	awssts "github.com/elC0mpa/rios-reaper/service/aws/sts"
	"github.com/elC0mpa/rios-reaper/service/reaper"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Options carries the environment configuration into the tool handlers
type Options struct {
	Region         string
	Profile        string
	InstanceTagKey string
	ClusterTagKey  string
	TopicARN       string
	Policy         model.IdlePolicy
}

// RegisterReaperTools registers all reaper tools with the MCP server
func RegisterReaperTools(s *server.MCPServer, opts Options) {
	s.AddTool(
		mcp.NewTool("reaper_run",
			mcp.WithDescription("Run a full reaper pass: find idle tagged instances, stopped tagged clusters and unused load balancers, and publish the summary notification"),
		),
		makeRunHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("reaper_find_idle_instances",
			mcp.WithDescription("List tagged EC2 instances whose average CPU stayed below the idle threshold for the whole observation window"),
		),
		makeIdleInstancesHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("reaper_find_stopped_clusters",
			mcp.WithDescription("List tagged ECS clusters with zero running tasks"),
		),
		makeStoppedClustersHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("reaper_find_unused_load_balancers",
			mcp.WithDescription("List application and network load balancers referenced by no target group"),
		),
		makeUnusedLoadBalancersHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("reaper_get_compute_costs",
			mcp.WithDescription("Get month-to-date EC2 and ECS spend for the account"),
		),
		makeComputeCostsHandler(opts),
	)
}

func makeRunHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		reaperService := reaper.NewService(
			reaper.Config{
				InstanceTagKey: opts.InstanceTagKey,
				ClusterTagKey:  opts.ClusterTagKey,
				Policy:         opts.Policy,
			},
			awssts.NewService(awsCfg),
			awsec2.NewService(awsCfg),
			awscloudwatch.NewService(awsCfg),
			awsecs.NewService(awsCfg),
			awselb.NewService(awsCfg),
			awssns.NewService(awsCfg, opts.TopicARN),
			nil,
		)

		report, err := reaperService.Reap(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Reaper pass failed: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertReport(report), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeIdleInstancesHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		inventorySvc := awsec2.NewService(awsCfg)
		metricsSvc := awscloudwatch.NewService(awsCfg)

		instanceIds, err := inventorySvc.FindInstancesByTag(ctx, opts.InstanceTagKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list instances: %v", err)), nil
		}

		idle := []response.IdleInstance{}
		for _, instanceID := range instanceIds {
			samples, err := metricsSvc.GetAverageCPUUtilization(ctx, instanceID, opts.Policy)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to sample %s: %v", instanceID, err)), nil
			}

			if reaper.IsIdle(samples, opts.Policy.NumPeriods, opts.Policy.Threshold) {
				idle = append(idle, response.IdleInstance{
					InstanceID:      instanceID,
					PeakUtilization: reaper.PeakUtilization(samples),
					SampleCount:     len(samples),
				})
			}
		}

		data, _ := json.MarshalIndent(idle, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeStoppedClustersHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		clusters, err := awsecs.NewService(awsCfg).FindStoppedClusters(ctx, opts.ClusterTagKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to find stopped clusters: %v", err)), nil
		}

		result := []response.StoppedCluster{}
		for _, cluster := range clusters {
			result = append(result, response.StoppedCluster{Name: cluster.Name, ARN: cluster.ARN})
		}

		data, _ := json.MarshalIndent(result, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeUnusedLoadBalancersHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		loadBalancers, err := awselb.NewService(awsCfg).FindUnusedLoadBalancers(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to find unused load balancers: %v", err)), nil
		}

		result := []response.UnusedLoadBalancer{}
		for _, lb := range loadBalancers {
			result = append(result, response.UnusedLoadBalancer{Name: lb.Name, ARN: lb.ARN, Type: lb.Type})
		}

		data, _ := json.MarshalIndent(result, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeComputeCostsHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		costs, err := awscostexplorer.NewService(awsCfg).GetCurrentMonthComputeCosts(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get compute costs: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertCosts(costs), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
