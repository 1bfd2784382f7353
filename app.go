package main

import (
	"context"

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
	"github.com/elC0mpa/rios-reaper/service/flag"
	"github.com/elC0mpa/rios-reaper/service/reaper"
	"github.com/elC0mpa/rios-reaper/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	logger.Setup("info", false)
	utils.StartSpinner()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(context.Background(), flags.Region, flags.Profile)
	if err != nil {
		panic(err)
	}

	var costService service.CostService
	if flags.Costs {
		costService = awscostexplorer.NewService(awsCfg)
	}

	reaperService := reaper.NewService(
		reaper.Config{
			InstanceTagKey: flags.InstanceTagKey,
			ClusterTagKey:  flags.ClusterTagKey,
			Policy: model.IdlePolicy{
				PeriodSeconds: flags.PeriodSeconds,
				NumPeriods:    flags.NumPeriods,
				Threshold:     flags.IdleThreshold,
			},
		},
		awssts.NewService(awsCfg),
		awsec2.NewService(awsCfg),
		awscloudwatch.NewService(awsCfg),
		awsecs.NewService(awsCfg),
		awselb.NewService(awsCfg),
		awssns.NewService(awsCfg, flags.TopicARN),
		costService,
	)

	report, err := reaperService.Reap(context.Background())

	utils.StopSpinner()

	if err != nil {
		panic(err)
	}

	utils.DrawReapReport(report)
	utils.DrawUtilizationChart(report.IdleInstances, flags.IdleThreshold)
}
