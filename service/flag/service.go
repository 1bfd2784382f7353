package flag

import (
	"flag"

	"github.com/elC0mpa/rios-reaper/model"
)

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")
	instanceTag := flag.String("instance-tag", model.DefaultInstanceTagKey, "Tag key marking reapable compute instances")
	clusterTag := flag.String("cluster-tag", model.DefaultClusterTagKey, "Tag key marking reapable container clusters")
	period := flag.Int("period", model.DefaultPeriodSeconds, "Utilization period length in seconds")
	periods := flag.Int("periods", model.DefaultNumPeriods, "Number of utilization periods in the observation window")
	threshold := flag.Float64("threshold", model.DefaultIdleThreshold, "Average CPU percentage below which a period counts as idle")
	topicARN := flag.String("topic-arn", "", "SNS topic to notify (empty skips delivery)")
	costs := flag.Bool("costs", false, "Include current month compute costs in the report")

	flag.Parse()

	return model.Flags{
		Region:         *region,
		Profile:        *profile,
		InstanceTagKey: *instanceTag,
		ClusterTagKey:  *clusterTag,
		PeriodSeconds:  *period,
		NumPeriods:     *periods,
		IdleThreshold:  *threshold,
		TopicARN:       *topicARN,
		Costs:          *costs,
	}, nil
}
