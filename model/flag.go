package model

type Flags struct {
	// AWS-specific flags
	Region  string
	Profile string

	// Tag filters
	InstanceTagKey string
	ClusterTagKey  string

	// Idle detection policy
	PeriodSeconds int
	NumPeriods    int
	IdleThreshold float64

	// Notification / report flags
	TopicARN string
	Costs    bool
}
