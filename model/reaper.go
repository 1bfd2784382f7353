package model

// Default idle detection policy: twelve hourly periods below 1% average CPU.
const (
	DefaultPeriodSeconds = 3600
	DefaultNumPeriods    = 12
	DefaultIdleThreshold = 1.0

	DefaultInstanceTagKey = "RIOS-computeworkerinstance"
	DefaultClusterTagKey  = "RIOS-cluster"
)

// IdlePolicy holds the parameters of the idle detection policy
type IdlePolicy struct {
	PeriodSeconds int
	NumPeriods    int
	Threshold     float64
}

func DefaultIdlePolicy() IdlePolicy {
	return IdlePolicy{
		PeriodSeconds: DefaultPeriodSeconds,
		NumPeriods:    DefaultNumPeriods,
		Threshold:     DefaultIdleThreshold,
	}
}

// NotificationResult reports what happened to the summary delivery,
// separately from the classification result
type NotificationResult struct {
	Sent    bool
	Skipped bool
	Error   error
}

// ReapReport is the structured result of a single reaper pass
type ReapReport struct {
	Account             *AccountInfo
	IdleInstances       []IdleInstance
	StoppedClusters     []StoppedCluster
	UnusedLoadBalancers []UnusedLoadBalancer
	ComputeCosts        *CostInfo
	Notification        NotificationResult
}

// IdleInstanceIDs returns the identifiers of all idle instances in report order
func (r *ReapReport) IdleInstanceIDs() []string {
	ids := make([]string, 0, len(r.IdleInstances))
	for _, instance := range r.IdleInstances {
		ids = append(ids, instance.InstanceID)
	}
	return ids
}

// StoppedClusterNames returns the names of all stopped clusters in report order
func (r *ReapReport) StoppedClusterNames() []string {
	names := make([]string, 0, len(r.StoppedClusters))
	for _, cluster := range r.StoppedClusters {
		names = append(names, cluster.Name)
	}
	return names
}
