package model

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// IdleInstance represents a compute instance whose utilization stayed below
// the idle threshold for every period in a complete observation window
type IdleInstance struct {
	InstanceID      string
	PeakUtilization float64
	SampleCount     int
}

// StoppedCluster represents a tagged container cluster with zero running tasks
type StoppedCluster struct {
	Name string
	ARN  string
}

// UnusedLoadBalancer represents a load balancer referenced by no target group
type UnusedLoadBalancer struct {
	Name string
	ARN  string
	Type string // "application", "network"
}
