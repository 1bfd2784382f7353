package response

// IdleInstance represents an idle compute instance verdict
type IdleInstance struct {
	InstanceID      string  `json:"instance_id"`
	PeakUtilization float64 `json:"peak_utilization"`
	SampleCount     int     `json:"sample_count"`
}

// StoppedCluster represents a tagged cluster with zero running tasks
type StoppedCluster struct {
	Name string `json:"name"`
	ARN  string `json:"arn"`
}

// UnusedLoadBalancer represents a load balancer with no target groups
type UnusedLoadBalancer struct {
	Name string `json:"name"`
	ARN  string `json:"arn"`
	Type string `json:"type"`
}

// Notification reports delivery status separately from classification
type Notification struct {
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// ServiceCost represents month-to-date cost for a single service
type ServiceCost struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ComputeCosts represents compute spend for the current month
type ComputeCosts struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Services  []ServiceCost `json:"services"`
	Total     float64       `json:"total"`
}

// ReapReport is the full result of a reaper pass
type ReapReport struct {
	AccountID           string               `json:"account_id,omitempty"`
	IdleInstances       []IdleInstance       `json:"idle_instances"`
	StoppedClusters     []StoppedCluster     `json:"stopped_clusters"`
	UnusedLoadBalancers []UnusedLoadBalancer `json:"unused_load_balancers"`
	Notification        Notification         `json:"notification"`
	Message             string               `json:"message"`
}
