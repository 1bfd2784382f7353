package reaper

import "strings"

const (
	noIdleInstancesLine   = "No Idle Instances detected"
	idleInstancesPrefix   = "The following idle instances were found: "
	noStoppedClustersLine = "No Stopped Clusters found"
	stoppedClustersPrefix = "The following stopped clusters were found: "
	unusedLBPrefix        = "The following unused load balancers were found: "
)

// BuildMessage builds the human-readable notification summary. The idle
// instance and stopped cluster lines are always present; the load balancer
// line is appended only when there is something to report.
func BuildMessage(idleInstanceIDs, stoppedClusterNames, unusedLoadBalancerNames []string) string {
	var b strings.Builder

	if len(idleInstanceIDs) == 0 {
		b.WriteString(noIdleInstancesLine)
	} else {
		b.WriteString(idleInstancesPrefix)
		b.WriteString(strings.Join(idleInstanceIDs, ","))
	}
	b.WriteString("\n")

	if len(stoppedClusterNames) == 0 {
		b.WriteString(noStoppedClustersLine)
	} else {
		b.WriteString(stoppedClustersPrefix)
		b.WriteString(strings.Join(stoppedClusterNames, ","))
	}

	if len(unusedLoadBalancerNames) > 0 {
		b.WriteString("\n")
		b.WriteString(unusedLBPrefix)
		b.WriteString(strings.Join(unusedLoadBalancerNames, ","))
	}

	return b.String()
}
