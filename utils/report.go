package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/rios-reaper/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawReapReport renders the result of a reaper pass as tables
func DrawReapReport(report *model.ReapReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💀 RIOS REAPER REPORT"))
	if report.Account != nil {
		fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(report.Account.AccountID))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawIdleInstancesTable(report.IdleInstances)
	drawStoppedClustersTable(report.StoppedClusters)

	if len(report.UnusedLoadBalancers) > 0 {
		drawUnusedLoadBalancersTable(report.UnusedLoadBalancers)
	}

	if report.ComputeCosts != nil {
		drawComputeCostsTable(report.ComputeCosts)
	}

	drawNotificationStatus(report.Notification)
}

func drawIdleInstancesTable(instances []model.IdleInstance) {
	if len(instances) == 0 {
		fmt.Printf("\n %s\n", text.FgGreen.Sprint("No idle instances detected"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Idle Instances")
	tw.AppendHeader(table.Row{"Instance ID", "Peak CPU %", "Samples"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for _, instance := range instances {
		tw.AppendRow(table.Row{
			instance.InstanceID,
			fmt.Sprintf("%.2f", instance.PeakUtilization),
			instance.SampleCount,
		})
	}

	tw.Render()
}

func drawStoppedClustersTable(clusters []model.StoppedCluster) {
	if len(clusters) == 0 {
		fmt.Printf("\n %s\n", text.FgGreen.Sprint("No stopped clusters found"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Stopped Clusters")
	tw.AppendHeader(table.Row{"Cluster", "ARN"})
	tw.SetStyle(table.StyleRounded)

	for _, cluster := range clusters {
		tw.AppendRow(table.Row{cluster.Name, cluster.ARN})
	}

	tw.Render()
}

func drawUnusedLoadBalancersTable(loadBalancers []model.UnusedLoadBalancer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Unused Load Balancers")
	tw.AppendHeader(table.Row{"Name", "Type", "ARN"})
	tw.SetStyle(table.StyleRounded)

	for _, lb := range loadBalancers {
		tw.AppendRow(table.Row{lb.Name, lb.Type, lb.ARN})
	}

	tw.Render()
}

func drawComputeCostsTable(costs *model.CostInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Compute Costs (month to date)")
	tw.AppendHeader(table.Row{"Service", "Cost"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	var total float64
	var unit string

	for name, cost := range costs.CostGroup {
		tw.AppendRow(table.Row{name, fmt.Sprintf("%.2f %s", cost.Amount, cost.Unit)})
		total += cost.Amount
		if unit == "" {
			unit = cost.Unit
		}
	}

	tw.AppendFooter(table.Row{"Total", fmt.Sprintf("%.2f %s", total, unit)})
	tw.Render()
}

func drawNotificationStatus(result model.NotificationResult) {
	switch {
	case result.Sent:
		fmt.Printf("\n %s\n", text.FgGreen.Sprint("Notification delivered"))
	case result.Skipped:
		fmt.Printf("\n %s\n", text.FgYellow.Sprint("Notification skipped (no channel configured)"))
	case result.Error != nil:
		fmt.Printf("\n %s %s\n", text.FgHiRed.Sprint("Notification failed:"), text.FgRed.Sprint(result.Error.Error()))
	}
}
