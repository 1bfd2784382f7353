package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/rios-reaper/cmd/mcp/tools"
	"github.com/elC0mpa/rios-reaper/logger"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	logger.Setup("info", true)
	logger.SetOutput(os.Stderr)

	cfg := LoadConfig()

	s := server.NewMCPServer(
		"rios-reaper-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterReaperTools(s, tools.Options{
		Region:         cfg.Region,
		Profile:        cfg.Profile,
		InstanceTagKey: cfg.InstanceTagKey,
		ClusterTagKey:  cfg.ClusterTagKey,
		TopicARN:       cfg.TopicARN,
		Policy:         cfg.Policy,
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
