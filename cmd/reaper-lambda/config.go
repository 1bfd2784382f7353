package main

import (
	"os"
	"strconv"

	"github.com/elC0mpa/rios-reaper/model"
)

// Config holds environment-based configuration for the Lambda entry point
type Config struct {
	Region         string
	Profile        string
	InstanceTagKey string
	ClusterTagKey  string
	TopicARN       string
	IncludeCosts   bool
	Policy         model.IdlePolicy
}

// LoadConfig reads configuration from environment variables, falling back to
// the default policy on missing or malformed values
func LoadConfig() *Config {
	return &Config{
		Region:         getEnvOrDefault("AWS_REGION", "us-east-1"),
		Profile:        os.Getenv("AWS_PROFILE"),
		InstanceTagKey: getEnvOrDefault("REAPER_INSTANCE_TAG_KEY", model.DefaultInstanceTagKey),
		ClusterTagKey:  getEnvOrDefault("REAPER_CLUSTER_TAG_KEY", model.DefaultClusterTagKey),
		TopicARN:       os.Getenv("REAPER_TOPIC_ARN"),
		IncludeCosts:   getEnvBool("REAPER_INCLUDE_COSTS"),
		Policy: model.IdlePolicy{
			PeriodSeconds: getEnvInt("REAPER_PERIOD_SECONDS", model.DefaultPeriodSeconds),
			NumPeriods:    getEnvInt("REAPER_NUM_PERIODS", model.DefaultNumPeriods),
			Threshold:     getEnvFloat("REAPER_IDLE_THRESHOLD", model.DefaultIdleThreshold),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return value
}
