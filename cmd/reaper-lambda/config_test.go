package main

import (
	"testing"

	"github.com/elC0mpa/rios-reaper/model"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("REAPER_INSTANCE_TAG_KEY", "")
	t.Setenv("REAPER_CLUSTER_TAG_KEY", "")
	t.Setenv("REAPER_TOPIC_ARN", "")
	t.Setenv("REAPER_PERIOD_SECONDS", "")
	t.Setenv("REAPER_NUM_PERIODS", "")
	t.Setenv("REAPER_IDLE_THRESHOLD", "")

	cfg := LoadConfig()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "RIOS-computeworkerinstance", cfg.InstanceTagKey)
	assert.Equal(t, "RIOS-cluster", cfg.ClusterTagKey)
	assert.Empty(t, cfg.TopicARN)
	assert.False(t, cfg.IncludeCosts)
	assert.Equal(t, model.DefaultIdlePolicy(), cfg.Policy)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("REAPER_INSTANCE_TAG_KEY", "team-worker")
	t.Setenv("REAPER_CLUSTER_TAG_KEY", "team-cluster")
	t.Setenv("REAPER_TOPIC_ARN", "arn:aws:sns:eu-west-1:123456789012:reaper")
	t.Setenv("REAPER_PERIOD_SECONDS", "1800")
	t.Setenv("REAPER_NUM_PERIODS", "24")
	t.Setenv("REAPER_IDLE_THRESHOLD", "2.5")
	t.Setenv("REAPER_INCLUDE_COSTS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "team-worker", cfg.InstanceTagKey)
	assert.Equal(t, "team-cluster", cfg.ClusterTagKey)
	assert.Equal(t, "arn:aws:sns:eu-west-1:123456789012:reaper", cfg.TopicARN)
	assert.True(t, cfg.IncludeCosts)
	assert.Equal(t, model.IdlePolicy{PeriodSeconds: 1800, NumPeriods: 24, Threshold: 2.5}, cfg.Policy)
}

func TestLoadConfigMalformedPolicyFallsBack(t *testing.T) {
	t.Setenv("REAPER_PERIOD_SECONDS", "an hour")
	t.Setenv("REAPER_NUM_PERIODS", "twelve")
	t.Setenv("REAPER_IDLE_THRESHOLD", "one percent")

	cfg := LoadConfig()

	assert.Equal(t, model.DefaultIdlePolicy(), cfg.Policy)
}
