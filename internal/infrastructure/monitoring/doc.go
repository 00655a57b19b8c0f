/*
Package monitoring provides metrics collection for the game runtime.

# Overview

This package implements Prometheus-based metrics on a private registry,
tracking lifecycle transitions, progress saves and loads, platform results,
frame timing and the debug HTTP surface.

# Features

- State transition counts and Enter durations
- Save counts, sizes and load outcomes
- Purchase and rewarded video results
- Frame counts and durations
- Registered service count and uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "bootstrap")
	defer timer.Stop("ok")

A nil *Metrics is accepted everywhere and records nothing.
*/
package monitoring
