// Package config loads the stepviz TOML configuration.
//
// A configuration file has four sections:
//
//	[server]
//	addr = "localhost:8080"
//	cors_origins = ["*"]
//	codec = "json"
//
//	[playback]
//	interval = "500ms"      # not below min_interval
//	min_interval = "10ms"
//	history_limit = 4096
//
//	[graph]
//	topology = "random"
//	nodes = 10
//	seed = 1
//	algorithm = "bfs"
//	start = 0
//	end = -1
//
//	[logging]
//	logfile = "/var/log/stepviz.log"
//	max_log_size = 100
//	max_log_age = 30
//	level = "info"
//
// Missing keys keep the values of Default. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
package config
