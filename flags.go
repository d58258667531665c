package main

import "flag"

var (
	// configPath is the yaml configuration file.
	configPath = flag.String("config", "config.yaml", "path to the yaml configuration")
	// mapPath overrides world.map_file from the configuration.
	mapPath = flag.String("map", "", "map file to load instead of the configured one")
	// cpuProfile writes a pprof CPU profile for the whole run when set.
	cpuProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
