// Package config describes solver runs declaratively: which solver, which
// improvement strategy, which termination limits and which heuristic
// parameters.
//
// Sources are merged with priority env > file > defaults:
//
//	cfg, err := config.Load("solver.yaml") // LVSOLVE_LIMITS_TIME_LIMIT=30s overrides the file
//
// Parse decodes an in-memory YAML document on top of Default without
// consulting the environment. Both return a validated Config.
//
// Problem-typed parameters (the initial threshold of threshold accepting,
// the acceptance function of simulated annealing) cannot be expressed in a
// file and are supplied in code by the caller.
package config
