// Package config provides configuration loading, merging, and validation
// facilities for the telemetry client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry point is [GetClientConfig], which merges all sources,
// applies defaults, and fails fast on any invalid session, encryption, or
// polling parameter so that a misconfigured client never reaches the master.
package config
