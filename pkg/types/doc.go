// Package types defines the core types and interfaces used throughout packsmith.
// This includes the Pack Config record written by the provisioner, the
// filesystem abstraction, and the result structures returned by commands.
package types
