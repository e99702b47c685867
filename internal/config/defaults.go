package config

import "time"

// DefaultConfigName is the file looked up in the working directory.
const DefaultConfigName = "pbar.yaml"

// Bar defaults
const (
	DefaultBarMark        = "o"
	DefaultMinTitleWidth  = 14
	DefaultRedrawInterval = time.Second
	DefaultDisplayWidth   = 80
)

// Demo defaults
const (
	DefaultDemoTotal = 100
	DefaultDemoDelay = 50 * time.Millisecond
)

// Copy defaults
const (
	DefaultCopyBufferSize = 32 * 1024
)
