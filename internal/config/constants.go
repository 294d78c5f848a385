package config

import "time"

// Base application details
const AppName = "least"
const ConfigDirName = "least"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "least.log"

// Hard limits carried from the original pager.
const (
	MaxLines          = 100000
	MaxLineLength     = 2048
	MaxBuffers        = 100
	CommandBufferSize = 256
	SearchBufferSize  = 256
)

// Display geometry
const TabStop = 8
const MinWrapWidth = 2
const FooterHeight = 2
const GutterWidth = 5 // "%4d " line-number prefix

// Status bar
const FlashTimeout = 1 * time.Second
