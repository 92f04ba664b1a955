package config

// ErrMsgInvalidConfig prefixes configuration validation failures
const ErrMsgInvalidConfig = "invalid configuration"
