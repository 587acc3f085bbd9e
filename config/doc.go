// Package config loads the settings a Logger is initialized with.
//
// Load layers built-in defaults, an optional YAML file and THREADLOG_*
// environment variables using koanf:
//
//	folder: logs
//	filename: worker.log
//	console_level: info
//	file_level: debug
//
// THREADLOG_FILE_LEVEL=verbose overrides file_level, and so on for every
// key. Level names are validated when the configuration is loaded.
package config
