// Package config loads runtime configuration for the ProvaFácil CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-f string   credential file path
//	-k string   encryption key file path
//	-d string   download directory for exported PDFs
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.provafacil.app/api",
//	  "request_timeout": "30s",
//	  "token_file": "/home/me/.provafacil/tokens.bin",
//	  "key_file": "/home/me/.provafacil/storage.key",
//	  "download_dir": "/home/me/Documents/worksheets"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
