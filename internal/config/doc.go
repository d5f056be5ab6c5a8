// Package config loads the settings of the notes server and the vault
// client. Environment variables, flags and an optional JSON file are merged
// in that order, each later source overriding non-zero fields. The merged
// result is checked and narrowed by [GetServerConfig] or [GetClientConfig].
package config
