// Package config manages the installer's own settings file
// (~/.hayride/installer.yaml) through Viper: the release mirror and model
// overrides. Platform runtime configuration is separate and lives in
// package runtimeconfig.
package config
