// Package config wires viper-backed configuration for the hippotools CLI:
// an optional YAML config file, HIPPOTOOLS_* environment overrides, and
// defaults for the solver parameters.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Keys recognized in the config file and environment.
const (
	KeyEpsilon   = "epsilon"
	KeyThreshold = "threshold"
	KeyObjTol    = "obj-tol"
	KeyFraction  = "fraction"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log-level"
)

// Load initializes viper: defaults first, then the config file when given,
// then HIPPOTOOLS_* environment variables. A missing config file is not an
// error; an unreadable or malformed one is.
func Load(configFile string) error {
	viper.SetDefault(KeyEpsilon, 1e-2)
	viper.SetDefault(KeyThreshold, 1e-5)
	viper.SetDefault(KeyObjTol, 1e-2)
	viper.SetDefault(KeyFraction, 1.0)
	viper.SetDefault(KeyWorkers, 0)
	viper.SetDefault(KeyLogLevel, "info")

	viper.SetEnvPrefix("hippotools")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	return viper.ReadInConfig()
}

// Epsilon returns the iMAT activation threshold.
func Epsilon() float64 { return viper.GetFloat64(KeyEpsilon) }

// Threshold returns the iMAT activity threshold.
func Threshold() float64 { return viper.GetFloat64(KeyThreshold) }

// ObjTol returns the relative optimality tolerance.
func ObjTol() float64 { return viper.GetFloat64(KeyObjTol) }

// Fraction returns the FVA fraction of optimum.
func Fraction() float64 { return viper.GetFloat64(KeyFraction) }

// Workers returns the worker pool size; 0 means pick automatically.
func Workers() int { return viper.GetInt(KeyWorkers) }

// LogLevel returns the zerolog level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }
