// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package main

import (
	"github.com/farshidtz/elog"
	"github.com/pbxkit/ari-apps/common"
)

const (
	EnvVerbose = "VERBOSE" // print file name and line number of log calls
)

var logger *elog.Logger

func init() {
	var conf *elog.Config
	if common.EvalEnv(EnvVerbose) {
		conf = &elog.Config{Trace: elog.ShortFile}
	}
	logger = elog.New("[ari-sim] ", conf)
}
