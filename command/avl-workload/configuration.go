// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ranktree/configuration"
	"github.com/bitmark-inc/ranktree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-workload.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed           = 1
	defaultInserts        = 10000
	defaultDeletes        = 5000
	defaultKeyRange       = 100000
	defaultListInserts    = 1000
	defaultListDeletes    = 500
	defaultReportInterval = 10 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - what the run will do
type WorkloadType struct {
	Seed                int64   `gluamapper:"seed" json:"seed"`
	Inserts             int     `gluamapper:"inserts" json:"inserts"`
	Deletes             int     `gluamapper:"deletes" json:"deletes"`
	KeyRange            int     `gluamapper:"key_range" json:"key_range"`
	ListInserts         int     `gluamapper:"list_inserts" json:"list_inserts"`
	ListDeletes         int     `gluamapper:"list_deletes" json:"list_deletes"`
	Verify              bool    `gluamapper:"verify" json:"verify"`
	OperationsPerSecond float64 `gluamapper:"operations_per_second" json:"operations_per_second"`
	Burst               int     `gluamapper:"burst" json:"burst"`
	ReportInterval      int     `gluamapper:"report_interval" json:"report_interval"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, globals map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Workload: WorkloadType{
			Seed:           defaultSeed,
			Inserts:        defaultInserts,
			Deletes:        defaultDeletes,
			KeyRange:       defaultKeyRange,
			ListInserts:    defaultListInserts,
			ListDeletes:    defaultListDeletes,
			Verify:         false,
			ReportInterval: defaultReportInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFileWithGlobals(configurationFileName, globals, options); err != nil {
		return nil, err
	}

	if err := options.Workload.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.EnsureDirectory(options.DataDirectory) {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not contain path separator
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f)
		}
	}

	// create the log directory if it does not exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// reject impossible workloads
func (w *WorkloadType) validate() error {
	if w.Inserts < 0 || w.Deletes < 0 || w.ListInserts < 0 || w.ListDeletes < 0 {
		return fmt.Errorf("workload: operation counts must not be negative")
	}
	if w.KeyRange <= 0 || w.KeyRange > 1<<31-1 {
		return fmt.Errorf("workload: key_range: %d is out of range", w.KeyRange)
	}
	if w.OperationsPerSecond < 0 {
		return fmt.Errorf("workload: operations_per_second: %g is negative", w.OperationsPerSecond)
	}
	if w.ReportInterval <= 0 {
		w.ReportInterval = defaultReportInterval
	}
	return nil
}
