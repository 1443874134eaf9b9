// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/talusnet/talusd/chainutil"
)

const (
	defaultConfigFilename = "talusd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "talusd.log"
	defaultDbType         = "leveldb"
)

var (
	defaultHomeDir    = chainutil.AppDataDir("talusd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for talusd, populated from
// talusd.conf and the command line, in that order, with CLI flags winning.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DbType      string `long:"dbtype" description:"Database backend to use for the block chain (leveldb or memdb)"`
	Listeners   []string `long:"listen" description:"Add an interface/port to listen for connections (default all interfaces port 8333, testnet3: 18333)"`
	TestNet3    bool   `long:"testnet" description:"Use the test network (version 3)"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`
	SimNet      bool   `long:"simnet" description:"Use the simulation test network"`
	TxIndex     bool   `long:"txindex" description:"Maintain a full hash-based transaction index which makes all transactions available via the getrawtransaction RPC"`
	MaxPeers    int    `long:"maxpeers" description:"Max number of inbound and outbound peers"`
	Profile     string `long:"profile" description:"Enable HTTP profiling on given port -- Must be 1024-65535"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir := filepath.Dir(defaultHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig reads flags and an optional config file into a config,
// establishing defaults for anything left unset, and returns the resolved
// config along with leftover non-flag arguments.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DbType:     defaultDbType,
		MaxPeers:   125,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ConfigFile != defaultConfigFile {
		cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	numNets := 0
	if cfg.TestNet3 {
		activeNetParams = &testNet3Params
		numNets++
	}
	if cfg.RegressionTest {
		activeNetParams = &regressionNetParams
		numNets++
	}
	if cfg.SimNet {
		activeNetParams = &simNetParams
		numNets++
	}
	if numNets > 1 {
		return nil, nil, fmt.Errorf("only one of --testnet, --regtest, or --simnet may be specified")
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.DataDir = filepath.Join(cfg.DataDir, netName(activeNetParams))
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, netName(activeNetParams))

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &cfg, remainingArgs, nil
}
