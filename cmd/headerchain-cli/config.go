// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/core/headerchain/corelog"
	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir string         `yaml:"data_dir"`
	Net     string         `yaml:"net"`
	Logging corelog.Config `yaml:"logging"`
}

func (cfg *Config) NetParams() (*chaincfg.Params, error) {
	return chaincfg.NetParams(cfg.Net)
}

func parseConfig(path string) (Config, error) {
	cfg := Config{
		Net:     "mainnet",
		Logging: corelog.Config{}.Default(),
	}

	rawFile, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to read configuration")
	}
	if err = yaml.Unmarshal(rawFile, &cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to decode configuration")
	}
	return cfg, nil
}
