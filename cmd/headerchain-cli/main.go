// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/core/headerchain/corelog"
	"gitlab.com/jaxnet/core/headerchain/node/chaindb"
	"gitlab.com/jaxnet/core/headerchain/node/chainindex"
	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/pow"
)

func main() {
	app := &App{}
	cliApp := &cli.App{
		Name:   "headerchain-cli",
		Usage:  "inspect a persistent chain index",
		Flags:  app.InitFlags(),
		Before: app.InitCfg,
		After:  app.CloseDB,
		Commands: []*cli.Command{
			{
				Name:   "tip",
				Usage:  "print the current best entry",
				Action: app.TipCmd,
			},
			{
				Name:   "entry",
				Usage:  "print an entry by hash or by main-chain height",
				Flags:  app.EntryFlags(),
				Action: app.EntryCmd,
			},
			{
				Name:   "median-time",
				Usage:  "print the median time past of an entry",
				Flags:  app.EntryFlags(),
				Action: app.MedianTimeCmd,
			},
			{
				Name:   "verify-work",
				Usage:  "check chainwork accumulation and linkage over a height range",
				Flags:  app.VerifyWorkFlags(),
				Action: app.VerifyWorkCmd,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	config Config
	params *chaincfg.Params
	db     *chaindb.ChainDB
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "./config.yaml",
			Usage:   "path to configuration",
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			EnvVars: []string{"HEADERCHAIN_DATA_DIR"},
			Usage:   "path to data directory, will override value from config file",
		},
		&cli.StringFlag{
			Name:    "net",
			Aliases: []string{"n"},
			EnvVars: []string{"HEADERCHAIN_NET"},
			Usage:   "network name: [mainnet|testnet3|simnet], will override value from config file",
		},
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	var err error
	if _, statErr := os.Stat(c.String("config")); statErr == nil || c.IsSet("config") {
		app.config, err = parseConfig(c.String("config"))
		if err != nil {
			return cli.Exit(err, 1)
		}
	} else {
		app.config = Config{Net: "mainnet", Logging: corelog.Config{}.Default()}
	}

	if dataDir := c.String("data-dir"); dataDir != "" {
		app.config.DataDir = dataDir
	}
	if net := c.String("net"); net != "" {
		app.config.Net = net
	}

	app.params, err = app.config.NetParams()
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "%q", app.config.Net), 1)
	}

	logger := corelog.New("CHDB", zerolog.InfoLevel, app.config.Logging)
	chaindb.UseLogger(logger)

	app.db, err = chaindb.Open(path.Join(app.config.DataDir, app.config.Net, "headers"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "unable to open chain index"), 1)
	}
	return nil
}

func (app *App) CloseDB(*cli.Context) error {
	if app.db == nil {
		return nil
	}
	return app.db.Close()
}

func (app *App) EntryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "hash",
			Aliases: []string{"x"},
			Usage:   "block hash of the entry",
		},
		&cli.Int64Flag{
			Name:    "height",
			Aliases: []string{"g"},
			Value:   -1,
			Usage:   "main-chain height of the entry",
		},
	}
}

func (app *App) TipCmd(c *cli.Context) error {
	tip := app.db.Tip()
	if tip == nil {
		return cli.Exit("chain index is empty", 1)
	}
	return printEntry(tip)
}

func (app *App) EntryCmd(c *cli.Context) error {
	entry, err := app.resolveEntry(c)
	if err != nil {
		return err
	}
	return printEntry(entry)
}

func (app *App) MedianTimeCmd(c *cli.Context) error {
	entry, err := app.resolveEntry(c)
	if err != nil {
		return err
	}

	median, err := entry.MedianTime(c.Context, app.db)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "unable to walk ancestors"), 1)
	}

	fmt.Printf("height=%d time=%d medianTime=%d (%s)\n",
		entry.Height(), entry.Timestamp(), median.Unix(), median.UTC())
	return nil
}

func (app *App) VerifyWorkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:    "from",
			Aliases: []string{"f"},
			Value:   0,
			Usage:   "first height of the range",
		},
		&cli.Int64Flag{
			Name:     "to",
			Aliases:  []string{"t"},
			Usage:    "last height of the range",
			Required: true,
		},
	}
}

// VerifyWorkCmd re-derives the chainwork of every main-chain entry in
// [from, to] from its parent and reports the first mismatch, checking the
// prev-hash linkage along the way.
func (app *App) VerifyWorkCmd(c *cli.Context) error {
	from := int32(c.Int64("from"))
	to := int32(c.Int64("to"))
	if from < 0 || to < from {
		return cli.Exit("invalid height range", 1)
	}

	ctx := c.Context
	prev, err := app.entryAtHeight(ctx, from)
	if err != nil {
		return err
	}
	if from == 0 && prev.Hash() != *app.params.GenesisHash {
		return cli.Exit(fmt.Sprintf("entry at height 0 is not the %s genesis",
			app.params.Name), 1)
	}

	for height := from + 1; height <= to; height++ {
		entry, err := app.entryAtHeight(ctx, height)
		if err != nil {
			return err
		}
		if entry.PrevHash() != prev.Hash() {
			return cli.Exit(fmt.Sprintf("broken linkage at height %d", height), 1)
		}

		want := new(big.Int).Add(prev.WorkSum(), pow.CalcWork(entry.Bits()))
		if entry.WorkSum().Cmp(want) != 0 {
			return cli.Exit(fmt.Sprintf(
				"chainwork mismatch at height %d: have %064x, want %064x",
				height, entry.WorkSum(), want), 1)
		}
		prev = entry
	}

	fmt.Printf("chainwork consistent over heights [%d, %d], tip work %064x\n",
		from, to, prev.WorkSum())
	return nil
}

func (app *App) resolveEntry(c *cli.Context) (*chainindex.ChainEntry, error) {
	ctx := c.Context

	if hashStr := c.String("hash"); hashStr != "" {
		hash, err := chainhash.NewHashFromStr(hashStr)
		if err != nil {
			return nil, cli.Exit(errors.Wrap(err, "invalid hash"), 1)
		}
		entry, err := app.db.EntryByHash(ctx, *hash)
		if err != nil {
			return nil, cli.Exit(err, 1)
		}
		if entry == nil {
			return nil, cli.Exit(fmt.Sprintf("no entry with hash %s", hash), 1)
		}
		return entry, nil
	}

	if height := c.Int64("height"); height >= 0 {
		return app.entryAtHeight(ctx, int32(height))
	}

	tip := app.db.Tip()
	if tip == nil {
		return nil, cli.Exit("chain index is empty", 1)
	}
	return tip, nil
}

func (app *App) entryAtHeight(ctx context.Context, height int32) (*chainindex.ChainEntry, error) {
	entry, err := app.db.EntryByHeight(ctx, height)
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	if entry == nil {
		return nil, cli.Exit(fmt.Sprintf("no main-chain entry at height %d", height), 1)
	}
	return entry, nil
}

func printEntry(entry *chainindex.ChainEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Println(string(data))
	return nil
}
