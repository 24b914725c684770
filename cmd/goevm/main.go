// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lumenchain/goevm/evm"
	"github.com/lumenchain/goevm/evm/memhost"
	"github.com/lumenchain/goevm/vm"
)

func main() {
	app := &cli.App{
		Name:      "goevm",
		Usage:     "Run a single contract frame against an in-memory Host",
		Copyright: "(c) 2024",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "code",
				Usage:    "hex-encoded contract bytecode (0x-prefixed or bare)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "input",
				Usage: "hex-encoded calldata",
				Value: "",
			},
			&cli.Int64Flag{
				Name:  "gas",
				Usage: "gas limit for the run",
				Value: math.MaxInt64,
			},
			&cli.StringFlag{
				Name:  "revision",
				Usage: "one of Frontier..Cancun",
				Value: "Cancun",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log every executed instruction to stderr",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print instruction-sequence statistics after the run",
			},
			&cli.BoolFlag{
				Name:  "no-keccak-cache",
				Usage: "bypass the 32/64-byte Keccak-256 memoization cache",
			},
			&cli.IntFlag{
				Name:  "jumpdest-cache-size",
				Usage: "override the valid-JUMPDEST analysis cache capacity (negative disables it)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var revisionNames = map[string]vm.Revision{
	"Frontier": vm.Frontier, "Homestead": vm.Homestead,
	"TangerineWhistle": vm.TangerineWhistle, "SpuriousDragon": vm.SpuriousDragon,
	"Byzantium": vm.Byzantium, "Constantinople": vm.Constantinople,
	"Petersburg": vm.Petersburg, "Istanbul": vm.Istanbul,
	"Berlin": vm.Berlin, "London": vm.London, "Paris": vm.Paris,
	"Shanghai": vm.Shanghai, "Cancun": vm.Cancun,
}

func run(c *cli.Context) error {
	code, err := decodeHex(c.String("code"))
	if err != nil {
		return fmt.Errorf("invalid --code: %w", err)
	}
	input, err := decodeHex(c.String("input"))
	if err != nil {
		return fmt.Errorf("invalid --input: %w", err)
	}

	rev, ok := revisionNames[c.String("revision")]
	if !ok {
		return fmt.Errorf("unknown --revision %q", c.String("revision"))
	}

	host := memhost.New(vm.TransactionContext{Revision: rev, GasLimit: vm.Gas(c.Int64("gas"))})

	cfg := evm.Config{
		DisableKeccakCache: c.Bool("no-keccak-cache"),
		JumpdestCacheSize:  c.Int("jumpdest-cache-size"),
	}
	if c.Bool("trace") {
		cfg.Logger = os.Stderr
	}

	var tracer evm.Tracer
	var stats *evm.InstructionStatistics
	if c.Bool("stats") {
		stats = evm.NewInstructionStatistics()
		tracer = evm.CombineTracers(tracer, stats)
	}

	result, err := evm.RunWithConfig(vm.Parameters{
		Context: host,
		Code:    code,
		Gas:     vm.Gas(c.Int64("gas")),
		Input:   input,
	}, cfg, tracer)
	if err != nil {
		return err
	}

	fmt.Printf("success:    %v\n", result.Success)
	fmt.Printf("gas left:   %d\n", result.GasLeft)
	fmt.Printf("gas refund: %d\n", result.GasRefund)
	fmt.Printf("output:     0x%x\n", result.Output)
	for _, log := range host.Logs() {
		fmt.Printf("log: address=%v topics=%v data=0x%x\n", log.Address, log.Topics, log.Data)
	}

	if stats != nil {
		fmt.Print(stats.Summary())
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
