// This file is part of triliteral - https://github.com/ecatmur/triliteral
//
// Copyright 2026 The triliteral Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ecatmur/triliteral/asm"
	"github.com/ecatmur/triliteral/lang/trl"
	"github.com/ecatmur/triliteral/script"
	"github.com/ecatmur/triliteral/vm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type tableName struct{ t *script.Table }

func (n *tableName) String() string {
	if n.t == nil {
		return ""
	}
	return n.t.Name
}

func (n *tableName) Set(s string) error {
	t, ok := script.ByName(s)
	if !ok {
		return errors.Errorf("unknown letter table %q", s)
	}
	n.t = t
	return nil
}

func (n *tableName) Get() interface{} { return n.t }

var (
	trace     = envOr(strconv.ParseBool, "TRILITERAL_TRACE", false)
	rawIO     = envOr(strconv.ParseBool, "TRILITERAL_RAW", false)
	serialize = envOr(strconv.ParseBool, "TRILITERAL_SERIALIZE", false)
	width     = envOr(strconv.Atoi, "TRILITERAL_WIDTH", 72)
	dump      bool
	list      bool
	assemble  bool
	recode    tableName
)

// envOr returns the parsed value of the environment variable key, or def if
// it is not set. Unlike enve.Or, a malformed value is fatal.
func envOr[T any](parse func(string) (T, error), key string, def T) T {
	if _, ok := os.LookupEnv(key); !ok {
		return def
	}
	v, err := enve.Lookup(parse, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", key, err)
		os.Exit(2)
	}
	return v
}

func setupLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	level := zapcore.WarnLevel
	if trace {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		level,
	)).With(zap.String("run", uuid.NewString()))
}

func load(name string) (*script.Table, []string, error) {
	if assemble {
		return trl.Assemble(name)
	}
	return trl.Open(name)
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !trace {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "Instructions: %d\n", i.InstructionCount())
		i.Dump(os.Stderr)
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	flag.BoolVar(&trace, "trace", trace, "log every executed word to stderr and print stack traces on failure")
	flag.BoolVar(&dump, "dump", false, "dump the storage space to stdout upon exit")
	flag.BoolVar(&list, "list", false, "list the program words with their mnemonics instead of running it")
	flag.BoolVar(&assemble, "asm", false, "load the program in assembler syntax")
	flag.BoolVar(&rawIO, "raw", rawIO, "switch the terminal to raw mode while running")
	flag.BoolVar(&serialize, "serialize", serialize, "execute one word at a time across all threads")
	flag.Var(&recode, "recode", "write the program with the letter table `name` instead of running it")
	flag.IntVar(&width, "width", width, "maximum line length of recoded programs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	t, prog, err := load(name)
	if err != nil {
		return
	}

	switch {
	case recode.t != nil:
		var out string
		if out, err = trl.Export(name, prog, t, recode.t, width); err == nil {
			fmt.Fprintln(stdout, out)
		}
		return
	case list:
		err = asm.DisassembleAll(t, prog, stdout)
		return
	}

	logger := setupLogger()
	defer logger.Sync()

	var in io.Reader = os.Stdin
	if rawIO {
		var tearDown func()
		if tearDown, err = setRawIO(); err != nil {
			logger.Warn("raw terminal IO disabled", zap.Error(err))
			err = nil
		} else {
			defer tearDown()
			in = eotReader{os.Stdin}
		}
	}

	opts := []vm.Option{
		vm.Input(in),
		vm.Output(stdout),
		vm.Logger(logger.With(zap.String("program", name))),
	}
	if serialize {
		opts = append(opts, vm.WithSpace(vm.NewSerializedSpace()))
	}

	if i, err = vm.New(t, prog, opts...); err != nil {
		return
	}
	if err = i.Run(); err == nil && dump {
		stdout.Flush()
		err = i.Dump(stdout)
	}
}
