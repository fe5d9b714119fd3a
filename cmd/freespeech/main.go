// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/moparisthebest/freespeech/cnf"
	"github.com/moparisthebest/freespeech/library"
)

var (
	version   string
	build     string
	gitCommit string
)

type commonFlags struct {
	confPath *string
	verbose  *bool
}

func addCommonFlags(fset *flag.FlagSet) commonFlags {
	return commonFlags{
		confPath: fset.String("conf", "", "a path to a JSON configuration file"),
		verbose:  fset.Bool("verbose", false, "log debug information"),
	}
}

func setupLogging(conf *cnf.FSConf, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose || conf.Verbosity > 0 {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadConfig loads a configuration file (if provided) and replaces
// its word list sources with the ones specified as arguments.
func loadConfig(cf commonFlags, wordLists []string) *cnf.FSConf {
	var conf *cnf.FSConf
	if *cf.confPath != "" {
		var err error
		conf, err = cnf.LoadConf(*cf.confPath)
		if err != nil {
			setupLogging(cnf.DefaultConf(), *cf.verbose)
			log.Fatal().Err(err).Msg("failed to run")
		}

	} else {
		conf = cnf.DefaultConf()
		conf.WordList = ""
	}
	if len(wordLists) > 0 {
		conf.WordList = wordLists[0]
		conf.WordLists = wordLists[1:]
	}
	setupLogging(conf, *cf.verbose)
	return conf
}

func runCodec(mode library.Mode, args []string) {
	cmd := flag.NewFlagSet(string(mode), flag.ExitOnError)
	cf := addCommonFlags(cmd)
	inFile := cmd.String("i", library.StdStream, "input file (- for standard input)")
	outFile := cmd.String("o", library.StdStream, "output file (- for standard output)")
	maxWords := cmd.Int("m", -1, "maximum words to put on one line (default: from config or 10)")
	byteBuffer := cmd.Int("b", 0, "size of byte buffer used when reading/writing files (default: from config or 65536)")
	strict := cmd.Bool("strict", false, "fail on words not found in the dictionary (decode only)")
	cmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options] [word list...]\n\n", os.Args[0], mode)
		fmt.Fprintf(os.Stderr, "A word list is a file, a directory, vert:[vertical file] or db:[stored list name].\n")
		fmt.Fprintf(os.Stderr, "The same word list must be used for encoding and decoding.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.PrintDefaults()
	}
	cmd.Parse(args)

	conf := loadConfig(cf, cmd.Args())
	if *maxWords >= 0 {
		conf.MaxWordsPerLine = maxWords
	}
	if *byteBuffer > 0 {
		conf.ByteBuffer = *byteBuffer
	}
	if *strict {
		conf.Strict = true
	}
	if len(conf.GetDefinedWordLists()) == 0 {
		cmd.Usage()
		os.Exit(1)
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dict, err := library.LoadDictionary(ctx, conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
	status := library.Process(ctx, conf, dict, mode, *inFile, *outFile)
	if status.Error != nil {
		log.Fatal().Err(status.Error).Str("input", status.Input).Msgf("failed to %s", mode)
	}
	log.Debug().
		Int64("bytesIn", status.Stats.BytesIn).
		Int64("bytesOut", status.Stats.BytesOut).
		Int64("wordsIn", status.Stats.WordsIn).
		Int64("wordsOut", status.Stats.WordsOut).
		Int64("skippedWords", status.Stats.SkippedWords).
		Dur("procTime", status.Duration).
		Msgf("%s finished", mode)
	if status.Stats.SkippedWords > 0 {
		log.Warn().
			Int64("skippedWords", status.Stats.SkippedWords).
			Msg("some words were not found in the dictionary and were ignored")
	}
}

func runDict(args []string) {
	cmd := flag.NewFlagSet("dict", flag.ExitOnError)
	cf := addCommonFlags(cmd)
	asJSON := cmd.Bool("json", false, "print the report as JSON")
	cmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s dict [options] [word list...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show dictionary properties (size, bits per word, words never used).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.PrintDefaults()
	}
	cmd.Parse(args)
	conf := loadConfig(cf, cmd.Args())
	if len(conf.GetDefinedWordLists()) == 0 {
		cmd.Usage()
		os.Exit(1)
	}
	dict, err := library.LoadDictionary(context.Background(), conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
	report := newDictReport(dict)
	if *asJSON {
		out, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode report")
		}
		fmt.Println(string(out))

	} else {
		report.WriteText(os.Stdout)
	}
}

func runImport(args []string) {
	cmd := flag.NewFlagSet("import", flag.ExitOnError)
	cf := addCommonFlags(cmd)
	cmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -conf <config-file> <name> [word list...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a word list in the configured database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.PrintDefaults()
	}
	cmd.Parse(args)
	if cmd.NArg() < 1 || *cf.confPath == "" {
		cmd.Usage()
		os.Exit(1)
	}
	conf := loadConfig(cf, cmd.Args()[1:])
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if _, err := library.ImportWordList(ctx, conf, cmd.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
}

func runLists(args []string) {
	cmd := flag.NewFlagSet("lists", flag.ExitOnError)
	cf := addCommonFlags(cmd)
	cmd.Parse(args)
	if *cf.confPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s lists -conf <config-file>\n", os.Args[0])
		os.Exit(1)
	}
	conf := loadConfig(cf, []string{})
	lists, err := library.ListStoredWordLists(context.Background(), conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
	for _, v := range lists {
		fmt.Printf("%s\t%d\n", v.Name, v.NumWords)
	}
}

func dumpNewConf() {
	out, err := cnf.DumpConf(cnf.DefaultConf())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to dump a new config")
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "\n+-------------------------------------------------------------+\n")
	fmt.Fprintf(os.Stderr, "|  FreeSpeech - encode binary data as a sequence of words     |\n")
	fmt.Fprintf(os.Stderr, "+-------------------------------------------------------------+\n")
	fmt.Fprintf(os.Stderr, "version: %s, build: %s, commit: %s\n\n", version, build, gitCommit)
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  encode    Encode binary data to words\n")
	fmt.Fprintf(os.Stderr, "  decode    Decode words back to binary data\n")
	fmt.Fprintf(os.Stderr, "  dict      Show dictionary properties\n")
	fmt.Fprintf(os.Stderr, "  import    Store a word list in the configured database\n")
	fmt.Fprintf(os.Stderr, "  lists     Show word lists stored in the configured database\n")
	fmt.Fprintf(os.Stderr, "  template  Create a sample config and write it to stdout\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for more information about a command.\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encode":
		runCodec(library.ModeEncode, os.Args[2:])
	case "decode":
		runCodec(library.ModeDecode, os.Args[2:])
	case "dict":
		runDict(os.Args[2:])
	case "import":
		runImport(os.Args[2:])
	case "lists":
		runLists(os.Args[2:])
	case "template":
		dumpNewConf()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}
