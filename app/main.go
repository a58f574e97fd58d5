package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rbhz/context-translator/app/clients/reverso"
	"github.com/rbhz/context-translator/app/db"
	"github.com/rbhz/context-translator/app/lang"
	"github.com/rbhz/context-translator/app/translator"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

const usage = "Usage: translator [options] <source_language> <target_language|all> <word>"

const (
	archiveRedis = "redis"
	archiveBolt  = "boltdb"
)

type Opts struct {
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"." description:"Directory for <word>.txt reports"`
	BoltDB    string `long:"boltdb" env:"BOLTDB" description:"Path to BoltDB report archive"`
	RedisURL  string `long:"redis" env:"REDIS_URL" description:"Redis report archive URL"`
	BaseURL   string `long:"base-url" env:"REVERSO_URL" default:"https://context.reverso.net" description:"Reverso Context URL"`
	Show      string `long:"show" description:"Print archived report for word and exit"`
	Languages bool   `long:"languages" description:"Print supported languages and exit"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Source string `positional-arg-name:"source" description:"Source language"`
		Target string `positional-arg-name:"target" description:"Target language or \"all\""`
		Word   string `positional-arg-name:"word" description:"Word to translate"`
	} `positional-args:"yes"`
}

func main() {
	run(os.Args[1:], os.Stdout)
}

// parseOpts parses command line. Arguments after the source language are never treated as flags
func parseOpts(args []string) (Opts, error) {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default|flags.PassAfterNonOption)
	_, err := parser.ParseArgs(args)
	return opts, err
}

func run(args []string, out io.Writer) {
	opts, err := parseOpts(args)
	if err != nil {
		return
	}
	setupLog(opts.Debug)

	if opts.Languages {
		fmt.Fprint(out, lang.Menu())
		return
	}

	archive, closeArchive := getArchive(opts)
	defer closeArchive()

	if opts.Show != "" {
		if err := showReport(archive, opts.Show, out); err != nil {
			log.Debug().Err(err).Str("word", opts.Show).Msg("show report failed")
		}
		return
	}
	if opts.Args.Source == "" || opts.Args.Target == "" || opts.Args.Word == "" {
		fmt.Fprint(out, lang.Menu())
		fmt.Fprintln(out, usage)
		return
	}

	client := reverso.NewClient(context.Background(), opts.BaseURL)
	defer client.Close()

	t := translator.New(client, reverso.HTMLExtractor{}, db.FileWriter{Dir: opts.OutputDir}, archive, out)
	query := translator.Query{Source: opts.Args.Source, Target: opts.Args.Target, Word: opts.Args.Word}
	if _, err := t.Run(query); err != nil {
		if errors.Is(err, translator.ErrSave) {
			log.Error().Err(err).Str("word", query.Word).Msg("failed to save report")
			return
		}
		log.Debug().Err(err).Msg("translation failed")
	}
}

func setupLog(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// showReport prints archived report for word
func showReport(archive db.Storage, word string, out io.Writer) error {
	if archive == nil {
		fmt.Fprintln(out, "Sorry, report archive is not configured, use --boltdb or --redis")
		return errors.New("archive not configured")
	}
	record, err := archive.GetReport(word)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			fmt.Fprintf(out, "Sorry, no archived report for %s\n", word)
		} else {
			log.Error().Err(err).Str("word", word).Msg("failed to read archived report")
		}
		return err
	}
	fmt.Fprintln(out, record.Text)
	return nil
}

// archiveKind returns configured archive backend, redis takes precedence over bolt
func archiveKind(opts Opts) string {
	switch {
	case opts.RedisURL != "":
		return archiveRedis
	case opts.BoltDB != "":
		return archiveBolt
	}
	return ""
}

// getArchive opens report archive. Returns nil storage when none configured or it failed to open
func getArchive(opts Opts) (db.Storage, func()) {
	switch archiveKind(opts) {
	case archiveRedis:
		redisStorage, err := db.NewRedisStorage(opts.RedisURL)
		if err != nil {
			log.Error().Err(err).Msg("failed to create redis client, archive disabled")
			return nil, func() {}
		}
		return redisStorage, closer(redisStorage, archiveRedis)
	case archiveBolt:
		boltDB, err := bolt.Open(opts.BoltDB, 0600, nil)
		if err != nil {
			log.Error().Err(err).Msg("failed to open boltDB database, archive disabled")
			return nil, func() {}
		}
		boltStorage, err := db.NewBoltStorage(boltDB)
		if err != nil {
			log.Error().Err(err).Msg("failed to create bolt storage, archive disabled")
			_ = boltDB.Close()
			return nil, func() {}
		}
		return boltStorage, closer(boltDB, archiveBolt)
	}
	return nil, func() {}
}

func closer(c io.Closer, name string) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Str("storage", name).Msg("failed to close archive")
		}
	}
}
