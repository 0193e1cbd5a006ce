// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Implements a command line tool that renders, counts, or enumerates
// strings matching a regular expression.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/gocsaf/stringgen/patterns"
	"github.com/gocsaf/stringgen/pkg/stringgen"
)

const (
	patternDocumentation = `
Regular expression pattern to generate strings for. Alternatively use
--from-schema to extract a pattern from a JSON Schema file.
`

	seedDocumentation = `
Random seed. An integer reseeds deterministically; any other string is
hashed into the seed state. If omitted, the generator uses a random seed.
`

	maxRepeatDocumentation = `
Cap substituted for unbounded quantifiers (*, +, open-ended {n,}).
`

	alphabetDocumentation = `
Letters used to resolve \w, \W, ., [^...], \S and \D. Does not affect \d
or \s, or explicit literal ranges like [a-z].
`

	countDocumentation = `
Print the exact (or infinite) number of distinct strings the pattern can
produce, and exit.
`

	numDocumentation = `
Number of samples to render.
`

	setDocumentation = `
Render this many pairwise-distinct samples instead of --num independent
ones.
`

	enumerateDocumentation = `
Print every distinct derivation of the pattern instead of sampling.
`

	limitDocumentation = `
Cap substituted for unbounded quantifiers during --enumerate only,
overriding --max-repeat for that traversal.
`

	configDocumentation = `
TOML file of named pattern overrides (see patterns.Overrides); a name
from this file may be passed as --pattern=@name.
`

	fromSchemaDocumentation = `
Path to a JSON Schema file; its top-level "pattern" keyword is extracted
and used as the pattern.
`
)

type cliOptions struct {
	Pattern    string `short:"p" long:"pattern" description:"regex pattern"`
	Seed       string `long:"seed" description:"random seed"`
	MaxRepeat  int    `long:"max-repeat" description:"cap for unbounded quantifiers" default:"100"`
	Alphabet   string `short:"a" long:"alphabet" description:"alphabet letters"`
	Count      bool   `short:"c" long:"count" description:"print count() and exit"`
	Num        int    `short:"n" long:"num" description:"number of samples" default:"1"`
	Set        int    `long:"set" description:"render this many distinct samples"`
	Enumerate  bool   `short:"e" long:"enumerate" description:"enumerate all derivations"`
	Limit      int    `long:"limit" description:"enumeration cap override"`
	Config     string `long:"config" description:"TOML file of named pattern overrides"`
	FromSchema string `long:"from-schema" description:"JSON Schema file to extract a pattern from"`

	Profile profileOptions `group:"Profiling Options"`
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = strings.Join([]string{
		patternDocumentation, seedDocumentation, maxRepeatDocumentation,
		alphabetDocumentation, countDocumentation, numDocumentation,
		setDocumentation, enumerateDocumentation, limitDocumentation,
		configDocumentation, fromSchemaDocumentation,
	}, "\n")
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	check(opts.Profile.profile(func() error {
		return run(&opts)
	}))
}

func run(opts *cliOptions) error {
	pattern, err := resolvePattern(opts)
	if err != nil {
		return err
	}

	genOpts := []stringgen.Option{stringgen.WithMaxRepeat(opts.MaxRepeat)}
	if opts.Alphabet != "" {
		genOpts = append(genOpts, stringgen.WithAlphabet(opts.Alphabet))
	}
	if opts.Seed != "" {
		genOpts = append(genOpts, stringgen.WithSeed(parseSeed(opts.Seed)))
	}

	gen, err := stringgen.New(pattern, genOpts...)
	if err != nil {
		return err
	}

	switch {
	case opts.Count:
		fmt.Println(gen.Count())
		return nil

	case opts.Enumerate:
		limit := opts.MaxRepeat
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		for s := range gen.Enumerate(limit) {
			fmt.Println(s)
		}
		return nil

	case opts.Set > 0:
		samples, err := gen.RenderSet(opts.Set)
		if err != nil {
			return err
		}
		for _, s := range samples {
			fmt.Println(s)
		}
		return nil

	default:
		for s := range gen.Stream(opts.Num) {
			fmt.Println(s)
		}
		return nil
	}
}

func resolvePattern(opts *cliOptions) (string, error) {
	if opts.FromSchema != "" {
		return patternFromSchema(opts.FromSchema)
	}
	if name, ok := strings.CutPrefix(opts.Pattern, "@"); ok {
		if opts.Config == "" {
			return "", fmt.Errorf("--pattern=@%s requires --config", name)
		}
		overrides, err := patterns.LoadOverrides(opts.Config)
		if err != nil {
			return "", err
		}
		source, ok := overrides.Get(name)
		if !ok {
			return "", fmt.Errorf("no pattern named %q in %s", name, opts.Config)
		}
		return source, nil
	}
	if opts.Pattern == "" {
		return "", fmt.Errorf("--pattern or --from-schema is required")
	}
	return opts.Pattern, nil
}

func parseSeed(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
