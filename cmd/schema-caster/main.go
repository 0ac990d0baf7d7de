// schema-caster decodes a CBOR or JSON array document into a chosen Go
// container and dumps the result.
//
// The element schema is given with --elem and the container with --target.
// A CBOR input read with --stream is treated as a sequence of arrays, each
// decoded and dumped in turn.
//
// Usage:
//
//	schema-caster --elem long --target sorted-set --format json --input values.json
//	schema-caster --elem string --target stack --format cbor --stream < items.cbor
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"schema-caster/builder"
	"schema-caster/codec"
	"schema-caster/options"
	"schema-caster/schema"
	"schema-caster/utils"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		input      string
		format     string
		elem       string
		target     string
		configPath string
		stream     bool
		verbose    bool
	)

	flagSet := pflag.NewFlagSet("schema-caster", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&input, "input", "i", "-", "input document, - for stdin")
	flagSet.StringVarP(&format, "format", "f", "json", "input format: json or cbor")
	flagSet.StringVarP(&elem, "elem", "e", "long", "element schema: "+strings.Join(elemNames(), ", "))
	flagSet.StringVarP(&target, "target", "t", "slice", "destination container: "+strings.Join(targetNames(), ", "))
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flagSet.BoolVar(&stream, "stream", false, "read a CBOR sequence of arrays")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log plan construction")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg := options.Default()
	if configPath != "" {
		var err error
		if cfg, err = options.Load(configPath); err != nil {
			return err
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	b, err := builder.NewFromConfig(cfg, builder.WithLogger(logger))
	if err != nil {
		return err
	}

	s, t, err := resolveTarget(elem, target)
	if err != nil {
		return err
	}

	r := stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := codec.NewDecoder(b)
	dump := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

	switch {
	case stream && format == "cbor":
		return dec.DecodeCBORStream(r, s, t, func(v reflect.Value) error {
			dump.Fdump(stdout, v.Interface())
			return nil
		})
	case stream:
		return fmt.Errorf("--stream needs --format cbor")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	out := reflect.New(t)
	switch format {
	case "json":
		err = dec.DecodeJSON(bytes.TrimSpace(data), s, out.Interface())
	case "cbor":
		err = dec.DecodeCBOR(data, s, out.Interface())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	logger.Debug("decoded document", slog.String("schema", s.String()), slog.String("type", t.String()))
	dump.Fdump(stdout, out.Elem().Interface())

	return nil
}

func elemNames() []string {
	return slices.Sorted(maps.Keys(elems))
}

func targetNames() []string {
	return slices.Sorted(maps.Keys(targetsFor[int64]()))
}

// resolveTarget returns the array schema for elem and the container type
// named by target.
func resolveTarget(elem, target string) (schema.Node, reflect.Type, error) {
	e, ok := elems[elem]
	if !ok {
		return nil, nil, unknown("element schema", elem, elemNames())
	}

	t, ok := e.targets[target]
	if !ok {
		return nil, nil, unknown("target", target, targetNames())
	}

	return schema.NewArray(e.schema), t, nil
}

func unknown(what, name string, names []string) error {
	if hint, ok := utils.Closest(name, names); ok {
		return fmt.Errorf("unknown %s %q, did you mean %q?", what, name, hint)
	}

	return fmt.Errorf("unknown %s %q", what, name)
}
