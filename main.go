package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/thrift-tools/thriftidl/diagnostics"
	"github.com/thrift-tools/thriftidl/parser"
	"github.com/thrift-tools/thriftidl/printer"
	"github.com/thrift-tools/thriftidl/thrift"
	"github.com/thrift-tools/thriftidl/utils"
)

const defaultFormat = "json"

var (
	formatFlag      string
	configFlag      string
	caseFlag        string
	suggestionsFlag bool
)

// fileConfig is the shape of the optional --config YAML document. Its
// values only supply defaults for flags the command line didn't set.
type fileConfig struct {
	Format      string `yaml:"format"`
	Suggestions *bool  `yaml:"suggestions"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:  "thriftidl",
		Usage: "Parse and re-render Thrift IDL files",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a .thrift file and print its AST",
				ArgsUsage: "<file.thrift>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "Output format: 'json' or 'thrift'",
						Value:       defaultFormat,
						Destination: &formatFlag,
					},
					&cli.StringFlag{
						Name:        "config",
						Usage:       "Path to a YAML config file supplying flag defaults",
						Destination: &configFlag,
					},
					&cli.StringFlag{
						Name:        "case",
						Usage:       "Identifier casing for JSON output: 'camel', 'snake', or 'none'",
						Value:       string(utils.CaseNone),
						Destination: &caseFlag,
					},
					&cli.BoolFlag{
						Name:        "suggestions",
						Usage:       "Include 'did you mean' keyword suggestions on parse errors",
						Value:       true,
						Destination: &suggestionsFlag,
					},
				},
				Action: runParse,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runParse(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) < 1 {
		log.Fatal("Please provide the path to a .thrift file.")
	}
	inputFile := args[0]

	if configFlag != "" {
		cfg, err := loadConfig(configFlag)
		if err != nil {
			log.Fatalf("Failed to load config file: %v", err)
		}
		if !c.IsSet("format") && cfg.Format != "" {
			formatFlag = cfg.Format
		}
		if !c.IsSet("suggestions") && cfg.Suggestions != nil {
			suggestionsFlag = *cfg.Suggestions
		}
	}

	source, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", inputFile, err)
	}

	doc, parseErr := parser.Parse(source)
	if parseErr != nil {
		msg := parseErr.Error()
		if suggestionsFlag {
			msg = diagnostics.Format(parseErr, source)
		}
		log.Fatalf("Failed to parse %s: %s", inputFile, msg)
	}

	switch formatFlag {
	case "thrift":
		fmt.Print(printer.Print(doc))
	case "json":
		out, err := renderJSON(doc, utils.CaseStyle(caseFlag))
		if err != nil {
			log.Fatalf("Failed to render JSON: %v", err)
		}
		fmt.Println(out)
	default:
		log.Fatalf("Invalid output format: %s", formatFlag)
	}

	return nil
}

// renderJSON marshals doc through encoding/json and then walks the
// result applying the requested identifier casing to every object key —
// display-only, since the AST itself is never mutated.
func renderJSON(doc *thrift.Document, style utils.CaseStyle) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if style == utils.CaseNone {
		return string(raw), nil
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	recased := recase(generic, style)

	out, err := json.MarshalIndent(recased, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func recase(v interface{}, style utils.CaseStyle) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(val))
		for k, child := range val {
			result[utils.ApplyCase(k, style)] = recase(child, style)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(val))
		for i, child := range val {
			result[i] = recase(child, style)
		}
		return result
	default:
		return val
	}
}
