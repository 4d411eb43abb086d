package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	phonedata "github.com/goliatone/go-phonedata"
)

type runner struct {
	out    io.Writer
	logger *zap.Logger
	reg    *phonedata.Registry
}

func main() {
	app := newApp(os.Stdout, nil)
	if err := app.Run(os.Args); err != nil {
		var exit cli.ExitCoder
		if errors.As(err, &exit) {
			if msg := exit.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exit.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command tree. A nil logger is replaced in Before by a
// production logger, or a development one when --debug is set.
func newApp(out io.Writer, logger *zap.Logger) *cli.App {
	r := &runner{out: out, logger: logger}

	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(phonedata.FormatJSON),
		Usage:   "output encoding, json or yaml",
	}

	return &cli.App{
		Name:      "phonedata",
		Usage:     "inspect and curate the country phone format table",
		Writer:    out,
		ErrWriter: out,
		// main decides how to exit so that tests can drive the app
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "JSON or YAML data file, defaults to the bundled table",
				EnvVars: []string{"PHONEDATA_FILE"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "development logging",
			},
		},
		Before: func(c *cli.Context) error {
			if r.logger == nil {
				var err error
				if c.Bool("debug") {
					r.logger, err = zap.NewDevelopment()
				} else {
					r.logger, err = zap.NewProduction()
				}
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
			}

			reg, err := phonedata.New(phonedata.WithDataFile(c.String("data")))
			if err != nil {
				return fmt.Errorf("load data: %w", err)
			}
			r.reg = reg
			r.logger.Debug("data loaded",
				zap.String("data", c.String("data")),
				zap.Int("countries", reg.Len()),
			)
			return nil
		},
		After: func(*cli.Context) error {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "countries",
				Usage: "list country codes in table order",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "names", Usage: "include English country names"},
				},
				Action: r.countries,
			},
			{
				Name:      "show",
				Usage:     "print the entry for one country",
				ArgsUsage: "CODE",
				Flags:     []cli.Flag{formatFlag},
				Action:    r.show,
			},
			{
				Name:   "validate",
				Usage:  "check every entry and report issues",
				Action: r.validate,
			},
			{
				Name:   "export",
				Usage:  "write the whole table",
				Flags:  []cli.Flag{formatFlag},
				Action: r.export,
			},
		},
	}
}

func (r *runner) countries(c *cli.Context) error {
	withNames := c.Bool("names")

	for _, code := range r.reg.Countries() {
		if !withNames {
			fmt.Fprintln(r.out, code)
			continue
		}
		fmt.Fprintf(r.out, "%s\t%s\n", code, regionName(code))
	}
	return nil
}

func (r *runner) show(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("show expects exactly one country code", 2)
	}

	format, err := phonedata.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	code := strings.TrimSpace(c.Args().First())
	entry, err := r.reg.Entry(code)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	table, err := phonedata.NewTable(entry)
	if err != nil {
		return err
	}
	return phonedata.Encode(r.out, table, format)
}

func (r *runner) validate(*cli.Context) error {
	err := r.reg.Validate()
	issues := phonedata.Issues(err)
	if err != nil && len(issues) == 0 {
		return err
	}

	for _, issue := range issues {
		r.logger.Warn("invalid entry",
			zap.String("country", issue.Country),
			zap.String("field", issue.Field),
			zap.Error(issue.Err),
		)
		fmt.Fprintln(r.out, issue.Error())
	}

	extended := r.reg.Table().ExtendedPatterns()
	if len(extended) > 0 {
		r.logger.Info("patterns need the extended engine", zap.Strings("countries", extended))
	}

	fmt.Fprintf(r.out, "%d countries, %d issues\n", r.reg.Len(), len(issues))
	if len(issues) > 0 {
		return cli.Exit("validation failed", 1)
	}
	return nil
}

func (r *runner) export(c *cli.Context) error {
	format, err := phonedata.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	return phonedata.Encode(r.out, r.reg.Table(), format)
}

func regionName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}
