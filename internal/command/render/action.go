package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/record"
)

var (
	errMissingTemplate = errors.New("missing template name")
	errMissingData     = errors.New("missing data file (or use --sample)")
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().Get(0)
	if name == "" {
		return errMissingTemplate
	}

	rec, err := loadRecord(cmd.Args().Get(1), cmd.Bool("sample"))
	if err != nil {
		return err
	}

	gen := command.NewGenerator(cfg)
	if cmd.Bool("stdout") {
		html, err := gen.Preview(ctx, name, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.Root().Writer, html)

		return err
	}

	path, err := gen.Generate(ctx, name, rec, cmd.String("output"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, path)

	return err
}

func loadRecord(path string, sample bool) (posterexp.Record, error) {
	switch {
	case path != "":
		return record.Load(path)
	case sample:
		return record.Sample(), nil
	}

	return nil, errMissingData
}
