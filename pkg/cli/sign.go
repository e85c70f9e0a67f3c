package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/cli/config"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// signCommand prints the X-Hub-Signature-256 value of a payload, so that a
// stored raw payload can be replayed against a running server.
func signCommand() *cli.Command {
	var github config.GitHub

	return &cli.Command{
		Name:      "sign",
		Usage:     "Print the X-Hub-Signature-256 header value for a payload",
		ArgsUsage: "[FILE|-]",
		Flags:     github.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			body, err := readPayload(c.Args().First())
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(c.Root().Writer, model.SignPayload(body, github.Secret())); err != nil {
				return goerr.Wrap(err, "failed to write signature")
			}
			return nil
		},
	}
}

func readPayload(path string) ([]byte, error) {
	if path == "" || path == "-" {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read payload from stdin")
		}
		return body, nil
	}

	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to open payload file",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}
	defer safe.Close(fd)

	body, err := io.ReadAll(fd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload file", goerr.V("path", path))
	}
	return body, nil
}
