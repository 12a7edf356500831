// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/englab/englab-calcs/pkg/logging"
	"github.com/englab/englab-calcs/pkg/serializer"
	"github.com/englab/englab-calcs/pkg/validator"
)

const (
	flagLogLevel = "log-level"
	flagFormat   = "format"
	flagOutput   = "output"
	flagInput    = "input"
)

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagLogLevel,
		Value:   "info",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagInput,
		Aliases: []string{"f"},
		Usage:   "JSON or YAML file holding the request fields; flags override file values",
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(flagFormat))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// requestBody assembles the request fields for a calculation: values from
// --input first, then every explicitly set flag in fields.
func requestBody(cmd *cli.Command, fields map[string]string) (map[string]any, error) {
	body := map[string]any{}

	if path := cmd.String(flagInput); path != "" {
		in, err := serializer.FromFile[map[string]any](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load input from %q: %w", path, err)
		}
		if *in != nil {
			body = *in
		}
	}

	for flagName, field := range fields {
		if cmd.IsSet(flagName) {
			body[field] = cmd.Float(flagName)
		}
	}

	return body, nil
}

// validationFailure turns a validation error into a message listing every
// violated field, one per line. Other errors are returned unchanged.
func validationFailure(err error) error {
	var verr *validator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	var sb strings.Builder
	sb.WriteString("invalid input:")
	for _, fe := range verr.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(fe.Message)
	}
	return errors.New(sb.String())
}

// writeResult serializes v in the --format format to --output or the
// command's writer.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String(flagOutput); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		out := cmd.Root().Writer
		if out == nil {
			out = os.Stdout
		}
		w = serializer.NewWriter(format, out)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			slog.Warn("failed to close output", "error", cerr)
		}
	}()

	if err := w.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
