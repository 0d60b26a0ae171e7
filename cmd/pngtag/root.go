package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/pngme/internal/chunktype"
	"github.com/danmuck/pngme/internal/config"
	"github.com/danmuck/pngme/internal/inspect"
	"github.com/danmuck/pngme/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errProblems is returned when at least one report has problems. The
// reports already explain why, so main only sets the exit status.
var errProblems = errors.New("pngtag: chunk type problems reported")

type rootOptions struct {
	configPath string
	output     string
	hex        bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pngtag [flags] TYPE...",
		Short: "Inspect PNG chunk types",
		Long: `Parses each argument as a 4-letter PNG chunk type and reports its
critical, public, reserved and safe-to-copy bits, whether it is well formed,
and whether it is registered. With --hex each argument is 8 hex digits of raw
bytes, which are accepted even when they are not letters.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			reports := make([]inspect.Report, 0, len(args))
			for _, arg := range args {
				rep, err := inspectArg(arg, opts.hex, cfg.Policy)
				if err != nil {
					return err
				}
				reports = append(reports, rep)
			}
			return printReports(out, cfg.Output, reports)
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a pngtag TOML config")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.OutputText, "output format: text|json")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "read arguments as 8 hex digits of raw bytes")

	// "help" is itself a chunk type, so the help command moves off that name.
	// --help still prints usage.
	cmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	cmd.AddCommand(newKnownCmd(out), newTemplateCmd(out))
	return cmd
}

func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		log.Debug().Str("path", opts.configPath).Msg("loaded config")
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = strings.ToLower(strings.TrimSpace(opts.output))
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	if opts.configPath != "" {
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func inspectArg(arg string, raw bool, policy inspect.Policy) (inspect.Report, error) {
	if !raw {
		return inspect.InspectText(arg, policy), nil
	}
	decoded, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(arg), "0x"))
	if err != nil {
		return inspect.Report{}, fmt.Errorf("decode %q: %w", arg, err)
	}
	var ct chunktype.ChunkType
	if err := ct.UnmarshalBinary(decoded); err != nil {
		return inspect.Report{}, fmt.Errorf("decode %q: %w", arg, err)
	}
	rep := inspect.Inspect(ct, policy)
	rep.Input = arg
	return rep, nil
}

func printReports(out io.Writer, format string, reports []inspect.Report) error {
	failed := false
	for _, rep := range reports {
		if !rep.OK() {
			failed = true
		}
		if format == config.OutputJSON {
			b, err := json.Marshal(rep)
			if err != nil {
				return fmt.Errorf("marshal json: %w", err)
			}
			fmt.Fprintln(out, string(b))
			continue
		}
		fmt.Fprintln(out, formatReport(rep))
	}
	if failed {
		return errProblems
	}
	return nil
}

func formatReport(rep inspect.Report) string {
	var sb strings.Builder
	sb.WriteString(rep.Input)
	if rep.Flags != nil {
		f := rep.Flags
		fmt.Fprintf(&sb, " bytes=%v", rep.Bytes)
		sb.WriteString(" " + pick(f.Critical, "critical", "ancillary"))
		sb.WriteString(" " + pick(f.Public, "public", "private"))
		sb.WriteString(" " + pick(f.ReservedBitValid, "reserved-ok", "reserved-set"))
		sb.WriteString(" " + pick(f.SafeToCopy, "safe-to-copy", "unsafe-to-copy"))
	}
	sb.WriteString(" " + pick(rep.Valid, "valid", "invalid"))
	if rep.Known {
		fmt.Fprintf(&sb, " (%s)", rep.Description)
	}
	for _, p := range rep.Problems {
		fmt.Fprintf(&sb, "\n  %s: %s", p.Code, p.Detail)
	}
	return sb.String()
}

func pick(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func newKnownCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "known",
		Short: "List registered PNG chunk types",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, info := range chunktype.Known() {
				fmt.Fprintf(out, "%s %s %s\n", info.Type, pick(info.Critical, "critical ", "ancillary"), info.Description)
			}
			return nil
		},
	}
}

func newTemplateCmd(out io.Writer) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "template [PATH]",
		Short: "Write a default pngtag.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "pngtag.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote config template to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
