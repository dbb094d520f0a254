package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/neatar/neatar/service/avatar"
	"github.com/neatar/neatar/utils/identicon"
	"github.com/neatar/neatar/utils/imaging"
	"github.com/neatar/neatar/utils/media"
	"github.com/neatar/neatar/utils/seed"
)

// 出力形式
const (
	outputSVG     = "svg"
	outputPNG     = "png"
	outputDataURI = "datauri"
	outputJSON    = "json"
)

var errNoSeed = errors.New("seed is required: pass it as an argument or use --stdin")

type generateOptions struct {
	stdin    bool
	encoding string
	halfSize int
	format   string
	output   string
}

// generateCommand identicon生成コマンド
func generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := cobra.Command{
		Use:   "generate [seed]",
		Short: "Generate an identicon",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			s, err := readSeed(cmd.InOrStdin(), args, &opts)
			if err != nil {
				return err
			}

			if len(opts.output) == 0 {
				return writeIdenticon(cmd.OutOrStdout(), s, &opts)
			}
			f, err := os.Create(opts.output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := writeIdenticon(f, s, &opts); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.stdin, "stdin", false, "read the seed from stdin")
	flags.StringVarP(&opts.encoding, "encoding", "e", string(seed.UTF8), "seed encoding (hex, utf8, base64)")
	flags.IntVarP(&opts.halfSize, "size", "s", identicon.DefaultHalfSize, "radius of the outer circle")
	flags.StringVarP(&opts.format, "format", "f", outputSVG, "output format (svg, png, datauri, json)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")

	return &cmd
}

// validate 出力先を作る前にオプションを検証します
func (o *generateOptions) validate() error {
	encodings := lo.Map(seed.Encodings(), func(e seed.Encoding, _ int) any { return string(e) })
	if err := vd.Validate(o.encoding, vd.Required, vd.In(encodings...)); err != nil {
		return fmt.Errorf("invalid encoding %q: %w", o.encoding, err)
	}
	if err := vd.Validate(o.halfSize, vd.Required, vd.Min(identicon.MinHalfSize)); err != nil {
		return fmt.Errorf("invalid size %d: %w", o.halfSize, err)
	}
	if err := vd.Validate(o.format, vd.Required, vd.In(outputSVG, outputPNG, outputDataURI, outputJSON)); err != nil {
		return fmt.Errorf("invalid format %q: %w", o.format, err)
	}
	return nil
}

// readSeed 引数または標準入力からシードを読み込みます
//
// 標準入力をutf8として読む場合はバイト列をそのまま使い、それ以外は前後の空白を除いてから復号します。
func readSeed(r io.Reader, args []string, opts *generateOptions) ([]byte, error) {
	var raw []byte
	switch {
	case opts.stdin:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if seed.Encoding(opts.encoding) == seed.UTF8 {
			return b, nil
		}
		raw = bytes.TrimSpace(b)
	case len(args) > 0:
		raw = []byte(args[0])
	default:
		return nil, errNoSeed
	}

	s, err := seed.Decode(string(raw), seed.Encoding(opts.encoding))
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return s, nil
}

func writeIdenticon(w io.Writer, s []byte, opts *generateOptions) error {
	if opts.halfSize < identicon.MinHalfSize {
		return fmt.Errorf("size must be at least %d: %d", identicon.MinHalfSize, opts.halfSize)
	}

	icon := identicon.New(s, opts.halfSize)
	switch opts.format {
	case outputSVG:
		_, err := io.WriteString(w, icon.SVG())
		return err
	case outputPNG:
		return imaging.EncodeIconPNG(w, icon)
	case outputDataURI:
		_, err := io.WriteString(w, media.DataURI(icon.SVG()))
		return err
	case outputJSON:
		m, err := avatar.NewMedia(icon.SVG())
		if err != nil {
			return err
		}
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
