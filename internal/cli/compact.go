package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/compactor"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/failmsg"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/textfmt"
)

// Values of --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func compactCmd(env *runEnv) *cobra.Command {
	var (
		contextLength int
		label         string
		nullExpected  bool
		nullActual    bool
		color         string
	)

	cmd := &cobra.Command{
		Use:   "compact [flags] EXPECTED ACTUAL",
		Short: "Print a compact mismatch message for two strings",
		Long: `Print a compact mismatch message for two strings:

  <label >expected:<E> but was:<A>

Common leading and trailing text is collapsed to at most --context characters of context, and the
differing part of each side is shown in brackets. Use --null-expected or --null-actual to treat a side
as absent (rendered as null); that side's positional argument is then omitted.`,
		Example: `  ccx compact --context 2 abcdde abcde
  ccx compact --label a --context 0 b c
  ccx compact --null-actual a`,
		Args: usageArgs(cobra.RangeArgs(0, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			want := 2
			if nullExpected {
				want--
			}
			if nullActual {
				want--
			}
			if len(args) != want {
				return usageErrorf("expected %d positional args, got %d", want, len(args))
			}

			if !cmd.Flags().Changed("context") {
				contextLength = env.cfg.ContextLength
			}
			if contextLength < 0 {
				return usageErrorf("--context must not be negative, got %d", contextLength)
			}

			expected, actual := failmsg.Absent(), failmsg.Absent()
			if !nullExpected {
				expected = failmsg.Some(args[0])
				args = args[1:]
			}
			if !nullActual {
				actual = failmsg.Some(args[0])
			}

			lbl := failmsg.Absent()
			if cmd.Flags().Changed("label") {
				lbl = failmsg.Some(label)
			}

			colored, err := useColor(color, env.out)
			if err != nil {
				return err
			}

			c := compactor.New(contextLength, expected, actual)
			msg := renderMessage(c, lbl, colored)

			if pair, ok := c.Pair(); ok {
				env.logger.Debug("compacted",
					zap.Int("context_length", c.ContextLength()),
					zap.Int("prefix_length", pair.Commons.PrefixLength),
					zap.Int("suffix_length", pair.Commons.SuffixLength),
				)
			} else {
				env.logger.Debug("not compacted", zap.Bool("expected_present", expected.IsPresent()), zap.Bool("actual_present", actual.IsPresent()))
			}

			_, err = fmt.Fprintln(env.out, msg)
			return err
		},
	}

	cmd.Flags().IntVarP(&contextLength, "context", "c", 0, "Characters of context around the difference (default: CCX_CONTEXT_LENGTH or 20)")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Label printed before the message")
	cmd.Flags().BoolVar(&nullExpected, "null-expected", false, "Treat the expected value as absent")
	cmd.Flags().BoolVar(&nullActual, "null-actual", false, "Treat the actual value as absent")
	cmd.Flags().StringVar(&color, "color", colorAuto, "Highlight differences: auto, always, never")

	return cmd
}

// renderMessage formats the message with control characters escaped. If colored, each delta is highlighted.
func renderMessage(c compactor.Compactor, label failmsg.Text, colored bool) string {
	label = sanitizeText(label)

	pair, ok := c.Pair()
	if !ok {
		// Reuse the uncompacted rendering, escaping each side.
		exp, act := c.Values()
		return failmsg.Format(label, sanitizeText(exp), sanitizeText(act))
	}

	expCode, actCode := "", ""
	if colored {
		expCode, actCode = textfmt.RedBG, textfmt.GreenBG
	}
	return failmsg.Format(label,
		failmsg.Some(renderSide(pair.Expected, expCode)),
		failmsg.Some(renderSide(pair.Actual, actCode)),
	)
}

func renderSide(r compactor.Rendering, code string) string {
	return compactor.Rendering{
		Prefix: textfmt.Sanitize(r.Prefix),
		Delta:  textfmt.Paint(textfmt.Sanitize(r.Delta), code),
		Suffix: textfmt.Sanitize(r.Suffix),
	}.String()
}

func sanitizeText(t failmsg.Text) failmsg.Text {
	if s, ok := t.Get(); ok {
		return failmsg.Some(textfmt.Sanitize(s))
	}
	return t
}

func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, usageErrorf("--color must be %s, %s or %s, got %q", colorAuto, colorAlways, colorNever, mode)
	}
}
