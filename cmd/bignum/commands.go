package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
)

func newConvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conv [flags] value",
		Short: "Convert an integer between bases",
		Args:  cobra.ExactArgs(1),
		RunE:  runConv,
	}
	cmd.Flags().Int("from", 0, "input base (0 means decimal, or hex with a 0x prefix)")
	cmd.Flags().Int("to", 10, "output base, in [2, 36]")
	cmd.Flags().Int64("min-digits", 1, "left-pad the output with zeros to this many digits")
	return cmd
}

func runConv(cmd *cobra.Command, args []string) error {
	from, err := cmd.Flags().GetInt("from")
	if err != nil {
		return err
	}
	to, err := cmd.Flags().GetInt("to")
	if err != nil {
		return err
	}
	minDigits64, err := cmd.Flags().GetInt64("min-digits")
	if err != nil {
		return err
	}
	minDigits, err := safecast.Conv[int](minDigits64)
	if err != nil {
		return fmt.Errorf("min-digits: %w", err)
	}

	v, err := bignum.ParseInt(args[0], from)
	if err != nil {
		return err
	}
	s, err := v.Digits(to, minDigits)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return dump(cmd, v)
}

func newQuoRemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quorem x y",
		Short: "Divide x by y, printing the quotient and the non-negative remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := bignum.ParseInt(args[0], 0)
			if err != nil {
				return err
			}
			y, err := bignum.ParseInt(args[1], 0)
			if err != nil {
				return err
			}
			if y.IsZero() {
				return bignum.ErrDivisionByZero
			}
			q, r := x.QuoRem(y)
			rem, err := label(cmd, "rem")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", q, rem, r)
			return dump(cmd, q, r)
		},
	}
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow x e",
		Short: "Raise x to the non-negative power e",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := bignum.ParseInt(args[0], 0)
			if err != nil {
				return err
			}
			e, err := bignum.ParseNat(args[1], 0)
			if err != nil {
				return err
			}
			result := x.Pow(e)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return dump(cmd, result)
		},
	}
}

func newRatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rat [flags] a op b",
		Short: "Rational arithmetic; op is one of + - * /",
		Long: `Rational arithmetic over arbitrary-precision integers.

Operands are "N", "N/D" or "W N/D"; quote mixed numbers:

	bignum rat -- "-1 2/3" + 7/9`,
		Args: cobra.ExactArgs(3),
		RunE: runRat,
	}
	cmd.Flags().Bool("mixed", false, "print the result as a mixed number")
	return cmd
}

func runRat(cmd *cobra.Command, args []string) error {
	mixed, err := cmd.Flags().GetBool("mixed")
	if err != nil {
		return err
	}
	a, err := bignum.ParseRat[bignum.Int](args[0])
	if err != nil {
		return err
	}
	b, err := bignum.ParseRat[bignum.Int](args[2])
	if err != nil {
		return err
	}

	var result bignum.Rat[bignum.Int]
	switch args[1] {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "*", "x":
		result = a.Mul(b)
	case "/":
		if b.IsZero() {
			return bignum.ErrDivisionByZero
		}
		result = a.Quo(b)
	default:
		return fmt.Errorf("unknown op %q, expected one of + - * /", args[1])
	}

	if mixed {
		fmt.Fprintln(cmd.OutOrStdout(), result.Mixed())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
	}
	return dump(cmd, result.Num(), result.Den())
}

func newBytesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes [flags] value",
		Short: "Print the bytes of a non-negative integer in hex",
		Args:  cobra.ExactArgs(1),
		RunE:  runBytes,
	}
	cmd.Flags().Int64("width", 0, "number of bytes to write; high bytes are dropped if the value does not fit (0 means minimal)")
	cmd.Flags().Bool("le", false, "least significant byte first")
	return cmd
}

func runBytes(cmd *cobra.Command, args []string) error {
	width64, err := cmd.Flags().GetInt64("width")
	if err != nil {
		return err
	}
	width, err := safecast.Conv[int](width64)
	if err != nil || width < 0 {
		return fmt.Errorf("width %d out of range", width64)
	}
	le, err := cmd.Flags().GetBool("le")
	if err != nil {
		return err
	}

	n, err := bignum.ParseNat(args[0], 0)
	if err != nil {
		return err
	}
	if width == 0 {
		width = n.ByteLen()
	}
	buf := make([]byte, width)
	if le {
		n.PutLittleEndian(buf)
	} else {
		n.PutBigEndian(buf)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "% x\n", buf)
	return dump(cmd, bignum.IntFromNat(n))
}
