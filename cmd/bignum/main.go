package main

import (
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
)

const longUsage = `Arbitrary-precision integer and rational calculator

Values are read as decimal unless a 0x prefix or --from says otherwise.
Negative operands must follow a "--" so they are not taken as flags:

	bignum quorem -- -42 10`

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bignum",
		Short:         "Arbitrary-precision integer and rational calculator",
		Long:          longUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("dump", false, "dump the limbs of each result")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newConvCmd())
	rootCmd.AddCommand(newQuoRemCmd())
	rootCmd.AddCommand(newPowCmd())
	rootCmd.AddCommand(newRatCmd())
	rootCmd.AddCommand(newBytesCmd())
	return rootCmd
}

// dump writes the limb structure of each value if --dump was passed.
func dump(cmd *cobra.Command, vals ...bignum.Int) error {
	on, err := cmd.Root().PersistentFlags().GetBool("dump")
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	out := cmd.OutOrStdout()
	for _, v := range vals {
		spew.Fdump(out, struct {
			Neg   bool
			Limbs []uint32
		}{v.Sign() < 0, v.Mag().Limbs()})
	}
	return nil
}
