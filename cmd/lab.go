package cmd

import (
	"fmt"

	"github.com/mmuldo/dgcolor/palette"
	"github.com/spf13/cobra"
)

var exactLab bool

// labCmd represents the lab command
var labCmd = &cobra.Command{
	Use:   "lab HEX...",
	Short: "Converts hex colors to CIE Lab",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, hex := range args {
			c, e := palette.ParseHex(hex)
			if e != nil {
				return e
			}

			l := c.Lab()
			if exactLab {
				l = c.ExactLab()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.4f\t%.4f\t%.4f\n", hex, l.L, l.A, l.B)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labCmd)

	labCmd.Flags().BoolVarP(&exactLab, "exact", "e", false, "use full-precision primaries without intermediate rounding")
}
