package cmd

import (
	"fmt"
	"strconv"

	"github.com/mmuldo/dgcolor/palette"
	"github.com/spf13/cobra"
)

var realAlpha bool

// alphaCmd represents the alpha command
var alphaCmd = &cobra.Command{
	Use:   "alpha HEX ALPHA",
	Short: "Prints the opaque equivalent of a translucent color on white",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, e := strconv.ParseFloat(args[1], 64)
		if e != nil {
			return fmt.Errorf("alpha %q: %w", args[1], e)
		}

		var out string
		if realAlpha {
			out, e = palette.AlphaSuffix(args[0], a)
		} else {
			out, e = palette.Alpha(args[0], a)
		}
		if e != nil {
			return e
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(alphaCmd)

	alphaCmd.Flags().BoolVarP(&realAlpha, "real", "r", false, "append the alpha byte instead of blending")
}
