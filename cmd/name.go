package cmd

import (
	"fmt"

	"github.com/mmuldo/dgcolor/names"
	"github.com/spf13/cobra"
)

var showDistance bool

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name HEX...",
	Short: "Prints the nearest color name for each hex color",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := selectedMetric()
		if e != nil {
			return e
		}

		r := names.NewResolver(names.English())
		for _, hex := range args {
			mt, e := r.Match(hex, m)
			if e != nil {
				return e
			}

			if showDistance {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t#%s\t%.4f\n", hex, mt.Name, mt.Hex, mt.Distance)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", hex, mt.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)

	nameCmd.Flags().BoolVarP(&showDistance, "distance", "d", false, "also print the matched color and its distance")
}
