package cmd

import (
	"github.com/mmuldo/dgcolor/image"
	"github.com/mmuldo/dgcolor/names"
	"github.com/mmuldo/dgcolor/theme"
	"github.com/spf13/cobra"
)

var numColors int

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract IMAGE",
	Short: "Names the dominant colors of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := selectedMetric()
		if e != nil {
			return e
		}

		i, e := image.Load(args[0])
		if e != nil {
			return e
		}

		cc := image.Dominant(i, numColors)
		hexes := make([]string, len(cc))
		for k, c := range cc {
			hexes[k] = c.Color.Hex()
		}

		t, e := theme.Create(hexes, names.NewResolver(names.English()), m)
		if e != nil {
			return e
		}
		for k := range t {
			t[k].Count = cc[k].Count
		}

		return emit(cmd, t)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntVarP(&numColors, "num", "n", 8, "number of colors to extract")
}
