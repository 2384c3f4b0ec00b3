package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/mmuldo/dgcolor/names"
	"github.com/mmuldo/dgcolor/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	templateFile string
	outFile      string
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view HEX...",
	Short: "Names a list of colors and renders them as text, html or a custom template",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := selectedMetric()
		if e != nil {
			return e
		}

		t, e := theme.Create(args, names.NewResolver(names.English()), m)
		if e != nil {
			return e
		}

		return emit(cmd, t)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format: text, html or ansi")
	rootCmd.PersistentFlags().StringVarP(&templateFile, "template", "t", "", "pongo2 template file; overrides --format")
	rootCmd.PersistentFlags().StringVarP(&outFile, "out", "o", "", "write output to this file instead of stdout")
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

// emit renders t in the selected format.
func emit(cmd *cobra.Command, t theme.Theme) error {
	var (
		o string
		e error
	)

	switch format := viper.GetString("format"); {
	case templateFile != "":
		o, e = theme.RenderFile(t, templateFile)
	case format == "text":
		o, e = theme.Render(t, theme.TextTemplate)
	case format == "html":
		o, e = theme.Render(t, theme.HTMLTemplate)
	case format == "ansi":
		return t.Preview(cmd.OutOrStdout())
	default:
		return fmt.Errorf("'%s' is not a supported format", format)
	}
	if e != nil {
		return e
	}

	if outFile != "" {
		return ioutil.WriteFile(outFile, []byte(o), 0644)
	}
	_, e = fmt.Fprint(cmd.OutOrStdout(), o)
	return e
}
