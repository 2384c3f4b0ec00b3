package cmd

import (
	"log"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/dgcolor/names"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	metric  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dgcolor",
	Short: "Color conversions and nearest color names",
	Long: `dgcolor converts hex colors to CIE Lab and finds the nearest named color
in a table of about nine hundred English color names.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		log.Fatal(e)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dgcolor.yaml)")
	rootCmd.PersistentFlags().StringVarP(&metric, "metric", "m", "lab", "distance metric: rgb, lab or de2000")
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))

	viper.SetDefault("metric", "lab")
	viper.SetDefault("format", "text")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			log.Fatal(e)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".dgcolor")
	}

	viper.SetEnvPrefix("dgcolor")
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e == nil {
		log.Printf("using config file %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatal(e)
	}
}

// selectedMetric resolves the metric from flag, environment or config file.
func selectedMetric() (names.Metric, error) {
	return names.ParseMetric(viper.GetString("metric"))
}
