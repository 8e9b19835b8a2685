package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `                                    _           _
  ___ ___  _   _ _ __ ___  ___  __| | ___  ___| | __
 / __/ _ \| | | | '__/ __|/ _ \/ _` + "`" + ` |/ _ \/ __| |/ /
| (_| (_) | |_| | |  \__ \  __/ (_| |  __/ (__|   <
 \___\___/ \__,_|_|  |___/\___|\__,_|\___|\___|_|\_\

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coursedeck",
	Short: "A course catalog browser and schedule builder.",
	Long: LOGO + `coursedeck ingests a course listing and a price list, builds a filterable
catalog, and lets you assemble a schedule cart with conflict detection,
weekly calendar projection, and price totals.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.coursedeck.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("dbpath", "", "", "Path to SQLite DB file (default: coursedeck.sqlite in CWD)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".coursedeck")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.coursedeck.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("data.listing", "")
	viper.SetDefault("data.prices", "")
	viper.SetDefault("db.path", "")
	viper.SetDefault("serve.username", "")
	viper.SetDefault("serve.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// resolveDBPath picks the database path from the flag, then the config file,
// then the default.
func resolveDBPath() string {
	dbPath, _ := rootCmd.PersistentFlags().GetString("dbpath")
	if dbPath == "" {
		dbPath = viper.GetString("db.path")
	}
	if dbPath == "" {
		dbPath = "coursedeck.sqlite"
	}
	return dbPath
}
