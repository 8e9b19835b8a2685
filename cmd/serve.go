package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coursedeck/coursedeck/internal/server"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coursedeck JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")

		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		srv := server.New(db, viper.GetString("serve.username"), viper.GetString("serve.password"))
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
}
