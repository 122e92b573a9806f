package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/pdftext"
	"github.com/spigell/resume-screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the screening API and the browser test page",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default is :5000)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	log, config, scorer := setup()

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting the resume-screener api",
		zap.String("version", version),
		zap.String("addr", config.Server.Addr),
		zap.Int64("max_upload_mb", config.Server.MaxUploadMB),
	)

	srv := server.New(config.Server, scorer, pdftext.NewPDF(), log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal("serving", zap.Error(err))
	}

	log.Info("exiting", zap.String("reason", "shutdown completed"))
}
