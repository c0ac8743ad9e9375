package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/art-explorer/internal/catalog"
	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the collection in the terminal through a running proxy",
	Long: `Browse runs a search against a running art-explorer proxy and prints the
first page of cards. Commands are read from standard input, one per line:
n and p page through results, g <card> opens a card's additional images,
c closes them, h <card> toggles a card's date, s/d/l change the keyword,
department and location, and q quits.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("proxy-url", "", "proxy root URL (default http://localhost:3000)")
	browseCmd.Flags().String("keyword", "", "search keyword (default flowers)")
	browseCmd.Flags().String("department", "", "department id filter")
	browseCmd.Flags().String("location", "", "geographic location filter")
	browseCmd.Flags().String("lang", "", "label language (default translate.target_lang)")
	_ = viper.BindPFlag("browse.proxy_url", browseCmd.Flags().Lookup("proxy-url"))
	_ = viper.BindPFlag("browse.lang", browseCmd.Flags().Lookup("lang"))

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log sink: %v\n", err)
		}
	}()

	keyword, _ := cmd.Flags().GetString("keyword")
	department, _ := cmd.Flags().GetString("department")
	location, _ := cmd.Flags().GetString("location")
	filters := types.Filters{Department: department, Keyword: keyword, Location: location}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bundle := locale.For(cfg.Browse.Lang)
	ctrl := catalog.NewController(
		catalog.NewHTTPProxy(cfg.Browse),
		bundle,
		catalog.NewTerminalSink(cmd.OutOrStdout()),
		logger,
	)

	ctrl.LoadDepartments(ctx)
	ctrl.ApplyFilters(ctx, filters)

	return catalog.RunCommands(ctx, ctrl, filters, cmd.InOrStdin(), cmd.OutOrStdout())
}
