package main

import (
	"github.com/prismo-bot/prismo/internal/bot"
	"github.com/prismo-bot/prismo/internal/config"
	"github.com/prismo-bot/prismo/internal/consoleui"
	"github.com/prismo-bot/prismo/internal/utils/uiutils"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:          "console",
	Short:        "Chat with the bot in the terminal",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := bot.New(config.Prismo.Bot.Prefix, defaultScope())
		defer func() {
			_ = b.Stop()
		}()
		return uiutils.RunBubbleTea(consoleui.NewModel(b, config.Prismo.GitHub.Token))
	},
}
