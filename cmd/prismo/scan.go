package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/prismo-bot/prismo/internal/bot"
	"github.com/prismo-bot/prismo/internal/config"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [<message>...]",
	Short: "Run one message through the bot and print the reply",
	Long: `Run one message through the bot and print the reply.

The message is handled exactly as a chat message would be: prefixed messages
dispatch to bot commands, everything else is scanned for issue references.
With no arguments the message is read from standard input, so replies can be
generated from a pipe.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		if message == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "failed to read message from stdin")
			}
			message = string(data)
		}
		if strings.TrimSpace(message) == "" {
			return errors.New("no message to scan")
		}

		b := bot.New(config.Prismo.Bot.Prefix, defaultScope())
		if err := b.Start(config.Prismo.GitHub.Token); err != nil {
			return err
		}
		defer func() {
			_ = b.Stop()
		}()

		reply, err := b.HandleMessage(context.Background(), message)
		if err != nil {
			return err
		}
		if reply == "" {
			_, _ = fmt.Fprint(os.Stderr, colors.Faint("(no reply)"), "\n")
			return nil
		}
		fmt.Println(reply)
		return nil
	},
}
