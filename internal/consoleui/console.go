// Package consoleui implements the interactive console: a terminal chat
// session with the bot for exercising commands and reference scanning
// without connecting a chat platform.
package consoleui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/prismo-bot/prismo/internal/bot"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/prismo-bot/prismo/internal/utils/uiutils"
)

var consoleKeys = []key.Binding{
	key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// exchange is one sent message together with the bot's reply to it.
type exchange struct {
	message string
	reply   string
}

type connectedMsg struct{}

type replyMsg struct {
	message string
	reply   string
}

type Model struct {
	bot     *bot.Bot
	token   string
	options []gh.Option

	input   *textinput.Model
	spinner spinner.Model
	help    help.Model

	connecting bool
	busy       bool
	quitting   bool
	pending    string
	transcript []exchange
	err        error
}

func NewModel(b *bot.Bot, token string, options ...gh.Option) Model {
	return Model{
		bot:        b,
		token:      token,
		options:    options,
		input:      newInput(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		connecting: true,
	}
}

func newInput() *textinput.Model {
	input := textinput.New("> ")
	input.Placeholder = "type !help for commands"
	return textinput.NewModel(input)
}

func (vm Model) Init() tea.Cmd {
	return tea.Batch(vm.spinner.Tick, vm.startBot)
}

func (vm Model) startBot() tea.Msg {
	if err := vm.bot.Start(vm.token, vm.options...); err != nil {
		return err
	}
	return connectedMsg{}
}

func (vm Model) send(message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := vm.bot.HandleMessage(context.Background(), message)
		if err != nil {
			return err
		}
		return replyMsg{message: message, reply: reply}
	}
}

func (vm Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		vm.err = msg
		return vm, tea.Quit
	case connectedMsg:
		vm.connecting = false
		return vm, vm.input.Init()
	case replyMsg:
		vm.busy = false
		vm.pending = ""
		vm.transcript = append(vm.transcript, exchange{message: msg.message, reply: msg.reply})
		// Start over with an empty prompt for the next message.
		vm.input = newInput()
		return vm, vm.input.Init()
	case spinner.TickMsg:
		var cmd tea.Cmd
		vm.spinner, cmd = vm.spinner.Update(msg)
		return vm, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			vm.quitting = true
			return vm, tea.Quit
		case "enter":
			if vm.connecting || vm.busy {
				return vm, nil
			}
			message, err := vm.input.Value()
			if err != nil {
				return vm, uiutils.ErrCmd(err)
			}
			message = strings.TrimSpace(message)
			switch message {
			case "":
				vm.input = newInput()
				return vm, vm.input.Init()
			case "exit", "quit":
				vm.quitting = true
				return vm, tea.Quit
			}
			vm.busy = true
			vm.pending = message
			return vm, vm.send(message)
		}
	}
	if !vm.connecting && !vm.busy && !vm.quitting {
		_, cmd := vm.input.Update(msg)
		return vm, cmd
	}
	return vm, nil
}

func (vm Model) View() string {
	var ss []string
	if vm.connecting {
		ss = append(ss, colors.ProgressStyle.Render(vm.spinner.View()+"Connecting to GitHub..."))
	} else {
		ss = append(ss, colors.SuccessStyle.Render("✓ Connected to GitHub"))
	}
	for _, ex := range vm.transcript {
		ss = append(ss, "")
		ss = append(ss, colors.QuestionStyle.Render("> ")+ex.message)
		if ex.reply == "" {
			ss = append(ss, colors.FaintStyle.Render("(no reply)"))
		} else {
			ss = append(ss, ex.reply)
		}
	}
	switch {
	case vm.connecting:
	case vm.busy:
		ss = append(ss, "")
		ss = append(ss, colors.QuestionStyle.Render("> ")+vm.pending)
		ss = append(ss, colors.ProgressStyle.Render(vm.spinner.View()+"Looking that up..."))
	case vm.quitting:
		ss = append(ss, "")
		ss = append(ss, colors.FaintStyle.Render("bye!"))
	default:
		ss = append(ss, "")
		// The prompt view carries its own trailing newline.
		ss = append(ss, strings.TrimSpace(vm.input.View()))
		ss = append(ss, vm.help.ShortHelpView(consoleKeys))
	}

	var ret string
	if len(ss) != 0 {
		ret = lipgloss.NewStyle().MarginTop(1).MarginBottom(1).MarginLeft(2).Render(
			lipgloss.JoinVertical(0, ss...),
		) + "\n"
	}
	if vm.err != nil {
		ret += uiutils.RenderError(vm.err)
	}
	return ret
}

func (vm Model) ExitError() error {
	if vm.err != nil {
		return uiutils.ErrExitSilently{ExitCode: 1}
	}
	return nil
}
