package uiutils

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/prismo-bot/prismo/internal/gh"
)

const noGitHubToken = `# ERROR: No GitHub Token

` + "`prismo`" + ` needs a GitHub API token to talk to the GitHub API. There are two ways to provide one:

1. Set the ` + "`PRISMO_GITHUB_TOKEN`" + ` (or ` + "`GITHUB_TOKEN`" + `) environment variable to a Personal Access Token.
2. Set ` + "`github.token`" + ` in the config file (e.g. ` + "`~/.config/prismo/config.yaml`" + `).

The token only needs read access to the repositories you want to look up.
`

func RenderError(err error) string {
	var style string
	if lipgloss.HasDarkBackground() {
		style = styles.DarkStyle
	} else {
		style = styles.LightStyle
	}
	var markdownText string
	if errors.Is(err, gh.ErrNoGitHubToken) {
		markdownText = noGitHubToken
	}

	if markdownText != "" {
		if out, rerr := glamour.Render(markdownText, style); rerr == nil {
			return out
		}
		// If there's an error, fallback to the plaintext message.
	}
	// This is a placeholder for a more sophisticated error renderer.
	// For now, we just print the error message.
	return fmt.Sprintf("error: %s\n", err)
}
