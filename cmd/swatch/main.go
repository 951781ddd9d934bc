package main

import (
	"fmt"
	"os"

	"swatch/internal/logger"
	"swatch/internal/version"
	"swatch/pkg/common"
	"swatch/pkg/config"
	"swatch/pkg/gui/layout"
	"swatch/pkg/gui/overlays"
	"swatch/pkg/gui/theme"
	"swatch/pkg/palette"
	"swatch/pkg/render"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color(theme.AccentColor))

type model struct {
	layout     *layout.Layout
	viewport   viewport.Model
	keys       *common.KeyMap
	footer     *common.Footer
	helpDialog *overlays.HelpDialog

	pal         palette.Palette
	resolvedHex bool // captions show composited hex instead of sources
	showHelp    bool
	ready       bool // false until the first WindowSizeMsg
}

func initialModel(cfg *config.Config, profile string) model {
	keys := common.NewKeyMap()

	footer := common.NewFooter(keys)
	footer.SetProfile(profile)

	return model{
		keys:        keys,
		footer:      footer,
		helpDialog:  overlays.NewHelpDialog(keys),
		pal:         palette.Default(),
		resolvedHex: cfg.UI.ResolvedHex,
	}
}

// Init implements tea.Model. The palette is static; there is nothing
// to kick off.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.layout = layout.New(msg.Width, msg.Height)
			m.viewport = viewport.New(msg.Width, m.layout.ViewportHeight())
			m.ready = true
		} else {
			m.layout.Update(msg.Width, msg.Height)
			m.viewport.Width = msg.Width
			m.viewport.Height = m.layout.ViewportHeight()
		}
		m.footer.SetSize(msg.Width, layout.FooterRows)
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key closes the help overlay.
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.ResolvedHex):
			m.resolvedHex = !m.resolvedHex
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	// Everything else, arrow and page scrolling included, belongs to
	// the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refreshContent re-renders the palette into the viewport. Called on
// resize and whenever a caption mode toggles.
func (m *model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.layout.RenderPalette(m.pal, m.resolvedHex))
	logger.LogRenderPass(m.layout.GetWidth(), m.layout.GetHeight(), len(m.pal), m.pal.EntryCount())
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	titleBar := lipgloss.NewStyle().
		PaddingTop(layout.TopPaddingRows).
		PaddingLeft(layout.HorizontalMargin).
		Render(titleStyle.Render("Design System Palette"))

	bottomComponents := []string{
		titleBar,
		m.viewport.View(),
		m.footer.View(),
	}
	for i := 0; i < layout.BottomMarginRows; i++ {
		bottomComponents = append(bottomComponents, "")
	}
	mainView := lipgloss.JoinVertical(lipgloss.Left, bottomComponents...)

	if m.showHelp {
		m.helpDialog.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return lipgloss.Place(
			m.layout.GetWidth(),
			m.layout.GetHeight(),
			lipgloss.Center,
			lipgloss.Center,
			m.helpDialog.View(),
		)
	}

	return mainView
}

// applyProfile forces the configured color profile, or detects one
// when set to auto. Returns the name shown in the footer.
func applyProfile(setting string) string {
	switch setting {
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
		return "truecolor"
	case "256":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return "256color"
	case "16":
		lipgloss.SetColorProfile(termenv.ANSI)
		return "16color"
	default:
		return profileName(termenv.ColorProfile())
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256color"
	case termenv.ANSI:
		return "16color"
	default:
		return "monochrome"
	}
}

func runViewer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Logger.FilePath != "" {
		if err := logger.Init(cfg.Logger.FilePath, cfg.Logger.Level); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		defer func() { _ = logger.Close() }()
	}

	profile := applyProfile(cfg.UI.Profile)

	// The design system is dark; render for a dark scheme even when
	// the terminal claims otherwise.
	lipgloss.SetHasDarkBackground(true)

	if l := logger.Get(); l != nil {
		l.LogAppStart(version.Short(), configPath, profile)
	}

	p := tea.NewProgram(initialModel(cfg, profile), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func runList(noColor bool) error {
	colorize := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	return render.Plain(os.Stdout, palette.Default(), palette.MustHex(theme.Backdrop), colorize)
}

func main() {
	var (
		showVersion bool
		configPath  string
	)

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A terminal viewer for the design system color palette",
		Long: `Swatch renders the design system's color palette in the terminal:
backgrounds, text colors, accents, status colors and glassmorphic
effects, each as a labelled swatch showing its hex value and opacity.

Translucent entries are composited over the dark backdrop, since
terminal cells carry no alpha channel. Press x inside the viewer to
flip captions between authored sources and the composited hex values.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Println(version.Short())
				return nil
			}
			return runViewer(configPath)
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the palette as a plain text listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runList(noColor)
		},
	}
	listCmd.Flags().Bool("no-color", false, "Disable colorized output")
	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
