package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/radix/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Zeigt das Zielsystem in einer Demo-Oberfläche",
	Long: `Startet die Demo-Oberfläche für das gewählte Stellenwertsystem.

Die Demo zeigt:
  - Multiplikationstabelle mit Teilbarkeitsfärbung
  - Mathematische und physikalische Konstanten
  - Stammbrüche von 1/2 bis 1/Basis
  - Datum und Uhrzeit als laufende Uhr

Navigation:
  Tab        - Zwischen Ansichten wechseln
  Pfeiltasten - Tabelle scrollen
  Ctrl+C     - Beenden

Beispiele:
  radix demo               # Dutzendsystem
  radix demo -b hex
  radix demo -b 7`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	r, err := buildRadix()
	if err != nil {
		return err
	}

	audit, closeAudit, err := auditLogger()
	if err != nil {
		return err
	}
	defer closeAudit()

	p := tea.NewProgram(
		tui.NewDemo(r, audit),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		printError("Demo", err)
		return err
	}
	return nil
}
