package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/radix"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [ZAHL...|-]",
	Short: "Dekodiert Zahldarstellungen zurück ins Dezimalsystem",
	Long: `Dekodiert eine oder mehrere Zahldarstellungen des gewählten
Stellenwertsystems in Dezimalwerte. Gruppierungszeichen im Ganzteil
werden toleriert, Exponentenschreibweise wird verstanden.

Mit "-" als einzigem Argument wird zeilenweise von stdin gelesen.
Fehlerhafte Zeilen werden auf stderr gemeldet und übersprungen; der
Exit-Status ist dann 1.

Beispiele:
  radix decode "6X,534;3000"
  radix decode FF -b hex
  radix decode "1;6e+02"
  cat zahlen.txt | radix decode -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	r, err := buildRadix()
	if err != nil {
		return err
	}

	// Decoded values are rendered through a plain decimal system so that
	// -f also shapes the output side.
	dec, err := radix.NewWithOptions("0123456789", radix.Options{Format: resolveFormat()})
	if err != nil {
		return err
	}

	return runPipeline(args, func(input string) (string, error) {
		v, err := r.Decode(input)
		if err != nil {
			return "", err
		}
		return dec.EncodeDecimal(v, "")
	})
}
