package display

import (
	"fmt"
	"os"

	"github.com/minha12/countimages/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `                       _   _
  ___ ___  _   _ _ __ | |_(_)_ __ ___   __ _  __ _  ___  ___
 / __/ _ \| | | | '_ \| __| | '_ `+"`"+` _ \ / _`+"`"+` |/ _`+"`"+` |/ _ \/ __|
| (_| (_) | |_| | | | | |_| | | | | | | (_| | (_| |  __/\__ \
 \___\___/ \__,_|_| |_|\__|_|_| |_| |_|\__,_|\__, |\___||___/
                                             |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
