package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var bannerColor = color.New(color.FgHiMagenta, color.Bold)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	_, _ = bannerColor.Fprint(os.Stdout, ` __  __        _ _      ___ _
|  \/  |___ __| (_)__ _/ __| |_ __ _ _ __  _ __
| |\/| / -_) _`+"`"+` | / _`+"`"+` \__ \  _/ _`+"`"+` | '  \| '_ \
|_|  |_\___\__,_|_\__,_|___/\__\__,_|_|_|_| .__/
                                          |_|
`)
	fmt.Fprintln(os.Stdout)
}
