package observability

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset    = "\033[0m"
	colorNeonCyan = "\033[96m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

// PrintBanner draws the startup logo centered on the terminal.
func PrintBanner() {
	banner := `
       __                                     __
  ____/ /__  ___  ____  ________  ____ ______/ /_
 / __  / _ \/ _ \/ __ \/ ___/ _ \/ __ ` + "`" + `/ ___/ __ \
/ /_/ /  __/  __/ /_/ (__  )  __/ /_/ / /  / / / /
\__,_/\___/\___/ .___/____/\___/\__,_/_/  /_/ /_/
              /_/
          >> GROUNDED RESEARCH AGENT <<
`

	width := termWidth()
	for _, line := range strings.Split(banner, "\n") {
		padding := (width - len(line)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%s%s%s\n", strings.Repeat(" ", padding), colorNeonCyan, line, colorReset)
	}
}
