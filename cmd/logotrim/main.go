package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ride-share-app/logotrim"
	"github.com/ride-share-app/logotrim/utils"
	"golang.org/x/term"
)

// The paths are relative to the web application root.
const (
	// inputFile is the logo exported by the designers.
	inputFile = "public/logo.png"
	// fallbackFile is used when no PNG logo is available.
	fallbackFile = "public/logo.jpg"
	// outputFile is the Next.js app icon picked up as favicon.
	outputFile = "src/app/icon.png"
)

func main() {
	utils.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

	now := time.Now()
	res := logotrim.Run(logotrim.Config{
		Input:    inputFile,
		Fallback: fallbackFile,
		Output:   outputFile,
	})
	printStatus(res)

	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printStatus displays the relevant information about the processed logo.
func printStatus(res logotrim.Result) {
	switch res.Outcome {
	case logotrim.Written:
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(res.Message(), utils.SuccessMessage),
			utils.DecorateText(fmt.Sprintf("(%s %dx%d px, content %v)",
				res.Format, res.Size, res.Size, res.Bounds), utils.DefaultMessage),
		)
	case logotrim.EmptyContent:
		fmt.Fprintln(os.Stderr, utils.DecorateText(res.Message(), utils.StatusMessage))
	default:
		fmt.Fprintln(os.Stderr, utils.DecorateText(res.Message(), utils.ErrorMessage))
	}
}
