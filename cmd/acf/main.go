// Command acf builds field group definitions into the documents the host
// plugin loads.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "acf:", err)
		os.Exit(1)
	}
}
