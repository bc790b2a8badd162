package main

import (
	"context"

	"coursegraph/cmd/coursegraph/commands"
	"coursegraph/lib/serviceutil"
)

func main() {
	ctx, stop := serviceutil.SignalContext(context.Background())
	defer stop()
	commands.ExecuteContext(ctx)
}
