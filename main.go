package main

import (
	"github.com/gogf/gf/v2/os/gctx"

	"github.com/VINKAS7/Rag-WebApp/internal/cmd"
)

func main() {
	cmd.Main.Run(gctx.GetInitCtx())
}
