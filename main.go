package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	c := initConfig()
	logx.MustSetup(c.Log)
	defer logx.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	d, err := NewDriver(c, os.Stdout)
	logx.Must(err)

	if err = d.Run(ctx); err != nil {
		logx.Error(err)
		cancel()
		logx.Close()
		os.Exit(1)
	}
}
