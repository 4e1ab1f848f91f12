package main

import (
	"flag"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const unset = -1

type Config struct {
	Rows   int `json:",default=3"`
	Cols   int `json:",default=3"`
	Player int `json:",default=1"`
	// From and To bound the claimed line indexes [From, To). Unset means the
	// horizontal block of the board.
	From int `json:",default=-1"`
	To   int `json:",default=-1"`

	Color    string `json:",default=OFF"`
	Trace    string `json:",default=OFF"`
	Progress string `json:",default=ON"`

	FlushInterval time.Duration `json:",default=100ms"`
	Log           logx.LogConf
}

var (
	configFile = flag.String("f", "etc/lab.yaml", "the config file")
	rowsFlag   = flag.Int("rows", unset, "board rows, overrides the config file")
	colsFlag   = flag.Int("cols", unset, "board cols, overrides the config file")
	fromFlag   = flag.Int("from", unset, "first claimed line index")
	toFlag     = flag.Int("to", unset, "line index after the last claimed one")
	colorFlag  = flag.String("color", "", "ON/OFF, colored rendering")
	traceFlag  = flag.String("trace", "", "ON/OFF, log every move")
)

func initConfig() (c Config) {
	flag.Parse()
	conf.MustLoad(*configFile, &c)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			c.Rows = *rowsFlag
		case "cols":
			c.Cols = *colsFlag
		case "from":
			c.From = *fromFlag
		case "to":
			c.To = *toFlag
		case "color":
			c.Color = *colorFlag
		case "trace":
			c.Trace = *traceFlag
		}
	})

	return
}
