package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/HuXin0817/dots-and-boxes-lab/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-lab/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-lab/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-lab/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

// Driver claims a fixed run of lines on a fresh board for one player and
// writes a drawing of the board after every claim.
type Driver struct {
	Board   *chess.Board
	GameUid message.GameUid
	Player  chess.Player
	From    int
	To      int
	Color   model.Config
	Trace   model.Config

	progress io.Writer
	frames   *pusher.Pusher[string]
}

func NewDriver(c Config, out io.Writer) (*Driver, error) {
	b, err := chess.NewBoard(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}

	if c.Player < int(chess.Player1) || c.Player > int(chess.Player2) {
		return nil, fmt.Errorf("%w: %d", chess.InvalidPlayerErr, c.Player)
	}
	player := chess.Player(c.Player)

	from, to := c.From, c.To
	if from == unset {
		from = b.VerticalLinesCount()
	}
	if to == unset {
		to = b.LinesCount()
	}
	if from < 0 || to > b.LinesCount() || from > to {
		return nil, fmt.Errorf("%w: sequence [%d, %d) on %d lines", chess.LineIndexOutOfRangeErr, from, to, b.LinesCount())
	}

	d := &Driver{
		Board:   b,
		GameUid: message.NewGameUid(),
		Player:  player,
		From:    from,
		To:      to,
	}

	if d.Color, err = model.ParseConfig(c.Color); err != nil {
		return nil, err
	}
	if d.Trace, err = model.ParseConfig(c.Trace); err != nil {
		return nil, err
	}
	progress, err := model.ParseConfig(c.Progress)
	if err != nil {
		return nil, err
	}
	if progress {
		d.progress = os.Stderr
	}

	d.frames = pusher.NewPusher(
		pusher.WithPushInterval[string](c.FlushInterval),
		pusher.WithPushLogic(func(frames ...string) error {
			for _, f := range frames {
				if _, err := fmt.Fprintln(out, f); err != nil {
					return err
				}
			}
			return nil
		}),
	)

	return d, nil
}

func (d *Driver) render() string {
	if d.Color {
		return d.Board.RenderColor()
	}
	return d.Board.Render()
}

// Run claims lines From..To-1 in increasing order. Frames still buffered
// when Run returns have been written out.
func (d *Driver) Run(ctx context.Context) (err error) {
	logger := logx.WithContext(ctx)
	logger.Infof("Game %s start, board %dx%d, lines [%d, %d) for %s",
		d.GameUid, d.Board.Rows(), d.Board.Cols(), d.From, d.To, d.Player)

	d.frames.Start()
	defer func() {
		if stopErr := d.frames.Stop(); err == nil {
			err = stopErr
		}
	}()

	var bar *model.Bar
	if d.progress != nil {
		bar = model.NewBar(d.progress, d.To-d.From, "Claiming lines...")
		defer func() {
			if closeErr := bar.Close(); closeErr != nil {
				logger.Error(closeErr)
			}
		}()
	}

	d.frames.AddMessages(d.render())

	for step, i := 1, d.From; i < d.To; step, i = step+1, i+1 {
		if err = ctx.Err(); err != nil {
			return err
		}

		if err = d.Board.SetLine(i, d.Player); err != nil {
			return err
		}
		d.frames.AddMessages(fmt.Sprintf("Index: %d", i), d.render())

		if d.Trace {
			m, err := message.NewMoveInformation(d.GameUid, step, d.Board, i)
			if err != nil {
				return err
			}
			logger.Info(m.String())
		}

		if bar != nil {
			if err = bar.Add(1); err != nil {
				logger.Error(err)
			}
		}
	}

	logger.Infof("Game %s done, %d lines free", d.GameUid, d.Board.FreeLinesCount())
	return nil
}
