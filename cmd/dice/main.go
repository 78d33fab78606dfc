package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/dice"
)

// config holds defaults taken from the environment. Flags override them.
type config struct {
	Seed     int64  `env:"DICE_SEED"`
	LogLevel string `env:"DICE_LOG_LEVEL" envDefault:"warning"`
	NoColor  bool   `env:"NO_COLOR"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatal(errors.Wrap(err, "parse env"))
	}
	var (
		inname         string
		seed           int64
		maxq           int
		nl, echo, hist bool
		stats, verbose bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Int64Var(&seed, "seed", cfg.Seed, "random seed (default from DICE_SEED, or the current time)")
	flag.IntVar(&maxq, "max", 1000, "largest number of dice in one term (0 for no limit)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print canonical notation before each result")
	flag.BoolVar(&hist, "history", false, "print every die rolled")
	flag.BoolVar(&stats, "stats", false, "print the number of outcomes and bits of entropy")
	flag.BoolVar(&verbose, "v", false, "log parsing at debug level")
	flag.Parse()

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatal(errors.Wrap(err, "DICE_LOG_LEVEL"))
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logrus.SetLevel(lvl)
	if cfg.NoColor {
		color.NoColor = true
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.Debugf("rolling with seed %d", seed)

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		logrus.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	opts := []dice.ParseOption{dice.MaxQuantity(maxq)}
	if nl {
		opts = append(opts, dice.StopOn('\n'))
	}
	var p []*dice.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				logrus.Fatal(err)
			}
			in.UnreadRune()
			a, err := dice.Parse(in, opts...)
			if err != nil {
				logrus.Fatal(errors.Wrapf(err, "expression %d", len(p)+1))
			}
			p = append(p, a)
		}
	}

	roller := dice.NewRoller(dice.NewRandGenerator(seed))
	var acc dice.DiceAccumulator
	for _, a := range p {
		if echo {
			fmt.Printf("%v : ", a)
		}
		h, err := roller.Roll(a)
		if err != nil {
			fmt.Println(errors.Wrapf(err, "rolling %v", a))
			continue
		}
		fmt.Println(h.Total)
		if hist {
			for _, r := range h.Results {
				fmt.Println("\t" + history(r))
			}
		}
		if stats {
			d := acc.Transform(a)
			fmt.Printf("\t%v outcomes, %.4g bits\n", dice.Outcomes(d), dice.Entropy(d, 64))
		}
	}
}

var (
	maxface = color.New(color.FgGreen, color.Bold).SprintFunc()
	minface = color.New(color.FgRed).SprintFunc()
)

// history formats a roll result, highlighting faces at either extreme.
func history(r dice.RollResult) string {
	var b strings.Builder
	b.WriteString(r.Dice.String())
	b.WriteString(" [")
	for i, v := range r.Rolls {
		if i > 0 {
			b.WriteByte(' ')
		}
		s := strconv.Itoa(v)
		switch abs(v) {
		case r.Dice.Sides:
			s = maxface(s)
		case 1:
			s = minface(s)
		}
		b.WriteString(s)
	}
	b.WriteString("] = ")
	b.WriteString(strconv.Itoa(r.Total))
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
