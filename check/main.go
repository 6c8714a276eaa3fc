package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"

	bitinv "github.com/Prokopiy19/Bit-Inversion"
)

var opts struct {
	size    int
	modulus uint64
	threads int
	minJob  int
	print   int
	runs    int
	mmap    bool
	random  bool
	http    string
}

func main() {
	cmd := &cobra.Command{
		Use:           "check",
		Short:         "compare sequential and parallel bit inversion",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.size, "size", 100000000, "buffer size in bytes")
	flags.Uint64Var(&opts.modulus, "modulus", 9, "flip every bit whose index is a multiple of this")
	flags.IntVar(&opts.threads, "threads", 0, "maximum worker count (0 uses every cpu)")
	flags.IntVar(&opts.minJob, "min-job", bitinv.MinJobSize, "minimum bytes per worker")
	flags.IntVar(&opts.print, "print", 4, "number of leading bytes to dump")
	flags.IntVar(&opts.runs, "runs", 1, "number of times to repeat each inversion")
	flags.BoolVar(&opts.mmap, "mmap", false, "back the buffer with an anonymous mapping")
	flags.BoolVar(&opts.random, "random", false, "fill the buffer with random bytes instead of zeros")
	flags.StringVar(&opts.http, "http", "", "serve timings on this address")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() (err error) {
	if opts.size <= 0 {
		return errs.New("size must be positive: %d", opts.size)
	}
	if opts.modulus == 0 {
		return errs.New("modulus must be positive")
	}
	if opts.runs <= 0 {
		return errs.New("runs must be positive: %d", opts.runs)
	}
	if opts.http != "" {
		go http.ListenAndServe(opts.http, monhandler.Handler{})
	}

	buf, release, err := allocate(opts.size, opts.mmap)
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() {
		if rerr := release(); err == nil {
			err = errs.Wrap(rerr)
		}
	}()

	if opts.random {
		var rng pcg.T
		for i := range buf {
			buf[i] = byte(rng.Uint64())
		}
	}

	orig := append([]byte(nil), buf...)
	pred := bitinv.EveryNth(opts.modulus)
	sched := bitinv.Scheduler{MaxThreads: opts.threads, MinJobSize: opts.minJob}

	fmt.Printf("size: %d threads: %d\n", len(buf), sched.Threads(len(buf)))
	dump(buf)

	for i := 0; i < opts.runs; i++ {
		if err := compare(sched, buf, orig, pred); err != nil {
			return errs.New("run %d: %v", i, err)
		}
	}

	stats()
	return nil
}

// compare runs the sequential inversion and then the parallel one over buf,
// which must hold orig. The parallel pass has to undo the sequential one, and
// a parallel pass on its own has to reproduce the sequential result. buf holds
// orig again on success.
func compare(sched bitinv.Scheduler, buf, orig []byte, pred bitinv.Predicate) error {
	if err := sequential(buf, pred); err != nil {
		return errs.Wrap(err)
	}
	dump(buf)
	seq := append([]byte(nil), buf...)

	if err := parallel(sched, buf, pred); err != nil {
		return errs.Wrap(err)
	}
	dump(buf)

	if !bytes.Equal(buf, orig) {
		return errs.New("parallel inversion did not undo sequential")
	}

	if err := parallel(sched, buf, pred); err != nil {
		return errs.Wrap(err)
	}
	if !bytes.Equal(buf, seq) {
		return errs.New("parallel inversion does not match sequential")
	}
	copy(buf, orig)

	return nil
}

func sequential(buf []byte, pred bitinv.Predicate) (err error) {
	defer mon.Start().Stop(&err)
	bitinv.InvertSequential(buf, pred)
	return nil
}

func parallel(sched bitinv.Scheduler, buf []byte, pred bitinv.Predicate) (err error) {
	defer mon.Start().Stop(&err)
	sched.Invert(buf, pred)
	return nil
}

func dump(buf []byte) {
	n := opts.print
	if n > len(buf) {
		n = len(buf)
	}
	if n > 0 {
		fmt.Printf("%s\n\n", bitinv.FormatBits(buf[:n]))
	}
}

func stats() {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"name", "runs", "total", "average"})

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		tw.Append([]string{
			name,
			fmt.Sprint(state.Total()),
			time.Duration(sum).String(),
			time.Duration(avg).String(),
		})
		return true
	})

	tw.Render()
}
