//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/markkurossi/bignum/arith"
	"github.com/markkurossi/bignum/mpint"
	"github.com/markkurossi/bignum/timing"
	"github.com/markkurossi/text/superscript"
)

var (
	verbose = false
)

// Debugf prints debug output if verbose output is enabled.
func Debugf(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf(format, a...)
}

func main() {
	width := flag.Int("w", 64, "word size in bits: 8, 16, 32, or 64")
	base := flag.Int("base", 10, "output base: 10 or 16")
	bench := flag.Int("bench", 0, "run the operation `N` times and print timing")
	fVerbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] op a [b [m]]\n\nOperations:\n", os.Args[0])
		for _, op := range ops {
			fmt.Fprintf(flag.CommandLine.Output(), "  %-7s%s\n",
				op.name, op.usage)
		}
		fmt.Fprintf(flag.CommandLine.Output(), "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	verbose = *fVerbose

	if *base != 10 && *base != 16 {
		log.Fatalf("unsupported output base %d", *base)
	}
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var err error
	switch *width {
	case 8:
		err = run[uint8](args, *base, *bench)
	case 16:
		err = run[uint16](args, *base, *bench)
	case 32:
		err = run[uint32](args, *base, *bench)
	case 64:
		err = run[uint64](args, *base, *bench)
	default:
		err = fmt.Errorf("unsupported word size %d", *width)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run[W arith.Word](args []string, base, bench int) error {
	t := timing.NewTiming("Words", "Bits")

	op, operands, err := parseArgs[W](args)
	if err != nil {
		return err
	}
	Debugf("Word: 2%s\n", superscript.Itoa(arith.Bits[W]()))
	for idx, o := range operands {
		Debugf("%c: %v (0x%x), %d words\n", 'a'+idx, o, o, len(o.Words()))
	}
	t.Sample("Parse", []string{count(operands), bits(operands)})

	result, err := op.eval(operands)
	if err != nil {
		return err
	}
	t.Sample(op.name, []string{count(result), bits(result)})

	if bench > 0 {
		sample := t.Sample("Bench", []string{fmt.Sprintf("%d", bench), ""})
		for i := 0; i < bench; i++ {
			if _, err := op.eval(operands); err != nil {
				return err
			}
		}
		sample.End = time.Now()
		sample.AbsSubSample(op.name,
			sample.End.Sub(sample.Start)/time.Duration(bench))
	}

	for _, r := range result {
		fmt.Println(r.Text(base))
	}
	if bench > 0 || verbose {
		t.Print(os.Stdout)
	}
	return nil
}

func count[W arith.Word](values []mpint.Int[W]) string {
	var n int
	for _, v := range values {
		n += len(v.Words())
	}
	return fmt.Sprintf("%d", n)
}

func bits[W arith.Word](values []mpint.Int[W]) string {
	var n int
	for _, v := range values {
		n = max(n, v.BitLen())
	}
	return fmt.Sprintf("%d", n)
}
