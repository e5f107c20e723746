// Command dehuff decompresses a file produced by huff.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/statichuff"
)

var (
	flagInput   = flag.String("i", "", "input file to decompress (required)")
	flagOutput  = flag.String("o", "", "output file (required)")
	flagVerbose = flag.Bool("v", false, "print decompression statistics")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dehuff -i infile -o outfile [-v]\n")
	fmt.Fprintf(os.Stderr, "       dehuff -h\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dehuff: ")
	flag.Usage = usage
	flag.Parse()

	if *flagInput == "" || *flagOutput == "" {
		log.Printf("[ERROR] -i and -o are required")
		usage()
		os.Exit(1)
	}

	stats, err := run(*flagInput, *flagOutput)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	if *flagVerbose {
		log.Printf("[INFO] %s", stats)
	}
}

// run validates the header and tree before the output file is created, so
// that a bad input never clobbers an existing output.
func run(inPath string, outPath string) (stats huffman.Stats, err error) {
	zr, err := huffman.OpenReader(inPath)
	if err != nil {
		return stats, err
	}
	defer zr.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return stats, &huffman.OpenError{Op: "write", Path: outPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	w := bufio.NewWriter(out)
	if _, err = io.Copy(w, zr); err != nil {
		return zr.Stats(), err
	}
	return zr.Stats(), w.Flush()
}
