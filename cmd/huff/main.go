// Command huff compresses a file with static Huffman coding.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/statichuff"
)

var (
	flagInput   = flag.String("i", "", "input file to compress (required)")
	flagOutput  = flag.String("o", "", "output file (required)")
	flagVerbose = flag.Bool("v", false, "print compression statistics")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: huff -i infile -o outfile [-v]\n")
	fmt.Fprintf(os.Stderr, "       huff -h\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huff: ")
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

func run(inPath string, outPath string) (stats huffman.Stats, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return stats, &huffman.OpenError{Op: "read", Path: inPath, Err: err}
	}
	defer in.Close()

	bw, err := huffman.CreateBitWriter(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := bw.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	return huffman.CompressTo(bw, in)
}
