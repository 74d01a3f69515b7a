// Command rdftab ingests an RDF/XML document from STDIN and writes its
// triples as a relational `statements` table in a SQLite database.
//
// Usage:
//
//	rdftab [-h|--help] [-r|--round-trip] TARGET.db
//
// The database's `prefix` table must already be populated; it is read-only
// to rdftab. With -r/--round-trip, rdftab additionally reconstructs the
// original triples from what it just inserted and prints them to STDOUT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ontodev/rdftabgo"
)

func main() {
	var (
		help       bool
		help2      bool
		roundTrip  bool
		roundTrip2 bool
	)
	flag.BoolVar(&help, "h", false, "print usage and exit")
	flag.BoolVar(&help2, "help", false, "print usage and exit")
	flag.BoolVar(&roundTrip, "r", false, "reconstruct and print triples after ingestion")
	flag.BoolVar(&roundTrip2, "round-trip", false, "reconstruct and print triples after ingestion")
	flag.Usage = usage
	flag.Parse()

	if help || help2 {
		usage()
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	dbPath := flag.Arg(0)

	if err := run(dbPath, roundTrip || roundTrip2); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dbPath string, roundTrip bool) error {
	store, err := rdftab.NewStoreSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return rdftab.Ingest(os.Stdin, store, roundTrip, os.Stdout)
}

func usage() {
	log.SetFlags(0)
	fmt.Fprintf(os.Stderr, `Usage: %s [-h|--help] [-r|--round-trip] TARGET.db

Reads an RDF/XML document from STDIN and writes its triples into
TARGET.db's "statements" table. TARGET.db's "prefix" table must already
be populated.

  -h, --help         print this message and exit
  -r, --round-trip   also reconstruct and print the ingested triples
`, os.Args[0])
}
