// Command artree is a small demo/bench harness around [github.com/flier/artree.Tree]:
// it loads newline-separated keys from stdin, inserts them (optionally as a
// counting insert), prints basic size stats, then walks the tree and prints
// matches under a given prefix.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/flier/artree"
	"github.com/flier/artree/internal/xflag"
	"github.com/flier/artree/pkg/res"
	"github.com/flier/artree/pkg/xerrors"
)

var (
	prefix = flag.String("prefix", "", "print every key under this prefix after loading")
	count  = flag.Bool("count", false, "use the counting InsertIncrement instead of a plain Insert")

	value = xflag.Func("value", "initial uint64 value for plain inserts (ignored with -count)", func(s string) (uint64, error) {
		r := res.Wrap(strconv.ParseUint(s, 10, 64))
		return r.UnwrapOrDefault(), r.Err
	})
)

type parseError struct {
	flag string
	err  error
}

func (e *parseError) Error() string { return fmt.Sprintf("-%s: %v", e.flag, e.err) }
func (e *parseError) Unwrap() error { return e.err }

func main() {
	flag.Parse()

	t := artree.New()

	started := time.Now()
	n, err := load(t, os.Stdin)
	if err != nil {
		var pe *parseError
		if e, ok := xerrors.AsA[*parseError](err); ok {
			pe = e
		}
		if pe != nil {
			log.Fatalf("load: %v", pe)
		}
		log.Fatalf("load: %v", err)
	}
	elapsed := time.Since(started)

	log.Printf("inserted %d keys in %v (%d nodes, %d bytes)", n, elapsed, t.NodeCount(), t.ByteSize())

	if *prefix != "" {
		t.VisitPrefix([]byte(*prefix), func(key []byte, value artree.Value) bool {
			fmt.Printf("%s\t%d\n", key, value.Uint())
			return true
		})
	}
}

// load reads one key per line from r and inserts each into t, returning the
// number of keys inserted.
func load(t *artree.Tree, r *os.File) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		key := scanner.Bytes()
		if len(key) == 0 {
			continue
		}

		var err error
		if *count {
			_, _, err = t.InsertIncrement(key, artree.IncrementWhole)
		} else {
			_, _, err = t.Insert(key, artree.UintValue(*value))
		}
		if err != nil {
			return n, &parseError{flag: "key", err: err}
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}
	return n, nil
}
