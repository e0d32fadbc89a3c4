// The MIT License (MIT)
//
// Copyright (c) 2026 Mihai Pomarlan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// baallbench times classification over randomly generated stores.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mpomarlan/baall"
)

func main() {
	numClasses := flag.Uint("classes", 1000, "number of classes")
	numIndividuals := flag.Uint("individuals", 5000, "number of individuals")
	numProperties := flag.Uint("properties", 50, "number of properties")
	numQueries := flag.Int("queries", 100, "number of query classes")
	workers := flag.Int("workers", 0, "classification workers, 0 means GOMAXPROCS")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	builder := baall.RandomStoreBuilder{
		NumClasses:       *numClasses,
		NumIndividuals:   *numIndividuals,
		NumProperties:    *numProperties,
		NumSubclassEdges: *numClasses * 2,
		NumMemberships:   *numIndividuals * 2,
		NumPropertyEdges: *numIndividuals * 4,
	}

	fmt.Println("Building random store ...")
	start := time.Now()
	store, err := builder.Build(rng)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("... Done after %v\n", time.Since(start))

	queries := make([]*baall.QueryClass, *numQueries)
	for i := range queries {
		queries[i] = builder.RandomQuery(rng, fmt.Sprintf("q:Bench%d", i))
	}

	session := baall.NewSession(store, baall.WithWorkers(*workers))
	fmt.Printf("Classifying %d query classes ...\n", len(queries))
	start = time.Now()
	results, err := session.DefineAndClassifyAll(queries)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	var unsatisfiable int
	for _, result := range results {
		if result.Unsatisfiable {
			unsatisfiable++
		}
	}
	fmt.Printf("... Done after %v (%v per query, %d unsatisfiable)\n",
		elapsed, elapsed/time.Duration(len(results)), unsatisfiable)
}
