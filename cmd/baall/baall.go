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

// baall loads a knowledge base document, optionally classifies the query
// classes of a query document, and lists class hierarchies.
//
// Usage:
//
//	baall -kb food.yaml -queries queries.yaml
//	baall -kb food.yaml -ancestors baall:Char -descendants baall:Food
//	baall -kb food.yaml -queries queries.yaml -metrics :9090
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mpomarlan/baall"
)

func main() {
	kbPath := flag.String("kb", "", "knowledge base document (YAML), required")
	queryPath := flag.String("queries", "", "query document (YAML)")
	ancestorsOf := flag.String("ancestors", "", "list ancestors of a class")
	descendantsOf := flag.String("descendants", "", "list descendants of a class")
	timeout := flag.Duration("timeout", 0, "classification bound, 0 means none")
	workers := flag.Int("workers", 0, "classification workers, 0 means GOMAXPROCS")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *kbPath == "" {
		fmt.Fprintln(os.Stderr, "missing -kb")
		flag.Usage()
		os.Exit(2)
	}

	if *metricsAddr != "" {
		registry := prometheus.NewRegistry()
		recorder, err := baall.NewPrometheusRecorder(registry)
		if err != nil {
			logger.Error("metrics setup failed", "error", err)
			os.Exit(1)
		}
		baall.SetMetricsRecorder(recorder)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	doc, err := baall.ParseDocumentFile(*kbPath)
	if err != nil {
		logger.Error("cannot read knowledge base", "path", *kbPath, "error", err)
		os.Exit(1)
	}
	start := time.Now()
	store, table, err := doc.Build()
	if err != nil {
		logger.Error("cannot build store", "path", *kbPath, "error", err)
		os.Exit(1)
	}
	logger.Info("store populated",
		"classes", store.NumClasses(), "individuals", store.NumIndividuals(),
		"prefixes", strings.Join(table.Prefixes(), ","), "elapsed", time.Since(start))

	session := baall.NewSession(store,
		baall.WithLogger(logger), baall.WithTimeout(*timeout), baall.WithWorkers(*workers))

	if *queryPath != "" {
		queryDoc, err := baall.ParseQueryDocumentFile(*queryPath)
		if err != nil {
			logger.Error("cannot read query document", "path", *queryPath, "error", err)
			os.Exit(1)
		}
		queries := make([]*baall.QueryClass, 0, len(queryDoc.Queries))
		for _, decl := range queryDoc.Queries {
			query, err := decl.Compile()
			if err != nil {
				logger.Error("cannot compile query", "error", err)
				os.Exit(1)
			}
			queries = append(queries, query)
		}
		results, err := session.DefineAndClassifyAll(queries)
		if err != nil {
			logger.Error("classification failed", "error", err)
			os.Exit(1)
		}
		for _, result := range results {
			printResult(result)
		}
	}

	if *ancestorsOf != "" {
		list, err := session.Ancestors(*ancestorsOf)
		if err != nil {
			logger.Error("listing failed", "class", *ancestorsOf, "error", err)
			os.Exit(1)
		}
		fmt.Printf("ancestors of %s: %s\n", *ancestorsOf, strings.Join(list, ", "))
	}
	if *descendantsOf != "" {
		list, err := session.Descendants(*descendantsOf)
		if err != nil {
			logger.Error("listing failed", "class", *descendantsOf, "error", err)
			os.Exit(1)
		}
		fmt.Printf("descendants of %s: %s\n", *descendantsOf, strings.Join(list, ", "))
	}
}

func printResult(result *baall.ClassificationResult) {
	fmt.Printf("%s ≡ %s\n", result.Query, result.Expression)
	if result.Unsatisfiable {
		fmt.Printf("  unsatisfiable\n")
		return
	}
	fmt.Printf("  ancestors:   %s\n", strings.Join(result.Ancestors, ", "))
	fmt.Printf("  descendants: %s\n", strings.Join(result.Descendants, ", "))
	if len(result.Equivalents) > 0 {
		fmt.Printf("  equivalents: %s\n", strings.Join(result.Equivalents, ", "))
	}
}
