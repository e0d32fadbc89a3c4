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

package baall

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the instrumentation surface of the package. The default is a
// no-op; installing a Prometheus-backed recorder is optional.
type Recorder interface {
	IncStoreAssert(op string)
	IncClassification(success bool)
	ObserveClassificationSeconds(success bool, seconds float64)
	IncCacheLookup(hit bool)
}

// noopRecorder implements Recorder with no-ops.
type noopRecorder struct{}

func (n *noopRecorder) IncStoreAssert(string)                      {}
func (n *noopRecorder) IncClassification(bool)                     {}
func (n *noopRecorder) ObserveClassificationSeconds(bool, float64) {}
func (n *noopRecorder) IncCacheLookup(bool)                        {}

var (
	recorderMu sync.RWMutex
	recorder   Recorder = &noopRecorder{}
)

// Metrics returns the current recorder.
func Metrics() Recorder {
	recorderMu.RLock()
	defer recorderMu.RUnlock()
	return recorder
}

// SetMetricsRecorder swaps the recorder implementation.
func SetMetricsRecorder(r Recorder) {
	recorderMu.Lock()
	defer recorderMu.Unlock()
	recorder = r
}

// timeClassification times one classification pass.
func timeClassification() func(success bool) {
	start := time.Now()
	return func(success bool) {
		dur := time.Since(start).Seconds()
		Metrics().IncClassification(success)
		Metrics().ObserveClassificationSeconds(success, dur)
	}
}

// promRecorder is the Prometheus-backed Recorder.
type promRecorder struct {
	asserts         *prometheus.CounterVec
	classifications *prometheus.CounterVec
	seconds         *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
}

// NewPrometheusRecorder builds a Recorder that registers its collectors with
// the given registry. Pass the result to SetMetricsRecorder to enable it.
func NewPrometheusRecorder(registry prometheus.Registerer) (Recorder, error) {
	p := &promRecorder{
		asserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baall_store_asserts_total",
			Help: "Total number of successful store assertions",
		}, []string{"op"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baall_classifications_total",
			Help: "Total number of classification passes",
		}, []string{"success"}),
		seconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "baall_classification_seconds",
			Help:    "Classification pass duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"success"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baall_classification_cache_total",
			Help: "Classification cache lookups by outcome",
		}, []string{"outcome"}),
	}
	for _, collector := range []prometheus.Collector{p.asserts, p.classifications, p.seconds, p.cacheLookups} {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *promRecorder) IncStoreAssert(op string) {
	p.asserts.WithLabelValues(op).Inc()
}

func (p *promRecorder) IncClassification(success bool) {
	p.classifications.WithLabelValues(fmt.Sprintf("%t", success)).Inc()
}

func (p *promRecorder) ObserveClassificationSeconds(success bool, seconds float64) {
	p.seconds.WithLabelValues(fmt.Sprintf("%t", success)).Observe(seconds)
}

func (p *promRecorder) IncCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	p.cacheLookups.WithLabelValues(outcome).Inc()
}
