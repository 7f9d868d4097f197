// File: cmd/freelist-demo/main.go
// Demonstrates the packet freelist: one allocate/mutate/release cycle,
// then a producer/consumer pipeline moving packets through a lock-free
// ring into a FIFO drain stage. Optionally serves pool metrics.
// License: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"net/http"
	"runtime"

	"github.com/eapache/queue"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fastpath/pktpool/freelist"
	"github.com/fastpath/pktpool/metrics"
)

func main() {
	var (
		capacity    = flag.Int("capacity", freelist.DefaultCapacity, "fixed pool capacity")
		pipelined   = flag.Int("pipeline", 10000, "packets to push through the pipeline stage")
		metricsAddr = flag.String("metrics-addr", "", "serve prometheus metrics on this address (empty: disabled)")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	pool := freelist.New(*capacity)
	pool.Init()
	defer pool.Close()
	logger.Info("pool initialized",
		zap.Int("capacity", pool.Capacity()),
		zap.Int("available", pool.Available()))

	shared := freelist.Share(pool)

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector("demo", shared))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		logger.Info("serving metrics", zap.String("addr", *metricsAddr))
	}

	singleCycle(logger, shared)
	pipeline(logger, shared, *pipelined)

	st := shared.Stats()
	logger.Info("final accounting",
		zap.Int("available", st.Available),
		zap.Int64("allocates", st.TotalAllocates),
		zap.Int64("releases", st.TotalReleases),
		zap.Int64("releasedBytes", st.ReleasedBytes),
		zap.Int("highWater", st.HighWater))
}

// singleCycle walks one packet through borrow, mutate, return.
func singleCycle(logger *zap.Logger, pool *freelist.SharedPool) {
	pkt := pool.Allocate()
	logger.Info("allocated packet",
		zap.Uint16("length", pkt.Length),
		zap.Uint8("data[0]", pkt.Data[0]))

	pkt.Length = 1
	pkt.Data[0] = 42
	logger.Info("mutated packet",
		zap.Uint16("length", pkt.Length),
		zap.Uint8("data[0]", pkt.Data[0]))

	pool.Release(pkt)
	logger.Info("released packet", zap.Int("available", pool.Available()))
}

// pipeline pushes n packets producer -> ring -> FIFO drain -> pool.
func pipeline(logger *zap.Logger, pool *freelist.SharedPool, n int) {
	ring := freelist.NewHandoffRing(256)

	go func() {
		for i := 0; i < n; i++ {
			pkt := pool.Allocate()
			pkt.Set([]byte(fmt.Sprintf("packet %d", i)))
			for !ring.Enqueue(pkt) {
				runtime.Gosched()
			}
		}
	}()

	fifo := queue.New()
	var drainedBytes int
	for drained := 0; drained < n; {
		pkt, ok := ring.Dequeue()
		if !ok {
			runtime.Gosched()
			continue
		}
		fifo.Add(pkt)
		// Drain in arrival order once a small burst has built up.
		for fifo.Length() > 16 {
			p := fifo.Remove().(*freelist.Packet)
			drainedBytes += len(p.Payload())
			pool.Release(p)
		}
		drained++
	}
	for fifo.Length() > 0 {
		p := fifo.Remove().(*freelist.Packet)
		drainedBytes += len(p.Payload())
		pool.Release(p)
	}

	logger.Info("pipeline complete",
		zap.Int("packets", n),
		zap.Int("bytes", drainedBytes),
		zap.Int("available", pool.Available()))
}
