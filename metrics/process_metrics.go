// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"os"
	"sync/atomic"

	"github.com/elastic/gosigar"
	"github.com/prometheus/client_golang/prometheus"
)

// ProcessCollector reports memory and CPU usage of the demo process through
// gosigar, which works on every platform the window front end runs on.
type ProcessCollector struct {
	pid int

	residentDesc *prometheus.Desc
	virtualDesc  *prometheus.Desc
	cpuUserDesc  *prometheus.Desc
	cpuSysDesc   *prometheus.Desc
}

// NewProcessCollector creates a ProcessCollector for the current process.
func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{
		pid: os.Getpid(),
		residentDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "process", "resident_bytes"),
			"Resident set size of the process.",
			nil, nil,
		),
		virtualDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "process", "virtual_bytes"),
			"Virtual memory size of the process.",
			nil, nil,
		),
		cpuUserDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "process", "cpu_user_milliseconds_total"),
			"User CPU time consumed by the process.",
			nil, nil,
		),
		cpuSysDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "process", "cpu_system_milliseconds_total"),
			"System CPU time consumed by the process.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ProcessCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.residentDesc
	ch <- c.virtualDesc
	ch <- c.cpuUserDesc
	ch <- c.cpuSysDesc
}

// Collect implements prometheus.Collector.
func (c *ProcessCollector) Collect(ch chan<- prometheus.Metric) {
	var mem gosigar.ProcMem
	if err := mem.Get(c.pid); err != nil {
		logger.Debug("unable to read process memory", "err", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.residentDesc, prometheus.GaugeValue, float64(mem.Resident))
		ch <- prometheus.MustNewConstMetric(c.virtualDesc, prometheus.GaugeValue, float64(mem.Size))
	}

	var cpu gosigar.ProcTime
	if err := cpu.Get(c.pid); err != nil {
		logger.Debug("unable to read process cpu time", "err", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.cpuUserDesc, prometheus.CounterValue, float64(cpu.User))
		ch <- prometheus.MustNewConstMetric(c.cpuSysDesc, prometheus.CounterValue, float64(cpu.Sys))
	}
}

var registered atomic.Bool

func registerProcessCollector() {
	if registered.CompareAndSwap(false, true) {
		register(NewProcessCollector())
	}
}
