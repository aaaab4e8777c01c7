package app

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/log"
)

// LoadInfo 压测期间的机器负载
type LoadInfo struct {
	CPUUsage float64 // 系统 CPU 使用率(%)
	MemUsage float64 // 系统内存使用率(%)
	RSSBytes uint64  // 本进程常驻内存
	HeapMB   float64 // Go 堆
}

func (l *LoadInfo) String() string {
	return fmt.Sprintf("cpu=%.1f%% mem=%.1f%% rss=%dMB heap=%.1fMB",
		l.CPUUsage, l.MemUsage, l.RSSBytes>>20, l.HeapMB)
}

// collectLoadInfo 采集负载，单项失败只记日志并置 0
func collectLoadInfo() *LoadInfo {
	info := &LoadInfo{}

	if percents, err := cpu.Percent(0, false); err != nil {
		log.Warn("获取 CPU 使用率失败: %v", err)
	} else if len(percents) > 0 {
		info.CPUUsage = percents[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Warn("获取内存使用率失败: %v", err)
	} else {
		info.MemUsage = vm.UsedPercent
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err != nil {
		log.Warn("获取进程信息失败: %v", err)
	} else if m, err := p.MemoryInfo(); err != nil {
		log.Warn("获取进程内存失败: %v", err)
	} else {
		info.RSSBytes = m.RSS
	}

	var mStats runtime.MemStats
	runtime.ReadMemStats(&mStats)
	info.HeapMB = float64(mStats.HeapAlloc) / float64(1<<20)
	return info
}

// monitorLoad 按 interval 采集负载并记录日志，直到 stop 关闭
func monitorLoad(runID string, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			log.Info("sweep %s 负载: %s", runID, collectLoadInfo())
		}
	}
}
