package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

type systemInfoResponse struct {
	Version       string  `json:"version"`
	Uptime        string  `json:"uptime"`
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryTotal   string  `json:"memory_total"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryPercent float64 `json:"memory_percent"`
}

func (h *Handlers) systemInfo(c echo.Context) error {
	resp := systemInfoResponse{
		Version: h.cfg.System.Version,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	}
	if info, err := host.Info(); err == nil {
		resp.Hostname = info.Hostname
		resp.OS = info.Platform
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		resp.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		resp.MemoryTotal = bytes.Format(int64(vm.Total))
		resp.MemoryUsed = bytes.Format(int64(vm.Used))
		resp.MemoryPercent = vm.UsedPercent
	}
	return ok(c, resp)
}
