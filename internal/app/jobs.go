package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@hourly", func() {
		go a.SchedSweepOrphanUploads()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.gormDB.
			Where("created_at < ? ", time.Now().
				Add(-time.Hour*24*365)).Delete(domain.AuditLog{})
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	cpuuse, _ := p.CPUPercent()
	meminfo, err := p.MemoryInfo()
	if err != nil {
		return
	}
	zap.L().Debug("process monitor",
		zap.Float64("cpu_percent", cpuuse),
		zap.Uint64("mem_rss_mb", meminfo.RSS/1024/1024))
}

// SchedSweepOrphanUploads removes uploaded images that no user or product
// references anymore. Files younger than a day are skipped so a file written
// between upload and the row update is never collected.
func (a *Application) SchedSweepOrphanUploads() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	sweep := func(subdir string, referenced func(url string) bool) {
		dir := filepath.Join(a.appConfig.Web.UploadDir, subdir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		cutoff := time.Now().Add(-24 * time.Hour)
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			url := "/uploads/" + subdir + "/" + entry.Name()
			if referenced(url) {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				zap.L().Error("failed to remove orphan upload", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			zap.L().Info("removed orphan upload", zap.String("file", url))
		}
	}

	sweep("users", func(url string) bool {
		var count int64
		a.gormDB.Model(&domain.User{}).Where("profile_image = ?", url).Count(&count)
		return count > 0
	})
	sweep("products", func(url string) bool {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("img_url = ?", url).Count(&count)
		return count > 0
	})
}
