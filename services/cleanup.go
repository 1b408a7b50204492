package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

// StartUploadSweeper removes staged upload files stranded by a crash between
// save and deferred cleanup. Runs hourly; files younger than maxAge are kept.
func StartUploadSweeper(uploadDir string) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		SweepUploads(uploadDir, time.Hour)
	})
	c.Start()
	return c
}

func SweepUploads(uploadDir string, maxAge time.Duration) {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.LogError(err, "read upload dir")
		}
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
				utils.LogError(err, "sweep stale upload")
			}
		}
	}
}
