// Command backup pushes a snapshot of the workout CSV store to
// S3-compatible object storage, or restores one back to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/config"
	"alcyxob/irontrack/internal/storage"
)

func main() {
	var (
		restore = flag.String("restore", "", "object key to restore instead of backing up")
		key     = flag.String("key", "", "object key for the backup; default: workouts/<date>-<uuid>.csv")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	if cfg.S3.BucketName == "" {
		log.Fatal("no S3 bucket configured (s3.bucket_name)")
	}

	objectStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("initialize S3 storage: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *restore != "" {
		if err := restoreStore(ctx, objectStorage, *restore, cfg.Store.Path); err != nil {
			log.Fatalf("restore %s: %s", *restore, err)
		}
		log.Infof("restored %s -> %s", *restore, cfg.Store.Path)
		return
	}

	objectKey := *key
	if objectKey == "" {
		objectKey = fmt.Sprintf("workouts/%s-%s.csv", time.Now().Format("2006-01-02"), uuid.NewString())
	}
	if err := backupStore(ctx, objectStorage, cfg.Store.Path, objectKey); err != nil {
		log.Fatalf("backup %s: %s", cfg.Store.Path, err)
	}
	log.Infof("backed up %s -> %s", cfg.Store.Path, objectKey)
}

func backupStore(ctx context.Context, objectStorage storage.ObjectStorage, path, objectKey string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return objectStorage.Upload(ctx, objectKey, file, "text/csv")
}

func restoreStore(ctx context.Context, objectStorage storage.ObjectStorage, objectKey, path string) error {
	body, err := objectStorage.Download(ctx, objectKey)
	if err != nil {
		return err
	}
	defer body.Close()

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
