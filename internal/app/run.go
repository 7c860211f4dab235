package app

import (
	"context"
	"fmt"

	"mongovault/internal/adapter/database"
	"mongovault/internal/adapter/dumper"
	"mongovault/internal/adapter/notify"
	"mongovault/internal/adapter/storage"
	"mongovault/internal/config"
	"mongovault/internal/domain"
	"mongovault/internal/infrastructure/logger"
	"mongovault/internal/usecase"
)

// Run wires the adapters and executes one backup. Every step failure is
// reported here, classified by the step it came from; the error is still
// returned so main can exit non-zero.
func Run(ctx context.Context, cfg *config.Config, req domain.BackupRequest) error {
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	if cfg.EnvFileLoaded {
		log.Warnf("loading `%s`", config.EnvFile)
	}

	db := database.NewMongoDB(req.MongoURI)
	dump := dumper.NewMongodump(cfg.MongodumpPath)
	gcs := storage.NewGCS(req.Bucket, req.CredentialsFile)

	var mirror domain.Storage
	if cfg.S3Mirror.Enabled() {
		m, err := storage.NewS3(cfg.S3Mirror)
		if err != nil {
			log.Errorf("Failed to initialize S3 mirror: %v", err)
		} else {
			mirror = m
			log.Infof("S3 mirror enabled (bucket: %s)", cfg.S3Mirror.Bucket)
		}
	}

	var notifier domain.Notifier
	if cfg.Telegram.Enabled() {
		n, err := notify.NewTelegram(cfg.Telegram)
		if err != nil {
			log.Errorf("Failed to initialize Telegram notifier: %v", err)
		} else {
			notifier = n
		}
	}

	uc := usecase.NewBackup(db, dump, gcs, mirror, log, cfg.BackupDir)

	archive, err := uc.Execute(ctx, req)
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindConnectivity:
			log.Errorf("MongoDB connection failed: %v", err)
		case domain.KindDump:
			log.Errorf("Error during mongodump: %v", err)
		default:
			log.Errorf("An error occurred: %v", err)
		}

		if notifier != nil {
			message := fmt.Sprintf("❌ Backup failed for %s: %v", req.Alias, err)
			if nerr := notifier.Notify(ctx, message); nerr != nil {
				log.Warnf("Failed to send notification: %v", nerr)
			}
		}

		return err
	}

	if notifier != nil {
		message := fmt.Sprintf("✅ Backup %s uploaded to %s", archive.Name, req.Bucket)
		if nerr := notifier.Notify(ctx, message); nerr != nil {
			log.Warnf("Failed to send notification: %v", nerr)
		}
	}

	return nil
}
