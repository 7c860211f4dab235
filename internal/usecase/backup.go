package usecase

import (
	"context"
	"path/filepath"

	"mongovault/internal/domain"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// Backup runs the three-step sequence: probe, dump, upload. Each step
// short-circuits the rest on failure; the returned error carries the step
// kind so the caller can report the right phase.
type Backup struct {
	db        domain.Database
	dump      domain.DumpTool
	storage   domain.Storage
	mirror    domain.Storage
	logger    Logger
	backupDir string
}

func NewBackup(
	db domain.Database,
	dump domain.DumpTool,
	storage domain.Storage,
	mirror domain.Storage,
	logger Logger,
	backupDir string,
) *Backup {
	return &Backup{
		db:        db,
		dump:      dump,
		storage:   storage,
		mirror:    mirror,
		logger:    logger,
		backupDir: backupDir,
	}
}

func (uc *Backup) Execute(ctx context.Context, req domain.BackupRequest) (domain.Archive, error) {
	uc.logger.Infof("Connecting to MongoDB...")
	if err := uc.db.Ping(ctx); err != nil {
		return domain.Archive{}, domain.WrapKind(domain.KindConnectivity, err)
	}
	uc.logger.Infof("Successfully connected to MongoDB.")

	archive := domain.Archive{Name: domain.ArchiveName(req.Alias, req.StartedAt)}
	archive.Path = filepath.Join(uc.backupDir, archive.Name)

	uc.logger.Infof("Creating MongoDB backup: %s...", archive.Name)
	if err := uc.dump.Run(ctx, req.MongoURI, archive.Path); err != nil {
		return archive, domain.WrapKind(domain.KindDump, err)
	}
	uc.logger.Infof("Backup created successfully.")

	// The archive is deliberately left on disk whatever happens next.
	uc.logger.Infof("Uploading backup to GCS bucket: %s...", req.Bucket)
	if err := uc.storage.Upload(ctx, archive.Path, archive.Name); err != nil {
		return archive, domain.WrapKind(domain.KindUpload, err)
	}
	uc.logger.Infof("Backup %s uploaded to %s.", archive.Name, req.Bucket)

	if uc.mirror != nil {
		uc.logger.Infof("Uploading backup to S3 mirror...")
		if err := uc.mirror.Upload(ctx, archive.Path, archive.Name); err != nil {
			// Mirror is best-effort; the primary copy is already in place.
			uc.logger.Errorf("Failed to upload to S3 mirror: %v", err)
		} else {
			uc.logger.Infof("Successfully uploaded to S3 mirror.")
		}
	}

	return archive, nil
}
