package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"mongovault/internal/domain"
)

type fakeDatabase struct {
	pingErr error
	pings   int
}

func (f *fakeDatabase) Ping(ctx context.Context) error {
	f.pings++
	return f.pingErr
}

type dumpCall struct {
	uri        string
	outputPath string
}

type fakeDumpTool struct {
	runErr error
	calls  []dumpCall
}

func (f *fakeDumpTool) Run(ctx context.Context, uri, outputPath string) error {
	f.calls = append(f.calls, dumpCall{uri: uri, outputPath: outputPath})
	return f.runErr
}

type uploadCall struct {
	localPath  string
	remoteName string
}

type fakeStorage struct {
	uploadErr error
	calls     []uploadCall
}

func (f *fakeStorage) Upload(ctx context.Context, localPath, remoteName string) error {
	f.calls = append(f.calls, uploadCall{localPath: localPath, remoteName: remoteName})
	return f.uploadErr
}

type nopLogger struct{}

func (nopLogger) Infof(template string, args ...interface{})  {}
func (nopLogger) Errorf(template string, args ...interface{}) {}
func (nopLogger) Warnf(template string, args ...interface{})  {}

func TestBackupExecute(t *testing.T) {
	Convey("Given a backup use case", t, func() {
		ctx := context.Background()
		db := &fakeDatabase{}
		dump := &fakeDumpTool{}
		store := &fakeStorage{}

		req := domain.BackupRequest{
			MongoURI:  "mongodb://localhost:27017",
			Bucket:    "my-bucket",
			Alias:     "prod",
			StartedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		}

		uc := NewBackup(db, dump, store, nil, nopLogger{}, "/backups")

		Convey("When every step succeeds", func() {
			archive, err := uc.Execute(ctx, req)

			Convey("It should run probe, dump and upload in order", func() {
				So(err, ShouldBeNil)
				So(db.pings, ShouldEqual, 1)
				So(len(dump.calls), ShouldEqual, 1)
				So(len(store.calls), ShouldEqual, 1)
			})

			Convey("It should name the archive from alias and timestamp", func() {
				So(err, ShouldBeNil)
				So(archive.Name, ShouldEqual, "mongo_backup_prod_2024-01-15T10-30-00.gz")
				So(archive.Path, ShouldEqual, filepath.Join("/backups", archive.Name))
			})

			Convey("It should upload the exact archive produced by the dump", func() {
				So(err, ShouldBeNil)
				So(dump.calls[0].uri, ShouldEqual, req.MongoURI)
				So(dump.calls[0].outputPath, ShouldEqual, archive.Path)
				So(store.calls[0].localPath, ShouldEqual, archive.Path)
				So(store.calls[0].remoteName, ShouldEqual, archive.Name)
			})
		})

		Convey("When the probe fails", func() {
			db.pingErr = errors.New("connection refused")

			_, err := uc.Execute(ctx, req)

			Convey("It should skip the dump and the upload", func() {
				So(err, ShouldNotBeNil)
				So(domain.KindOf(err), ShouldEqual, domain.KindConnectivity)
				So(len(dump.calls), ShouldEqual, 0)
				So(len(store.calls), ShouldEqual, 0)
			})
		})

		Convey("When the dump fails", func() {
			dump.runErr = errors.New("authentication failed")

			archive, err := uc.Execute(ctx, req)

			Convey("It should skip the upload and surface the stderr text", func() {
				So(err, ShouldNotBeNil)
				So(domain.KindOf(err), ShouldEqual, domain.KindDump)
				So(err.Error(), ShouldEqual, "authentication failed")
				So(len(store.calls), ShouldEqual, 0)
				So(archive.Name, ShouldNotBeEmpty)
			})
		})

		Convey("When the upload fails", func() {
			store.uploadErr = errors.New("invalid credentials")

			archive, err := uc.Execute(ctx, req)

			Convey("It should classify the failure as an upload error", func() {
				So(err, ShouldNotBeNil)
				So(domain.KindOf(err), ShouldEqual, domain.KindUpload)
			})

			Convey("It should still report the archive left on disk", func() {
				So(archive.Path, ShouldEqual, filepath.Join("/backups", archive.Name))
			})
		})

		Convey("When a mirror target is configured", func() {
			mirror := &fakeStorage{}
			uc := NewBackup(db, dump, store, mirror, nopLogger{}, "/backups")

			Convey("And the mirror upload succeeds", func() {
				archive, err := uc.Execute(ctx, req)

				So(err, ShouldBeNil)
				So(len(mirror.calls), ShouldEqual, 1)
				So(mirror.calls[0].remoteName, ShouldEqual, archive.Name)
			})

			Convey("And the mirror upload fails", func() {
				mirror.uploadErr = errors.New("bucket gone")

				_, err := uc.Execute(ctx, req)

				Convey("It should not fail the run", func() {
					So(err, ShouldBeNil)
				})
			})

			Convey("And the primary upload fails", func() {
				store.uploadErr = errors.New("invalid credentials")

				_, err := uc.Execute(ctx, req)

				Convey("It should never reach the mirror", func() {
					So(err, ShouldNotBeNil)
					So(len(mirror.calls), ShouldEqual, 0)
				})
			})
		})
	})
}
