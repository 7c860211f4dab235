package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"mongovault/internal/app"
	"mongovault/internal/config"
	"mongovault/internal/domain"
)

func main() {
	cliApp := &cli.App{
		Name:  "mongovault",
		Usage: "back up a MongoDB database to a Google Cloud Storage bucket",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mongo-uri",
				Aliases:  []string{"M"},
				Required: true,
				Usage:    "MongoDB connection string",
			},
			&cli.StringFlag{
				Name:     "gcs-bucket-name",
				Aliases:  []string{"B"},
				Required: true,
				Usage:    "Google Cloud Storage bucket name",
			},
			&cli.StringFlag{
				Name:      "gcs-credentials",
				Aliases:   []string{"C"},
				Required:  true,
				TakesFile: true,
				Usage:     "path to the GCP service account JSON file",
			},
			&cli.StringFlag{
				Name:     "database-alias",
				Aliases:  []string{"A"},
				Required: true,
				Usage:    "label embedded in the archive name",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	credentials := c.String("gcs-credentials")
	if _, err := os.Stat(credentials); err != nil {
		return fmt.Errorf("credentials file %q does not exist", credentials)
	}

	req := domain.BackupRequest{
		MongoURI:        c.String("mongo-uri"),
		Bucket:          c.String("gcs-bucket-name"),
		CredentialsFile: credentials,
		Alias:           c.String("database-alias"),
		StartedAt:       time.Now().UTC(),
	}

	if err := app.Run(c.Context, cfg, req); err != nil {
		// The failure is already logged with its phase message; just set
		// the exit status.
		return cli.Exit("", 1)
	}

	return nil
}
