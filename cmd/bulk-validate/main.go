// Command bulk-validate streams a CSV of phone numbers out of object
// storage, classifies each with the phonenumber engine, persists a result
// row per number, and emails the operator a summary report.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/headuck/gophonelite/internal/bulkvalidate/repository"
	"github.com/headuck/gophonelite/internal/bulkvalidate/service"
	"github.com/headuck/gophonelite/internal/email"
	"github.com/headuck/gophonelite/phonenumber"
	"github.com/headuck/gophonelite/platform/callingcodes"
	"github.com/headuck/gophonelite/platform/config"
	"github.com/headuck/gophonelite/platform/db"
	"github.com/headuck/gophonelite/platform/logger"
	"github.com/headuck/gophonelite/platform/objectstore"
)

func main() {
	objectKey := flag.String("object", "", "object key inside the bulk-validate bucket to read, one number per CSV row")
	defaultRegion := flag.String("region", phonenumber.UnknownRegion, "default region used to interpret numbers without a leading +")
	concurrency := flag.Int("concurrency", 16, "number of numbers classified concurrently")
	flag.Parse()

	if *objectKey == "" {
		panic("bulk-validate: -object is required")
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting bulk validation run", "object", *objectKey)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	store, err := objectstore.New(cfg)
	if err != nil {
		log.Error("failed to initialize object storage", "error", err)
		panic("failed to initialize object storage: " + err.Error())
	}
	if store == nil {
		panic("bulk-validate: object storage is not configured")
	}

	callingCodeTable, err := callingcodes.Load(cfg.GetCallingCodeTablePath())
	if err != nil {
		log.Error("failed to load calling-code table", "error", err)
		panic("failed to load calling-code table: " + err.Error())
	}
	metadataFile, err := os.Open(cfg.GetPhoneMetadataPath())
	if err != nil {
		log.Error("failed to open phone metadata", "error", err)
		panic("failed to open phone metadata: " + err.Error())
	}
	engine := phonenumber.NewWithLogger(metadataFile, callingCodeTable, log.Logger)
	_ = metadataFile.Close()

	numbers, err := readNumbers(ctx, store, *objectKey)
	if err != nil {
		log.Error("failed to read source object", "error", err)
		panic("failed to read source object: " + err.Error())
	}
	log.Info("loaded numbers to classify", "count", len(numbers))

	repo := repository.New(pool)
	runID, err := repo.StartRun(ctx, *objectKey)
	if err != nil {
		log.Error("failed to start run", "error", err)
		panic("failed to start run: " + err.Error())
	}

	svc := service.New(engine, *defaultRegion, *concurrency)
	results, err := svc.Classify(ctx, numbers)
	if err != nil {
		log.Error("classification failed", "error", err)
		panic("classification failed: " + err.Error())
	}

	for _, result := range results {
		if err := repo.InsertResult(ctx, runID, result); err != nil {
			log.Error("failed to persist result", "error", err, "raw_input", result.RawInput)
		}
	}

	if err := repo.FinishRun(ctx, runID); err != nil {
		log.Error("failed to finish run", "error", err)
	}

	summary := service.Summarize(results)
	log.Info("bulk validation run complete", "total", summary.Total, "valid", summary.Valid, "invalid", summary.Invalid, "errored", summary.Errored)

	emailSender := email.NewSender(cfg)
	if emailSender != nil && cfg.GetOperatorReportAddress() != "" {
		reportErr := emailSender.SendBulkValidationReport(ctx, cfg.GetOperatorReportAddress(), *objectKey, email.ValidationSummary{
			Total:   summary.Total,
			Valid:   summary.Valid,
			Invalid: summary.Invalid,
			Errored: summary.Errored,
		})
		if reportErr != nil {
			log.Error("failed to email operator report", "error", reportErr)
		}
	}
}

// readNumbers streams objectKey as a CSV file and returns the first column
// of every row, skipping a header row if one is present.
func readNumbers(ctx context.Context, store *objectstore.Store, objectKey string) ([]string, error) {
	obj, err := store.Get(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	reader := csv.NewReader(obj)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var numbers []string
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		value := record[0]
		if first {
			first = false
			if isHeaderCell(value) {
				continue
			}
		}
		if value != "" {
			numbers = append(numbers, value)
		}
	}
	return numbers, nil
}

func isHeaderCell(value string) bool {
	switch value {
	case "number", "phone", "phone_number", "Number", "Phone":
		return true
	default:
		return false
	}
}
