package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anyamemensah/recode-cols/internal/codebook"
	"github.com/anyamemensah/recode-cols/internal/domain/data"
	"github.com/anyamemensah/recode-cols/internal/logging"
	"github.com/anyamemensah/recode-cols/internal/pipeline"
	"github.com/anyamemensah/recode-cols/internal/recode"
	"github.com/anyamemensah/recode-cols/internal/storage"
	"github.com/anyamemensah/recode-cols/internal/storage/writer"
)

var (
	codebookPath string
	datasetPath  string
	outputPath   string
	columnField  string
	oldField     string
	newField     string
	dbDriver     string
	dbDSN        string
	dbQuery      string
	emitPath     string
	parallelism  int
	lenient      bool
	invert       bool
	noInfer      bool
)

func cmdlineError(msg string) {
	fmt.Printf("%s\n\n", msg)
	flag.Usage()
	os.Exit(1)
}

func main() {

	flag.StringVar(&codebookPath, "c", "", "path to codebook file (.csv, .json, .yaml)")
	flag.StringVar(&datasetPath, "d", "", "path to dataset file (.csv, .json)")
	flag.StringVar(&outputPath, "o", "", "path to output file (.csv, .json)")
	flag.StringVar(&columnField, "col", codebook.DefaultColumnField, "codebook field holding dataset column names")
	flag.StringVar(&oldField, "old", codebook.DefaultOldField, "codebook field holding the values to replace")
	flag.StringVar(&newField, "new", codebook.DefaultNewField, "codebook field holding the replacement labels")
	flag.StringVar(&dbDriver, "db-driver", "", "load the dataset from a database: postgres, mysql or oracle")
	flag.StringVar(&dbDSN, "db-dsn", "", "database connection string")
	flag.StringVar(&dbQuery, "db-query", "", "query producing the dataset")
	flag.StringVar(&emitPath, "emit-codebook", "", "also write the compiled codebook as YAML to this path")
	flag.IntVar(&parallelism, "parallel", 1, "number of columns to recode concurrently")
	flag.BoolVar(&lenient, "lenient", false, "treat uncomparable cells as unmatched instead of failing")
	flag.BoolVar(&invert, "invert", false, "apply the codebook inverted (labels back to old values)")
	flag.BoolVar(&noInfer, "no-infer", false, "keep CSV cells as text instead of inferring column types")
	flag.Parse()

	fmt.Printf("Categorical recoder\n\n")

	if codebookPath == "" {
		cmdlineError("Codebook path is not set")
	}
	if outputPath == "" {
		cmdlineError("Output path is not set")
	}
	if datasetPath == "" && dbDriver == "" {
		cmdlineError("Either a dataset path or a database source must be set")
	}
	if datasetPath != "" && dbDriver != "" {
		cmdlineError("Cannot set a dataset path and a database source at the same time")
	}
	if dbDriver != "" && (dbDSN == "" || dbQuery == "") {
		cmdlineError("Database source requires -db-dsn and -db-query")
	}

	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	ds, err := loadDataset()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		closeFn()
		os.Exit(1)
	}

	p := pipeline.New(fieldSpec(), recodeOptions()...)
	p.AddObserver(pipeline.NewLoggingObserver())

	result, err := runPipeline(p, ds)
	if err != nil {
		slog.Error("recode run failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	if err := saveDataset(result.Dataset, outputPath); err != nil {
		slog.Error("failed to save output", "error", err)
		closeFn()
		os.Exit(1)
	}

	fmt.Printf("Recoded %d cells across %d columns, output written to %s\n",
		result.Replaced, len(result.PerColumn), outputPath)
	for _, name := range result.Skipped {
		fmt.Printf("Note: codebook column '%s' is not in the dataset\n", name)
	}
}

// runPipeline drives the pipeline with whichever codebook form was given.
// Table codebooks compile inside the pipeline; compiled YAML codebooks,
// inverted passes and -emit-codebook need the Codebook in hand first.
func runPipeline(p *pipeline.Pipeline, ds *data.Dataset) (*recode.Result, error) {
	if !isCompiledCodebook(codebookPath) && !invert && emitPath == "" {
		table, err := loadTable(codebookPath)
		if err != nil {
			return nil, err
		}
		return p.Run(table, ds)
	}

	cb, err := buildCodebook()
	if err != nil {
		return nil, err
	}
	if emitPath != "" {
		if err := codebook.WriteFile(cb, emitPath); err != nil {
			return nil, err
		}
		fmt.Printf("Compiled codebook written to %s\n", emitPath)
	}
	if invert {
		if cb, err = cb.Invert(); err != nil {
			return nil, err
		}
	}
	return p.RunCompiled(cb, ds)
}

func buildCodebook() (*codebook.Codebook, error) {
	if isCompiledCodebook(codebookPath) {
		return codebook.LoadFile(codebookPath)
	}
	table, err := loadTable(codebookPath)
	if err != nil {
		return nil, err
	}
	return codebook.Compile(table, fieldSpec())
}

func isCompiledCodebook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func fieldSpec() codebook.FieldSpec {
	return codebook.FieldSpec{
		Column: columnField,
		Old:    oldField,
		New:    newField,
	}
}

func recodeOptions() []recode.Option {
	opts := make([]recode.Option, 0, 2)
	if parallelism > 1 {
		opts = append(opts, recode.WithParallelism(parallelism))
	}
	if lenient {
		opts = append(opts, recode.WithLenientTypes())
	}
	return opts
}

func loadDataset() (*data.Dataset, error) {
	if dbDriver == "" {
		return loadTable(datasetPath)
	}

	switch dbDriver {
	case "postgres", "mysql", "oracle":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbDriver)
	}

	db, err := sql.Open(dbDriver, dbDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return storage.LoadSQL(db, "dataset", dbQuery)
}

func loadTable(path string) (*data.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return storage.LoadCSV(path, !noInfer)
	case ".json":
		return storage.LoadJSON(path)
	}
	return nil, fmt.Errorf("unsupported table format %q", filepath.Ext(path))
}

func saveDataset(ds *data.Dataset, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writer.SaveCSV(ds, path)
	case ".json":
		return writer.SaveJSON(ds, path)
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}
