package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Backend   string             `json:"backend"`
	Timestamp time.Time          `json:"timestamp"`
	Points    int                `json:"points"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Params    map[string]float64 `json:"params"`
}

// Result holds the column data of one evaluation run. Columns share a length
// and are written side by side with the abscissa.
type Result struct {
	Abscissa []float64
	Columns  map[string][]float64
	Order    []string
}

func (s *Store) Save(kind, backendName string, elapsed time.Duration, params map[string]float64, result *Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Backend:   backendName,
		Timestamp: time.Now(),
		Points:    len(result.Abscissa),
		Elapsed:   elapsed,
		Params:    params,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "values.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Abscissa) == 0 {
		return runID, nil
	}

	header := append([]string{"s"}, result.Order...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Abscissa {
		row := []string{strconv.FormatFloat(result.Abscissa[i], 'g', 17, 64)}
		for _, name := range result.Order {
			row = append(row, strconv.FormatFloat(result.Columns[name][i], 'g', 17, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadResult(runID string) (*Result, error) {
	csvPath := filepath.Join(s.baseDir, runID, "values.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: map[string][]float64{}}
	if len(records) < 2 {
		return result, nil
	}

	header := records[0]
	if len(header) < 1 {
		return result, nil
	}
	result.Order = append(result.Order, header[1:]...)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(header) {
			continue
		}

		abscissa, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		result.Abscissa = append(result.Abscissa, abscissa)

		for j, name := range result.Order {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			result.Columns[name] = append(result.Columns[name], val)
		}
	}

	return result, nil
}
