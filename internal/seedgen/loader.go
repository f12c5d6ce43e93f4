package seedgen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Nombres de archivo por defecto dentro del directorio de datos.
const (
	DomainsFile            = "domains.json"
	FeaturesFile           = "features.json"
	ProductFunctionsFile   = "pf_pool.json"
	TechnicalFunctionsFile = "tech_functions.json"
	UseCasesFile           = "Use Case.csv"
)

// LoadOptions ubicación de los archivos de entrada.
type LoadOptions struct {
	DataDir  string // domains.json, features.json, tech_functions.json, Use Case.csv
	StateDir string // pf_pool.json; vacío = DataDir
	Encoding string // codificación del CSV: utf-8 (defecto), windows-1252, iso-8859-1
}

// Load lee los cinco archivos de entrada.
func Load(opts LoadOptions) (*Inputs, error) {
	stateDir := opts.StateDir
	if stateDir == "" {
		stateDir = opts.DataDir
	}

	in := &Inputs{}
	if err := readJSON(filepath.Join(opts.DataDir, DomainsFile), &in.Domains); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(opts.DataDir, FeaturesFile), &in.Features); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(stateDir, ProductFunctionsFile), &in.ProductFunctions); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(opts.DataDir, TechnicalFunctionsFile), &in.TechnicalFunctions); err != nil {
		return nil, err
	}

	path := filepath.Join(opts.DataDir, UseCasesFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	in.UseCases, err = ReadUseCases(f, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return in, nil
}

func readJSON(path string, dest any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decodificar %s: %w", path, err)
	}
	return nil
}

// decoderFor envuelve r para convertir la codificación indicada a UTF-8.
func decoderFor(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// ReadUseCases lee el CSV de casos de uso por nombre de columna. Las columnas ausentes quedan vacías
// y las filas sin UID se descartan.
func ReadUseCases(r io.Reader, encoding string) ([]UseCaseRecord, error) {
	src, err := decoderFor(r, encoding)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		index[strings.TrimSpace(h)] = i
	}

	var out []UseCaseRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		col := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		uc := UseCaseRecord{
			UID:               strings.TrimSpace(col(ColUID)),
			Name:              col(ColName),
			Description:       col(ColDescription),
			HmxInput:          col(ColHmxInput),
			HmxOutput:         col(ColHmxOutput),
			CustomerPdFeature: col(ColCustomerPdFeature),
			TechnicalFunction: col(ColTechnicalFunction),
		}
		if uc.UID == "" {
			continue
		}
		out = append(out, uc)
	}
	return out, nil
}
