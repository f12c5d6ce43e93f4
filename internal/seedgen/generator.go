package seedgen

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// Separator separa sentencias; el comando seed divide el archivo por este marcador.
	Separator = "-- STATEMENT_END --"

	BatchSize     = 200
	LinkBatchSize = 500

	FallbackFeatureID   = "F000"
	FallbackFeatureName = "Unknown Feature"
	FallbackDomainID    = "D01"
)

// Options opciones de generación.
type Options struct {
	// ResetProgress sobrescribe progress_percent con 0 en TFs existentes.
	// Por defecto el progreso ya cargado se conserva.
	ResetProgress bool
}

// Stats conteos del SQL generado.
type Stats struct {
	Domains            int
	Features           int
	ProductFunctions   int
	TechnicalFunctions int
	Placeholders       int
	UseCases           int
	Links              int
	Statements         int
}

// Result SQL generado y avisos (referencias a TFs inexistentes convertidas en placeholder).
type Result struct {
	SQL      string
	Stats    Stats
	Warnings []string
}

type tfRow struct {
	id          string
	name        string
	description *string
	state       *string
	pfID        *string
}

// Build genera el script completo en orden de dependencias:
// dominios, features, PFs, TFs (con placeholders), casos de uso y vínculos.
func Build(in *Inputs, opts Options) *Result {
	res := &Result{}
	var stmts []string

	// Dominios
	for _, batch := range chunk(in.Domains, BatchSize) {
		values := make([]string, 0, len(batch))
		for _, d := range batch {
			values = append(values, fmt.Sprintf("(%s, %s)", sqlString(d.ID), sqlString(d.Name)))
		}
		stmts = append(stmts, "INSERT INTO domains (id, name) VALUES\n"+strings.Join(values, ",\n")+
			"\nON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;")
	}
	res.Stats.Domains = len(in.Domains)

	// Features (+ fallback para PFs sin feature)
	features := append([]FeatureRecord(nil), in.Features...)
	hasFallback := false
	for _, f := range features {
		if f.ID == FallbackFeatureID {
			hasFallback = true
			break
		}
	}
	if !hasFallback {
		domainID := FallbackDomainID
		features = append(features, FeatureRecord{ID: FallbackFeatureID, Name: FallbackFeatureName, DomainID: &domainID})
	}
	for _, batch := range chunk(features, BatchSize) {
		values := make([]string, 0, len(batch))
		for _, f := range batch {
			values = append(values, fmt.Sprintf("(%s, %s, %s)", sqlString(f.ID), sqlString(f.Name), sqlNullable(f.DomainID)))
		}
		stmts = append(stmts, "INSERT INTO features (id, name, domain_id) VALUES\n"+strings.Join(values, ",\n")+
			"\nON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, domain_id = EXCLUDED.domain_id;")
	}
	res.Stats.Features = len(features)

	// Product functions, ordenados por id para salida estable
	pfIDs := make([]string, 0, len(in.ProductFunctions))
	for id := range in.ProductFunctions {
		pfIDs = append(pfIDs, id)
	}
	sort.Strings(pfIDs)
	tfToPF := map[string]string{}
	for _, batch := range chunk(pfIDs, BatchSize) {
		values := make([]string, 0, len(batch))
		for _, id := range batch {
			pf := in.ProductFunctions[id]
			description := pf.DescriptionEn
			if description == nil || *description == "" {
				description = pf.Description
			}
			featureID := FallbackFeatureID
			if pf.FeatureID != nil && *pf.FeatureID != "" {
				featureID = *pf.FeatureID
			}
			values = append(values, fmt.Sprintf("(%s, %s, %s, %s, %s, %s, %s)",
				sqlString(id), sqlString(pf.Name), sqlNullable(pf.NameCn), sqlNullable(description),
				sqlNullable(pf.DescriptionCn), sqlString(featureID), sqlTextArray(pf.Tags)))
		}
		stmts = append(stmts, "INSERT INTO product_functions (id, name, name_cn, description_en, description_cn, feature_id, tags) VALUES\n"+
			strings.Join(values, ",\n")+
			"\nON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, name_cn = EXCLUDED.name_cn, description_en = EXCLUDED.description_en,"+
			" description_cn = EXCLUDED.description_cn, feature_id = EXCLUDED.feature_id, tags = EXCLUDED.tags;")
	}
	for _, id := range pfIDs {
		for _, tfID := range in.ProductFunctions[id].TFIDs {
			if tid := NormID(tfID); tid != "" {
				tfToPF[tid] = id
			}
		}
	}
	res.Stats.ProductFunctions = len(pfIDs)

	// Technical functions: primera aparición define el orden, la última gana en valores
	var tfs []*tfRow
	known := map[string]*tfRow{}
	for _, tf := range in.TechnicalFunctions {
		id := NormID(tf.ReqID)
		if id == "" {
			continue
		}
		row, ok := known[id]
		if !ok {
			row = &tfRow{id: id}
			known[id] = row
			tfs = append(tfs, row)
		}
		row.name = id
		if tf.Name != nil && *tf.Name != "" {
			row.name = *tf.Name
		}
		row.description, row.state = tf.Description, tf.State
		if pfID, ok := tfToPF[id]; ok {
			row.pfID = &pfID
		}
	}

	// Placeholders para referencias de casos de uso a TFs que no existen
	var missing []string
	for _, uc := range in.UseCases {
		for _, tid := range ExtractTFIDs(uc.TechnicalFunction) {
			if _, ok := known[tid]; ok {
				continue
			}
			known[tid] = nil
			missing = append(missing, tid)
			res.Warnings = append(res.Warnings, fmt.Sprintf("caso de uso %s referencia TF inexistente %s", uc.UID, tid))
		}
	}
	sort.Strings(missing)
	placeholderDesc, placeholderState := "Auto-generated placeholder", "Unknown"
	for _, tid := range missing {
		row := &tfRow{id: tid, name: "Placeholder " + tid, description: &placeholderDesc, state: &placeholderState}
		known[tid] = row
		tfs = append(tfs, row)
	}
	res.Stats.TechnicalFunctions = len(tfs)
	res.Stats.Placeholders = len(missing)

	onConflictTF := "\nON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description," +
		" state = EXCLUDED.state, product_function_id = EXCLUDED.product_function_id"
	if opts.ResetProgress {
		onConflictTF += ", progress_percent = EXCLUDED.progress_percent"
	}
	for _, batch := range chunk(tfs, BatchSize) {
		values := make([]string, 0, len(batch))
		for _, tf := range batch {
			values = append(values, fmt.Sprintf("(%s, %s, %s, %s, 0, %s)",
				sqlString(tf.id), sqlString(tf.name), sqlNullable(tf.description), sqlNullable(tf.state), sqlNullable(tf.pfID)))
		}
		stmts = append(stmts, "INSERT INTO technical_functions (id, name, description, state, progress_percent, product_function_id) VALUES\n"+
			strings.Join(values, ",\n")+onConflictTF+";")
	}

	// Casos de uso y vínculos
	type link struct{ useCaseID, tfID string }
	var links []link
	useCases := dedupeUseCases(in.UseCases)
	for _, batch := range chunk(useCases, BatchSize) {
		values := make([]string, 0, len(batch))
		for _, uc := range batch {
			name := uc.Name
			if strings.TrimSpace(name) == "" {
				name = uc.UID
			}
			values = append(values, fmt.Sprintf("(%s, %s, %s, %s, %s, %s, %s)",
				sqlString(uc.UID), sqlString(name), sqlOptional(uc.Description), sqlOptional(uc.HmxInput),
				sqlOptional(uc.HmxOutput), sqlOptional(uc.CustomerPdFeature), sqlOptional(uc.TechnicalFunction)))
			for _, tid := range ExtractTFIDs(uc.TechnicalFunction) {
				links = append(links, link{useCaseID: uc.UID, tfID: tid})
			}
		}
		stmts = append(stmts, "INSERT INTO use_cases (id, name, description, hmx_input, hmx_output, customer_pd_feature, technical_function_raw) VALUES\n"+
			strings.Join(values, ",\n")+
			"\nON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, hmx_input = EXCLUDED.hmx_input,"+
			" hmx_output = EXCLUDED.hmx_output, customer_pd_feature = EXCLUDED.customer_pd_feature, technical_function_raw = EXCLUDED.technical_function_raw;")
	}
	res.Stats.UseCases = len(useCases)

	for _, batch := range chunk(links, LinkBatchSize) {
		values := make([]string, 0, len(batch))
		for _, l := range batch {
			values = append(values, fmt.Sprintf("(%s, %s)", sqlString(l.useCaseID), sqlString(l.tfID)))
		}
		stmts = append(stmts, "INSERT INTO use_case_technical_functions (use_case_id, technical_function_id) VALUES\n"+
			strings.Join(values, ",\n")+
			"\nON CONFLICT (use_case_id, technical_function_id) DO NOTHING;")
	}
	res.Stats.Links = len(links)
	res.Stats.Statements = len(stmts)

	var b strings.Builder
	b.WriteString("-- Seed generado por seed_gen\n")
	b.WriteString(Separator + "\n")
	for _, stmt := range stmts {
		b.WriteString(stmt)
		b.WriteString("\n" + Separator + "\n")
	}
	res.SQL = b.String()
	return res
}

// dedupeUseCases un UID repetido conserva la posición de la primera fila y los valores de la última.
func dedupeUseCases(in []UseCaseRecord) []UseCaseRecord {
	pos := make(map[string]int, len(in))
	out := make([]UseCaseRecord, 0, len(in))
	for _, uc := range in {
		if i, ok := pos[uc.UID]; ok {
			out[i] = uc
			continue
		}
		pos[uc.UID] = len(out)
		out = append(out, uc)
	}
	return out
}
