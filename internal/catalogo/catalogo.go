// Package catalogo holds the static institution catalog used to resolve
// campus values to display labels and to back the admin panel autocomplete.
package catalogo

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Institucion is one catalog entry. Value is the stable key stored in user
// records; Label is the display name shown in the panel.
type Institucion struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Categoria string `json:"categoria"`
}

var instituciones = buildCatalogo()

func buildCatalogo() []Institucion {
	cat := []Institucion{
		// CRES, campus regionales
		{"cres-cruz-grande", "CRES Campus Cruz Grande (Costa Chica)", "CRES"},
		{"cres-zumpango", "CRES Campus Zumpango (Zona Centro)", "CRES"},
		{"cres-taxco-viejo", "CRES Campus Taxco el Viejo (Zona Norte)", "CRES"},
		{"cres-huamuxtitlan", "CRES Campus Huamuxtitlán (Montaña)", "CRES"},
		{"cres-llano-largo", "CRES Campus Llano Largo (Acapulco)", "CRES"},
		{"cres-tecpan", "CRES Campus Tecpán (Costa Grande)", "CRES"},

		// Clínicas universitarias
		{"clinica-chilpancingo", "Clínica Universitaria UAGro – Chilpancingo", "Clínica"},
		{"clinica-acapulco", "Clínica Universitaria UAGro – Acapulco", "Clínica"},
		{"clinica-iguala", "Clínica Universitaria UAGro – Iguala", "Clínica"},
		{"clinica-ometepec", "Servicio Médico Universitario – Ometepec", "Clínica"},

		// Facultades, centro
		{"fac-gobierno", "Facultad de Gobierno y Gestión Pública", "Facultad"},
		{"fac-arquitectura", "Facultad de Arquitectura y Urbanismo", "Facultad"},
		{"fac-quimico", "Facultad de Ciencias Químico Biológicas", "Facultad"},
		{"fac-comunicacion", "Facultad de Comunicación y Mercadotecnia", "Facultad"},
		{"fac-derecho-chil", "Facultad de Derecho (Chilpancingo)", "Facultad"},
		{"fac-filosofia", "Facultad de Filosofía y Letras", "Facultad"},
		{"fac-ingenieria", "Facultad de Ingeniería", "Facultad"},
		{"fac-matematicas-centro", "Facultad de Matemáticas (Centro)", "Facultad"},

		// Facultades, sur / Acapulco
		{"fac-contaduria", "Facultad de Contaduría y Administración", "Facultad"},
		{"fac-derecho-aca", "Facultad de Derecho (Acapulco)", "Facultad"},
		{"fac-ecologia", "Facultad de Ecología Marina", "Facultad"},
		{"fac-economia", "Facultad de Economía (Campus Llano Largo)", "Facultad"},
		{"fac-enfermeria2", "Facultad de Enfermería No. 2", "Facultad"},
		{"fac-matematicas-sur", "Facultad de Matemáticas (Sur)", "Facultad"},
		{"fac-lenguas", "Facultad de Lenguas Extranjeras", "Facultad"},
		{"fac-medicina", "Facultad de Medicina", "Facultad"},
		{"fac-odontologia", "Facultad de Odontología", "Facultad"},
		{"fac-turismo", "Facultad de Turismo", "Facultad"},

		// Facultades, norte
		{"fac-agropecuarias", "Facultad de Ciencias Agropecuarias y Ambientales", "Facultad"},
		{"fac-matematicas-norte", "Facultad de Matemáticas (Norte)", "Facultad"},
	}

	for i := 1; i <= 50; i++ {
		cat = append(cat, Institucion{
			Value:     fmt.Sprintf("prep-%d", i),
			Label:     fmt.Sprintf("Escuela Preparatoria No. %d", i),
			Categoria: "Preparatoria",
		})
	}

	cat = append(cat,
		Institucion{"rectoria", "Rectoría / Administración Central", "Rectoría"},
		Institucion{"coord-sur", "Coordinación Regional Zona Sur (Acapulco)", "Coordinación"},
		Institucion{"coord-centro", "Coordinación Regional Zona Centro", "Coordinación"},
		Institucion{"coord-norte", "Coordinación Regional Zona Norte", "Coordinación"},
		Institucion{"coord-costa-chica", "Coordinación Regional Costa Chica", "Coordinación"},
		Institucion{"coord-costa-grande", "Coordinación Regional Costa Grande", "Coordinación"},
		Institucion{"coord-montana", "Coordinación Regional Montaña", "Coordinación"},
		Institucion{"coord-tierra-caliente", "Coordinación Regional Tierra Caliente", "Coordinación"},
	)
	return cat
}

// Todas returns the full catalog in declaration order.
func Todas() []Institucion {
	out := make([]Institucion, len(instituciones))
	copy(out, instituciones)
	return out
}

// Existe reports whether value is a known institution key.
func Existe(value string) bool {
	for _, inst := range instituciones {
		if inst.Value == value {
			return true
		}
	}
	return false
}

// Label resolves an institution value to its display label; unknown values
// are returned as-is so stale campus keys still render.
func Label(value string) string {
	for _, inst := range instituciones {
		if inst.Value == value {
			return inst.Label
		}
	}
	return value
}

var numRe = regexp.MustCompile(`\d+`)

// Buscar ranks institutions against a free-text query. Weights: full prefix
// match 100, substring 50, number match 40 (preparatorias), categoría 30,
// per-word substring 20, per-word prefix 10. Empty query returns the first
// maxResults entries.
func Buscar(query string, maxResults int) []Institucion {
	if maxResults <= 0 {
		maxResults = 5
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		all := Todas()
		if len(all) > maxResults {
			all = all[:maxResults]
		}
		return all
	}

	palabras := strings.Fields(q)
	numeros := numRe.FindAllString(q, -1)

	type scored struct {
		inst  Institucion
		score int
	}
	var resultados []scored
	for _, inst := range instituciones {
		label := strings.ToLower(inst.Label)
		categoria := strings.ToLower(inst.Categoria)

		score := 0
		if strings.HasPrefix(label, q) {
			score += 100
		}
		if strings.Contains(label, q) {
			score += 50
		}
		if strings.Contains(categoria, q) {
			score += 30
		}
		for _, p := range palabras {
			if strings.Contains(label, p) {
				score += 20
			}
			for _, pl := range strings.Fields(label) {
				if strings.HasPrefix(pl, p) {
					score += 10
				}
			}
		}
		for _, n := range numeros {
			if strings.Contains(inst.Value, n) {
				score += 40
			}
		}
		if score > 0 {
			resultados = append(resultados, scored{inst, score})
		}
	}

	sort.SliceStable(resultados, func(i, j int) bool {
		return resultados[i].score > resultados[j].score
	})
	if len(resultados) > maxResults {
		resultados = resultados[:maxResults]
	}
	out := make([]Institucion, len(resultados))
	for i, r := range resultados {
		out[i] = r.inst
	}
	return out
}
