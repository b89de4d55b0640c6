package static

import (
	"context"
	"sort"

	"medirecord/internal/ports/drugs"
)

var _ drugs.InteractionChecker = (*Dictionary)(nil)

type pair struct{ a, b string }

func pairOf(x, y string) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// interactions: pares de claves de table, en cualquier orden.
var interactions = map[pair]drugs.Interaction{
	pairOf("metformina", "glibenclamida"): {
		Severity:       drugs.SeverityMild,
		Description:    "La glibenclamida puede aumentar el efecto hipoglucemiante de la metformina.",
		Recommendation: "Monitorear niveles de glucosa con frecuencia.",
	},
	pairOf("ibuprofeno", "aspirina"): {
		Severity:       drugs.SeverityModerate,
		Description:    "El ibuprofeno puede reducir el efecto antiagregante de la aspirina y aumenta el riesgo de sangrado digestivo.",
		Recommendation: "Tomar la aspirina al menos 30 minutos antes del ibuprofeno.",
	},
	pairOf("naproxeno", "aspirina"): {
		Severity:       drugs.SeverityModerate,
		Description:    "Dos antiinflamatorios juntos aumentan el riesgo de úlcera y sangrado digestivo.",
		Recommendation: "Consultar al médico antes de combinarlos.",
	},
	pairOf("ibuprofeno", "diclofenaco"): {
		Severity:       drugs.SeveritySevere,
		Description:    "Dos AINE simultáneos no suman eficacia y multiplican el riesgo gastrointestinal y renal.",
		Recommendation: "Evitar la combinación; usar uno solo.",
	},
	pairOf("ibuprofeno", "naproxeno"): {
		Severity:       drugs.SeveritySevere,
		Description:    "Dos AINE simultáneos no suman eficacia y multiplican el riesgo gastrointestinal y renal.",
		Recommendation: "Evitar la combinación; usar uno solo.",
	},
	pairOf("ibuprofeno", "losartan"): {
		Severity:       drugs.SeverityModerate,
		Description:    "El ibuprofeno puede disminuir el efecto antihipertensivo del losartán y afectar la función renal.",
		Recommendation: "Controlar la presión arterial; preferir paracetamol para el dolor.",
	},
	pairOf("ibuprofeno", "enalapril"): {
		Severity:       drugs.SeverityModerate,
		Description:    "El ibuprofeno puede disminuir el efecto antihipertensivo del enalapril y afectar la función renal.",
		Recommendation: "Controlar la presión arterial; preferir paracetamol para el dolor.",
	},
	pairOf("enalapril", "losartan"): {
		Severity:       drugs.SeveritySevere,
		Description:    "El doble bloqueo del sistema renina-angiotensina aumenta el riesgo de hiperpotasemia e insuficiencia renal.",
		Recommendation: "No combinar salvo indicación expresa del especialista.",
	},
	pairOf("captopril", "losartan"): {
		Severity:       drugs.SeveritySevere,
		Description:    "El doble bloqueo del sistema renina-angiotensina aumenta el riesgo de hiperpotasemia e insuficiencia renal.",
		Recommendation: "No combinar salvo indicación expresa del especialista.",
	},
	pairOf("ciprofloxacino", "glibenclamida"): {
		Severity:       drugs.SeverityModerate,
		Description:    "El ciprofloxacino puede potenciar la glibenclamida y provocar hipoglucemias.",
		Recommendation: "Medir la glucosa con más frecuencia durante el antibiótico.",
	},
	pairOf("omeprazol", "clonazepam"): {
		Severity:       drugs.SeverityMild,
		Description:    "El omeprazol puede aumentar levemente los niveles de clonazepam.",
		Recommendation: "Vigilar somnolencia excesiva.",
	},
}

// Interactions cruza todos los pares de names contra la tabla local.
func (d *Dictionary) Interactions(_ context.Context, names []string) ([]drugs.Interaction, error) {
	keys := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		k := normalize(n)
		if _, ok := table[k]; !ok || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]drugs.Interaction, 0)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			it, ok := interactions[pair{a: keys[i], b: keys[j]}]
			if !ok {
				continue
			}
			it.DrugA, it.DrugB = keys[i], keys[j]
			it.Source = SourceName
			out = append(out, it)
		}
	}
	return out, nil
}
