package analytics

import (
	"math"
	"math/rand"
	"time"
)

// Umbrales de pendiente para clasificar la tendencia.
const (
	pendienteCreciente   = 0.5
	pendienteDecreciente = -0.5

	mesesProyectados = 6
	pisoPrediccion   = 10
	baseFallback     = 50
	pisoFallback     = 20
)

// Tendencias posibles de la proyección.
const (
	TendenciaCreciente   = "creciente"
	TendenciaDecreciente = "decreciente"
	TendenciaEstable     = "estable"
)

// Prediccion es la demanda proyectada de un mes futuro.
type Prediccion struct {
	Mes             string
	DemandaPredicha int
	Tendencia       string
}

// PredecirDemanda proyecta la demanda de los próximos seis meses ajustando
// por mínimos cuadrados una recta sobre la serie mensual de pedidos. Con
// menos de dos puntos, o si la serie degenera, cae a una línea base con una
// perturbación tomada de rng. Es una función pura salvo por rng, que se
// inyecta para poder fijarlo en pruebas.
func PredecirDemanda(totales []int, ahora time.Time, rng *rand.Rand) []Prediccion {
	n := len(totales)
	if n < 2 {
		return prediccionBase(ahora, rng)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range totales {
		x := float64(i)
		sumX += x
		sumY += float64(y)
		sumXY += x * float64(y)
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return prediccionBase(ahora, rng)
	}
	m := (fn*sumXY - sumX*sumY) / denom
	b := (sumY - m*sumX) / fn

	tendencia := TendenciaEstable
	switch {
	case m > pendienteCreciente:
		tendencia = TendenciaCreciente
	case m < pendienteDecreciente:
		tendencia = TendenciaDecreciente
	}

	out := make([]Prediccion, 0, mesesProyectados)
	for i := 0; i < mesesProyectados; i++ {
		demanda := int(math.Round(m*float64(n+i) + b))
		if demanda < pisoPrediccion {
			demanda = pisoPrediccion
		}
		out = append(out, Prediccion{
			Mes:             mesFuturo(ahora, i+1),
			DemandaPredicha: demanda,
			Tendencia:       tendencia,
		})
	}
	return out
}

func prediccionBase(ahora time.Time, rng *rand.Rand) []Prediccion {
	out := make([]Prediccion, 0, mesesProyectados)
	for i := 0; i < mesesProyectados; i++ {
		demanda := baseFallback + rng.Intn(21) - 10
		if demanda < pisoFallback {
			demanda = pisoFallback
		}
		out = append(out, Prediccion{
			Mes:             mesFuturo(ahora, i+1),
			DemandaPredicha: demanda,
			Tendencia:       TendenciaEstable,
		})
	}
	return out
}

func mesFuturo(ahora time.Time, pasos int) string {
	return ahora.AddDate(0, 0, 30*pasos).Format("2006-01")
}
