package analytics_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BANCESQWQ/bobisfinal/internal/application/analytics"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// stubAnalyticsRepo devuelve una serie de un solo punto para forzar la línea
// base aleatoria del estimador.
type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) GetEstadisticas(context.Context) (*repository.EstadisticasResult, error) {
	return &repository.EstadisticasResult{TotalBobinas: 1, PesoTotal: decimal.NewFromInt(100)}, nil
}
func (stubAnalyticsRepo) GetBobinasPopulares(context.Context, int) ([]repository.BobinaPopularResult, error) {
	return nil, nil
}
func (stubAnalyticsRepo) GetEstadoBobinas(context.Context) ([]repository.EstadoBobinaResult, error) {
	return nil, nil
}
func (stubAnalyticsRepo) GetBobinasAntiguas(context.Context, int) ([]repository.BobinaAntiguaResult, error) {
	return nil, nil
}
func (stubAnalyticsRepo) GetTendenciaMensual(context.Context, int) ([]repository.TendenciaMensualResult, error) {
	return []repository.TendenciaMensualResult{
		{Mes: "2026-07", TotalPedidos: 5, PesoTotal: decimal.NewFromInt(500)},
	}, nil
}

func TestAnaliticaPredictiva_ArmaLaRespuestaCompleta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(stubAnalyticsRepo{})

	out, err := uc.AnaliticaPredictiva(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.Prediccion, 6)
	assert.Equal(t, 1, out.Estadisticas.TotalBobinas)
	for _, p := range out.Prediccion {
		assert.GreaterOrEqual(t, p.DemandaPredicha, 20)
		assert.Equal(t, analytics.TendenciaEstable, p.Tendencia)
	}
}

// Peticiones concurrentes al tablero no comparten generador aleatorio; este
// test falla bajo -race si el estimador vuelve a usar estado compartido.
func TestAnaliticaPredictiva_PeticionesConcurrentes(t *testing.T) {
	uc := analytics.NewDashboardUseCase(stubAnalyticsRepo{})

	const goroutines = 8
	const llamadas = 25

	var wg sync.WaitGroup
	errs := make(chan error, goroutines*llamadas)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < llamadas; i++ {
				out, err := uc.AnaliticaPredictiva(context.Background())
				if err != nil {
					errs <- err
					continue
				}
				if len(out.Prediccion) != 6 {
					errs <- assert.AnError
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
