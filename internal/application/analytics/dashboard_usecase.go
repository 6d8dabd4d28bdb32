package analytics

import (
	"context"
	"math/rand"
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// Ventanas por defecto del tablero.
const (
	limitePopulares = 5
	limiteAntiguas  = 10
	mesesTendencia  = 12
)

// DashboardUseCase arma las estadísticas y la analítica predictiva del
// tablero a partir de los agregados SQL más la proyección de demanda.
// No guarda estado entre peticiones: rand.Rand no es seguro para uso
// concurrente, así que cada llamada recibe un generador propio.
type DashboardUseCase struct {
	repo   repository.AnalyticsRepository
	now    func() time.Time
	newRng func() *rand.Rand
}

// NewDashboardUseCase construye el caso de uso con el reloj real y un
// generador nuevo por llamada.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{
		repo: repo,
		now:  time.Now,
		newRng: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Estadisticas devuelve los contadores globales del inventario.
func (uc *DashboardUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasDTO, error) {
	res, err := uc.repo.GetEstadisticas(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.FromEstadisticas(res)
	return &out, nil
}

// AnaliticaPredictiva arma la respuesta completa del tablero: populares,
// estados, bobinas antiguas, tendencia mensual, proyección de demanda y los
// contadores globales.
func (uc *DashboardUseCase) AnaliticaPredictiva(ctx context.Context) (*dto.AnaliticaDTO, error) {
	populares, err := uc.repo.GetBobinasPopulares(ctx, limitePopulares)
	if err != nil {
		return nil, err
	}
	estados, err := uc.repo.GetEstadoBobinas(ctx)
	if err != nil {
		return nil, err
	}
	antiguas, err := uc.repo.GetBobinasAntiguas(ctx, limiteAntiguas)
	if err != nil {
		return nil, err
	}
	tendencia, err := uc.repo.GetTendenciaMensual(ctx, mesesTendencia)
	if err != nil {
		return nil, err
	}
	estadisticas, err := uc.repo.GetEstadisticas(ctx)
	if err != nil {
		return nil, err
	}

	serie := make([]int, 0, len(tendencia))
	for _, t := range tendencia {
		serie = append(serie, t.TotalPedidos)
	}
	predicciones := PredecirDemanda(serie, uc.now(), uc.newRng())

	prediccionDTOs := make([]dto.PrediccionDemandaDTO, 0, len(predicciones))
	for _, p := range predicciones {
		prediccionDTOs = append(prediccionDTOs, dto.PrediccionDemandaDTO{
			Mes:             p.Mes,
			DemandaPredicha: p.DemandaPredicha,
			Tendencia:       p.Tendencia,
		})
	}

	return &dto.AnaliticaDTO{
		BobinasPopulares: dto.FromBobinasPopulares(populares),
		EstadoBobinas:    dto.FromEstadoBobinas(estados),
		BobinasAntiguas:  dto.FromBobinasAntiguas(antiguas),
		TendenciaMensual: dto.FromTendenciaMensual(tendencia),
		Prediccion:       prediccionDTOs,
		Estadisticas:     dto.FromEstadisticas(estadisticas),
	}, nil
}
