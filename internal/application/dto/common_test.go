package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
)

func TestNewPagination_CalculaPaginas(t *testing.T) {
	casos := []struct {
		nombre  string
		page    int
		perPage int
		total   int
		pages   int
	}{
		{"total cero mantiene una página", 1, 10, 0, 1},
		{"división exacta", 1, 10, 30, 3},
		{"resto agrega página", 2, 10, 25, 3},
		{"una sola fila", 1, 10, 1, 1},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := dto.NewPagination(c.page, c.perPage, c.total)
			assert.Equal(t, c.pages, p.Pages)
			assert.Equal(t, c.page, p.Page)
			assert.Equal(t, c.perPage, p.PerPage)
			assert.Equal(t, c.total, p.Total)
		})
	}
}

func TestOKPage_IncluyePaginacion(t *testing.T) {
	resp := dto.OKPage([]int{1, 2}, dto.NewPagination(1, 10, 2))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Pagination)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestFail_ArmaSobreDeError(t *testing.T) {
	resp := dto.Fail("tabla no válida")
	assert.False(t, resp.Success)
	assert.Equal(t, "tabla no válida", resp.Error)
}
