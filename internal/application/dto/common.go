package dto

// Pagination metadatos de página del sobre de respuesta.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPagination calcula pages = ceil(total/perPage), con mínimo 1 página
// aunque total sea cero para no romper la paginación del frontend.
func NewPagination(page, perPage, total int) Pagination {
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

// SuccessResponse sobre uniforme de éxito: {success, data, pagination?, message?}.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// ErrorResponse sobre uniforme de error: {success: false, error}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// OK arma el sobre de éxito simple.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// OKPage arma el sobre de éxito con paginación.
func OKPage(data any, p Pagination) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Pagination: &p}
}

// OKMessage arma el sobre de éxito con mensaje para operaciones de escritura.
func OKMessage(data any, message string) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Message: message}
}

// Fail arma el sobre de error.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
