package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

// uniqueViolation is the Postgres SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

type errorMapping struct {
	status  int
	message string
}

// Business codes from the use cases mapped to the status and pt-BR message
// the site shows the client verbatim.
var businessErrors = map[string]errorMapping{
	"missing_required_field": {http.StatusBadRequest, "Preencha todos os campos obrigatórios."},
	"invalid_date":           {http.StatusBadRequest, "Data inválida."},
	"invalid_time_slot":      {http.StatusBadRequest, "Horário indisponível."},
	"invalid_payment_method": {http.StatusBadRequest, "Forma de pagamento inválida."},
	"invalid_price":          {http.StatusUnprocessableEntity, "Preço do serviço inválido."},
	"invalid_state":          {http.StatusConflict, "Este agendamento não pode mais ser alterado."},
	"service_not_found":      {http.StatusNotFound, "Serviço não encontrado."},
	"booking_not_found":      {http.StatusNotFound, "Agendamento não encontrado."},
	"invalid_file_type":      {http.StatusBadRequest, "Envie apenas arquivos de imagem."},
	"file_too_large":         {http.StatusBadRequest, "A imagem deve ter no máximo 5MB."},
	"invalid_category":       {http.StatusBadRequest, "Categoria de imagem inválida."},
}

// writeError translates an error from the lower layers into the JSON shape
// httperr writes everywhere else.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		if m, ok := businessErrors[be.Code]; ok {
			httperr.Write(c, m.status, be.Code, m.message)
			return
		}
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		httperr.Write(c, http.StatusConflict, "duplicate", "Este registro já existe.")
		return
	}

	httperr.Internal(c, "internal_error", "Ocorreu um erro. Tente novamente.")
}
