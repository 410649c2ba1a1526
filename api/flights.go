package api

import (
	"net/http"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
	cfg     handlerConfig
}

func NewFlightHandler(service flights.FlightUseCase, opts ...HandlerOption) *FlightHandler {
	return &FlightHandler{service: service, cfg: newHandlerConfig(opts)}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/voos-completo", h.complete)
	router.GET("/contagem-por-companhia", h.countByAirline)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// create godoc
//
//	@Summary		Create a flight
//	@Tags			voos
//	@Accept			json
//	@Produce		json
//	@Param			flight	body	domain.FlightInput	true	"payload"
//	@Success		201	{object}	domain.Flight
//	@Failure		400	{object}	Error
//	@Failure		422	{object}	Error
//	@Router			/voos [post]
func (h *FlightHandler) create(c *gin.Context) {
	var input domain.FlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

// list godoc
//
//	@Summary		List flights
//	@Description	Filters combine with AND. Date bounds are inclusive.
//	@Tags			voos
//	@Produce		json
//	@Param			id	query	string	false	"flight id"
//	@Param			data_inicio	query	string	false	"hr_partida lower bound (YYYY-MM-DD or RFC 3339)"
//	@Param			data_fim	query	string	false	"hr_partida upper bound (YYYY-MM-DD or RFC 3339)"
//	@Param			busca_texto	query	string	false	"partial match on origem or destino"
//	@Param			cia_id	query	string	false	"airline id"
//	@Param			aeronave_id	query	string	false	"aircraft id"
//	@Param			status	query	string	false	"partial, case-insensitive status"
//	@Param			companhia_nome	query	string	false	"partial airline name"
//	@Param			ordenacao	query	string	false	"sort the returned page" Enums(hr_partida, hr_chegada, numero_voo)
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.Flight
//	@Failure		400	{object}	Error
//	@Router			/voos [get]
func (h *FlightHandler) list(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.List(c.Request.Context(), flights.ListParams{
		ID:            c.Query("id"),
		DataInicio:    c.Query("data_inicio"),
		DataFim:       c.Query("data_fim"),
		BuscaTexto:    c.Query("busca_texto"),
		CiaID:         c.Query("cia_id"),
		AeronaveID:    c.Query("aeronave_id"),
		Status:        c.Query("status"),
		CompanhiaNome: c.Query("companhia_nome"),
		Ordenacao:     c.Query("ordenacao"),
		Page:          page,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// get godoc
//
//	@Summary		Get a flight
//	@Tags			voos
//	@Produce		json
//	@Param			id	path	string	true	"flight id"
//	@Success		200	{object}	domain.Flight
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/voos/{id} [get]
func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// update godoc
//
//	@Summary		Replace a flight
//	@Tags			voos
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"flight id"
//	@Param			flight	body	domain.FlightInput	true	"payload"
//	@Success		200	{object}	domain.Flight
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		422	{object}	Error
//	@Router			/voos/{id} [put]
func (h *FlightHandler) update(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	var input domain.FlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// delete godoc
//
//	@Summary		Delete a flight
//	@Tags			voos
//	@Produce		json
//	@Param			id	path	string	true	"flight id"
//	@Success		200	{object}	Message
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/voos/{id} [delete]
func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "flight deleted"})
}

// complete godoc
//
//	@Summary		Flights with their airline and aircraft
//	@Description	cia or aeronave is null when dangling.
//	@Tags			voos
//	@Produce		json
//	@Param			id	query	string	false	"restrict to one flight"
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.FlightComplete
//	@Failure		400	{object}	Error
//	@Router			/voos/voos-completo [get]
func (h *FlightHandler) complete(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.Complete(c.Request.Context(), flights.CompleteParams{ID: c.Query("id"), Page: page})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// countByAirline godoc
//
//	@Summary		Count flights per airline
//	@Description	Keys are airline ids.
//	@Tags			voos
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Router			/voos/contagem-por-companhia [get]
func (h *FlightHandler) countByAirline(c *gin.Context) {
	counts, err := h.service.CountByAirline(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
