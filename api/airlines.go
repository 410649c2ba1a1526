package api

import (
	"net/http"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/service/airlines"
	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	service airlines.AirlineUseCase
	cfg     handlerConfig
}

func NewAirlineHandler(service airlines.AirlineUseCase, opts ...HandlerOption) *AirlineHandler {
	return &AirlineHandler{service: service, cfg: newHandlerConfig(opts)}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/filtros", h.list)
	router.GET("/cia_completa", h.complete)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/:id/aeronaves/count", h.countAircraft)
	router.GET("/:id/voos/count", h.countFlights)
	router.POST("/:id/reindex", h.reindex)
}

// create godoc
//
//	@Summary		Create an airline
//	@Tags			cias
//	@Accept			json
//	@Produce		json
//	@Param			airline	body	domain.AirlineInput	true	"payload"
//	@Success		201	{object}	domain.Airline
//	@Failure		400	{object}	Error
//	@Router			/cias [post]
func (h *AirlineHandler) create(c *gin.Context) {
	var input domain.AirlineInput
	if !bindJSON(c, &input) {
		return
	}
	airline, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airline)
}

// list godoc
//
//	@Summary		List airlines
//	@Description	Filters combine with AND. The page is taken in storage order and then sorted.
//	@Tags			cias
//	@Produce		json
//	@Param			id	query	string	false	"airline id"
//	@Param			cod_iata	query	string	false	"partial, case-insensitive IATA code"
//	@Param			busca_texto	query	string	false	"partial, case-insensitive name"
//	@Param			ordenacao	query	string	false	"sort the returned page" Enums(nome, cod_iata)
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.Airline
//	@Failure		400	{object}	Error
//	@Router			/cias [get]
//	@Router			/cias/filtros [get]
func (h *AirlineHandler) list(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.List(c.Request.Context(), airlines.ListParams{
		ID:         c.Query("id"),
		CodIATA:    c.Query("cod_iata"),
		BuscaTexto: c.Query("busca_texto"),
		Ordenacao:  c.Query("ordenacao"),
		Page:       page,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// get godoc
//
//	@Summary		Get an airline
//	@Tags			cias
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Success		200	{object}	domain.Airline
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/cias/{id} [get]
func (h *AirlineHandler) get(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	airline, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

// update godoc
//
//	@Summary		Partially update an airline
//	@Description	Absent fields keep their stored value.
//	@Tags			cias
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Param			patch	body	domain.AirlinePatch	true	"payload"
//	@Success		200	{object}	domain.Airline
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/cias/{id} [put]
func (h *AirlineHandler) update(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	var patch domain.AirlinePatch
	if !bindJSON(c, &patch) {
		return
	}
	airline, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

// delete godoc
//
//	@Summary		Delete an airline
//	@Description	Fails while aircraft or flights reference the airline.
//	@Tags			cias
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Success		200	{object}	Message
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/cias/{id} [delete]
func (h *AirlineHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "airline deleted"})
}

// countAircraft godoc
//
//	@Summary		Count the aircraft of an airline
//	@Tags			cias
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Success		200	{integer}	int
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/cias/{id}/aeronaves/count [get]
func (h *AirlineHandler) countAircraft(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	n, err := h.service.CountAircraft(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// countFlights godoc
//
//	@Summary		Count the flights of an airline
//	@Tags			cias
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Success		200	{integer}	int
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/cias/{id}/voos/count [get]
func (h *AirlineHandler) countFlights(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	n, err := h.service.CountFlights(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// complete godoc
//
//	@Summary		Airlines with their aircraft and flights
//	@Tags			cias
//	@Produce		json
//	@Param			id	query	string	false	"restrict to one airline"
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.AirlineComplete
//	@Failure		400	{object}	Error
//	@Router			/cias/cia_completa [get]
func (h *AirlineHandler) complete(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.Complete(c.Request.Context(), airlines.CompleteParams{ID: c.Query("id"), Page: page})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// reindex godoc
//
//	@Summary		Rebuild the aircraft and flight lists of an airline
//	@Tags			cias
//	@Produce		json
//	@Param			id	path	string	true	"airline id"
//	@Success		200	{object}	domain.Airline
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/cias/{id}/reindex [post]
func (h *AirlineHandler) reindex(c *gin.Context) {
	id, ok := pathID(c, "airline")
	if !ok {
		return
	}
	airline, err := h.service.Reindex(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}
