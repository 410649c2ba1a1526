package api

import (
	"net/http"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/service/aircraft"
	"github.com/gin-gonic/gin"
)

type AircraftHandler struct {
	service aircraft.AircraftUseCase
	cfg     handlerConfig
}

func NewAircraftHandler(service aircraft.AircraftUseCase, opts ...HandlerOption) *AircraftHandler {
	return &AircraftHandler{service: service, cfg: newHandlerConfig(opts)}
}

func (h *AircraftHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/all", h.list)
	router.GET("/aeronaves-completas", h.complete)
	router.GET("/contagem-aeronaves-por-voos", h.flightsPerModel)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// create godoc
//
//	@Summary		Create an aircraft
//	@Description	last_check and next_check default to now.
//	@Tags			aeronaves
//	@Accept			json
//	@Produce		json
//	@Param			aircraft	body	domain.AircraftInput	true	"payload"
//	@Success		201	{object}	domain.Aircraft
//	@Failure		400	{object}	Error
//	@Failure		422	{object}	Error
//	@Router			/aeronaves [post]
func (h *AircraftHandler) create(c *gin.Context) {
	var input domain.AircraftInput
	if !bindJSON(c, &input) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// list godoc
//
//	@Summary		List aircraft
//	@Description	Filters combine with AND. Date bounds are inclusive.
//	@Tags			aeronaves
//	@Produce		json
//	@Param			id	query	string	false	"aircraft id"
//	@Param			modelo	query	string	false	"partial, case-insensitive model"
//	@Param			capacidade	query	int	false	"exact capacity"
//	@Param			cia_id	query	string	false	"owning airline id"
//	@Param			last_check_inicio	query	string	false	"last_check lower bound (YYYY-MM-DD or RFC 3339)"
//	@Param			last_check_fim	query	string	false	"last_check upper bound (YYYY-MM-DD or RFC 3339)"
//	@Param			next_check_inicio	query	string	false	"next_check lower bound (YYYY-MM-DD or RFC 3339)"
//	@Param			next_check_fim	query	string	false	"next_check upper bound (YYYY-MM-DD or RFC 3339)"
//	@Param			ordenacao	query	string	false	"sort the returned page" Enums(modelo, capacidade, last_check, next_check)
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.Aircraft
//	@Failure		400	{object}	Error
//	@Router			/aeronaves [get]
//	@Router			/aeronaves/all [get]
func (h *AircraftHandler) list(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.List(c.Request.Context(), aircraft.ListParams{
		ID:              c.Query("id"),
		Modelo:          c.Query("modelo"),
		Capacidade:      c.Query("capacidade"),
		CiaID:           c.Query("cia_id"),
		LastCheckInicio: c.Query("last_check_inicio"),
		LastCheckFim:    c.Query("last_check_fim"),
		NextCheckInicio: c.Query("next_check_inicio"),
		NextCheckFim:    c.Query("next_check_fim"),
		Ordenacao:       c.Query("ordenacao"),
		Page:            page,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// get godoc
//
//	@Summary		Get an aircraft
//	@Tags			aeronaves
//	@Produce		json
//	@Param			id	path	string	true	"aircraft id"
//	@Success		200	{object}	domain.Aircraft
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/aeronaves/{id} [get]
func (h *AircraftHandler) get(c *gin.Context) {
	id, ok := pathID(c, "aircraft")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// update godoc
//
//	@Summary		Replace an aircraft
//	@Description	Every field is overwritten.
//	@Tags			aeronaves
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"aircraft id"
//	@Param			aircraft	body	domain.AircraftInput	true	"payload"
//	@Success		200	{object}	domain.Aircraft
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		422	{object}	Error
//	@Router			/aeronaves/{id} [put]
func (h *AircraftHandler) update(c *gin.Context) {
	id, ok := pathID(c, "aircraft")
	if !ok {
		return
	}
	var input domain.AircraftInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// delete godoc
//
//	@Summary		Delete an aircraft
//	@Tags			aeronaves
//	@Produce		json
//	@Param			id	path	string	true	"aircraft id"
//	@Success		200	{object}	Message
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/aeronaves/{id} [delete]
func (h *AircraftHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "aircraft")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "aircraft deleted"})
}

// complete godoc
//
//	@Summary		Aircraft with their airline
//	@Description	cia is null when the airline no longer exists.
//	@Tags			aeronaves
//	@Produce		json
//	@Param			id	query	string	false	"restrict to one aircraft"
//	@Param			offset	query	int	false	"documents to skip" default(0) minimum(0)
//	@Param			limit	query	int	false	"page size" default(10) minimum(1) maximum(100)
//	@Success		200	{array}	domain.AircraftComplete
//	@Failure		400	{object}	Error
//	@Router			/aeronaves/aeronaves-completas [get]
func (h *AircraftHandler) complete(c *gin.Context) {
	page, err := h.cfg.page(c)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.Complete(c.Request.Context(), aircraft.CompleteParams{ID: c.Query("id"), Page: page})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// flightsPerModel godoc
//
//	@Summary		Count flights per aircraft model
//	@Tags			aeronaves
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Router			/aeronaves/contagem-aeronaves-por-voos [get]
func (h *AircraftHandler) flightsPerModel(c *gin.Context) {
	counts, err := h.service.FlightsPerModel(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
