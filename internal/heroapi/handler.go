package heroapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"heroes/internal/domain"
)

// Handler serves the /heroes resource.
type Handler struct {
	Store  *Store
	Logger logrus.FieldLogger
}

func NewHandler(store *Store, logger logrus.FieldLogger) *Handler {
	return &Handler{Store: store, Logger: logger}
}

type heroRequest struct {
	ID   domain.HeroID `json:"id"`
	Name string        `json:"name" binding:"required"`
}

// Register mounts the hero routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/heroes", h.List)
	rg.GET("/heroes/", h.List)
	rg.GET("/heroes/:id", h.Get)
	rg.POST("/heroes", h.Create)
	rg.PUT("/heroes", h.Update)
	rg.DELETE("/heroes/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List(c.Query("name")))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.heroID(c)
	if !ok {
		return
	}
	hero, err := h.Store.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (h *Handler) Create(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}
	hero, err := h.Store.Create(domain.Hero{ID: req.ID, Name: req.Name})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.WithField("id", hero.ID).Info("hero created")
	c.JSON(http.StatusCreated, hero)
}

func (h *Handler) Update(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID == 0 {
		abort(c, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.Store.Update(domain.Hero{ID: req.ID, Name: req.Name}); err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.WithField("id", req.ID).Info("hero updated")
	c.Status(http.StatusNoContent)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.heroID(c)
	if !ok {
		return
	}
	if err := h.Store.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.WithField("id", id).Info("hero deleted")
	c.Status(http.StatusNoContent)
}

func (h *Handler) heroID(c *gin.Context) (domain.HeroID, bool) {
	n, err := strconv.Atoi(c.Param("id"))
	if err != nil || n <= 0 {
		abort(c, http.StatusBadRequest, "invalid hero id")
		return 0, false
	}
	return domain.HeroID(n), true
}

// fail maps store errors to HTTP statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		abort(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	case errors.Is(err, ErrConflict):
		abort(c, http.StatusConflict, http.StatusText(http.StatusConflict))
	default:
		h.Logger.WithError(err).Error("hero request failed")
		abort(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
