// Package server exposes the lesson catalog and profile store over a
// local HTTP API for the web front end.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/logger"
	"github.com/abhisek/learnpy/internal/profile"
)

// Handler serves the learnpy HTTP API.
type Handler struct {
	Store   *profile.Store
	Catalog *catalog.Catalog
	Log     *logger.Logger
}

func (h *Handler) GetLessons(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Lessons())
}

func (h *Handler) GetLesson(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lesson id must be an integer"})
		return
	}
	l, ok := h.Catalog.Lesson(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no lesson with id %d", id)})
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) GetProfile(c *gin.Context) {
	identity, err := h.Store.ActiveIdentity()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *Handler) PutProfile(c *gin.Context) {
	var identity profile.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.SetActiveIdentity(identity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.Store.ActiveIdentity()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	if err := h.Store.ClearActiveIdentity(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

func (h *Handler) GetProgress(c *gin.Context) {
	rec, err := h.Store.Progress(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) PutProgress(c *gin.Context) {
	var rec profile.ProgressRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.SetProgress(c.Param("id"), rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetQuizStats(c *gin.Context) {
	stats, err := h.Store.QuizStats(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) PutQuizStats(c *gin.Context) {
	var stats profile.QuizStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.SetQuizStats(c.Param("id"), stats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Export streams a pretty-printed bundle as a JSON download using the
// site's filename convention.
func (h *Handler) Export(c *gin.Context) {
	id := c.Param("id")
	bundle, err := h.Store.Export(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	raw, err := bundle.MarshalPretty()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := ""
	if bundle.Profile != nil {
		name = bundle.Profile.Name
	}
	filename := profile.ExportFilename(name, id)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// Import reads a bundle from the request body. Invalid payloads get a
// 400 with the specific reason; nothing is written in that case.
func (h *Handler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bundle, err := h.Store.Import(raw)
	if err != nil {
		if errors.Is(err, profile.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.Log.Info("imported bundle", "userId", bundle.UserID)
	c.JSON(http.StatusOK, gin.H{"status": "imported", "userId": bundle.UserID})
}
