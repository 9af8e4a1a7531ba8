package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metaforms/internal/core/apperror"
	"metaforms/internal/infrastructure/http/v1/dto"
	"metaforms/internal/metadata"
	"metaforms/pkg/logger"
)

// FormRegistry is the read side of metadata.Registry used by the handlers.
type FormRegistry interface {
	GetFormMetadata(id string) (metadata.FormMetadata, bool)
	List() []metadata.FormMetadata
	ListByModule(module string) []metadata.FormMetadata
	Modules() []metadata.Module
	Module(id string) (metadata.Module, bool)
}

// LookupRecorder counts resolver calls. Optional.
type LookupRecorder interface {
	RecordLookup(found bool)
}

// List views.
const (
	viewSummary = "summary"
	viewFull    = "full"
)

type MetadataHandler struct {
	*BaseHandler
	registry FormRegistry
	lookups  LookupRecorder
}

func NewMetadataHandler(base *BaseHandler, registry FormRegistry, lookups LookupRecorder) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
		lookups:     lookups,
	}
}

// ListForms returns all registered forms sorted by id.
// GET /api/v1/forms?module=finance&view=summary|full
func (h *MetadataHandler) ListForms(c *gin.Context) {
	view := c.DefaultQuery("view", viewSummary)
	if view != viewSummary && view != viewFull {
		h.Error(c, apperror.NewInvalidInput("view", view).
			WithDetail("allowed", []string{viewSummary, viewFull}))
		return
	}

	var forms []metadata.FormMetadata
	if module := c.Query("module"); module != "" {
		if _, ok := h.registry.Module(module); !ok {
			h.Error(c, apperror.NewNotFound("module", module))
			return
		}
		forms = h.registry.ListByModule(module)
	} else {
		forms = h.registry.List()
	}

	if view == viewFull {
		c.JSON(http.StatusOK, dto.NewListResponse(forms, len(forms)))
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromFormMetadataList(forms), len(forms)))
}

// GetForm returns the full metadata of one form.
// GET /api/v1/forms/:id
func (h *MetadataHandler) GetForm(c *gin.Context) {
	id := c.Param("id")

	def, ok := h.registry.GetFormMetadata(id)
	if h.lookups != nil {
		h.lookups.RecordLookup(ok)
	}
	if !ok {
		logger.Debug(c.Request.Context(), "form metadata not found", "form_id", id)
		h.Error(c, apperror.NewNotFound("form metadata", id))
		return
	}
	c.JSON(http.StatusOK, def)
}

// ListModules returns the navigation tree.
// GET /api/v1/modules
func (h *MetadataHandler) ListModules(c *gin.Context) {
	mods := h.registry.Modules()
	out := make([]dto.ModuleResponse, 0, len(mods))
	for _, mod := range mods {
		out = append(out, dto.FromModule(mod, h.registry.ListByModule(mod.ID)))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(out, len(out)))
}

// GetModule returns one navigation group with its forms.
// GET /api/v1/modules/:id
func (h *MetadataHandler) GetModule(c *gin.Context) {
	id := c.Param("id")

	mod, ok := h.registry.Module(id)
	if !ok {
		h.Error(c, apperror.NewNotFound("module", id))
		return
	}
	c.JSON(http.StatusOK, dto.FromModule(mod, h.registry.ListByModule(id)))
}
