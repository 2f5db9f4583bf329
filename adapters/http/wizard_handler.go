package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	exportUC "github.com/khoahotran/cvos/internal/application/usecase/export"
	localeUC "github.com/khoahotran/cvos/internal/application/usecase/locale"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/profile"
	domainwizard "github.com/khoahotran/cvos/internal/domain/wizard"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/logger"
)

type WizardHandler struct {
	registry      *wizard.Registry
	requestExport *exportUC.RequestExportUseCase
	getExport     *exportUC.GetExportUseCase
	locales       *localeUC.LocaleUseCase
	logger        logger.Logger
}

func NewWizardHandler(
	reg *wizard.Registry,
	requestExport *exportUC.RequestExportUseCase,
	getExport *exportUC.GetExportUseCase,
	locales *localeUC.LocaleUseCase,
	log logger.Logger,
) *WizardHandler {
	return &WizardHandler{
		registry:      reg,
		requestExport: requestExport,
		getExport:     getExport,
		locales:       locales,
		logger:        log,
	}
}

func (h *WizardHandler) controller(c *gin.Context) (*wizard.Controller, bool) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return nil, false
	}
	ctrl, err := h.registry.Controller(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return nil, false
	}
	return ctrl, true
}

func collectionParam(c *gin.Context) (profile.Collection, bool) {
	col, err := profile.ParseCollection(c.Param("collection"))
	if err != nil {
		c.Error(apperror.NewNotFound("collection", c.Param("collection")))
		return "", false
	}
	return col, true
}

func (h *WizardHandler) GetState(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.State())
}

func (h *WizardHandler) UpdateField(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid field update body", err))
		return
	}
	if err := ctrl.SetField(c.Request.Context(), profile.Field(req.Field), req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ctrl.State())
}

func (h *WizardHandler) AddEntry(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	col, ok := collectionParam(c)
	if !ok {
		return
	}
	id, err := ctrl.Add(c.Request.Context(), col)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entryResponse{ID: id})
}

func (h *WizardHandler) UpdateEntry(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	col, ok := collectionParam(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid entry update body", err))
		return
	}
	err := ctrl.Update(c.Request.Context(), col, c.Param("id"), profile.EntryField(req.Field), req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ctrl.State())
}

func (h *WizardHandler) RemoveEntry(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	col, ok := collectionParam(c)
	if !ok {
		return
	}
	if err := ctrl.Remove(c.Request.Context(), col, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) Navigate(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req navigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid navigation body", err))
		return
	}

	moved := true
	switch req.Action {
	case "next":
		ctrl.Next()
	case "previous":
		ctrl.Previous()
	case "jump":
		moved = ctrl.JumpTo(domainwizard.Step(req.Step))
	}
	c.JSON(http.StatusOK, navigationResponse{Moved: moved, State: ctrl.State()})
}

func (h *WizardHandler) Preview(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.Preview())
}

func (h *WizardHandler) RequestExport(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	ownerID, _ := GetOwnerIDFromGinContext(c)
	err := h.requestExport.Execute(c.Request.Context(), exportUC.RequestExportInput{
		OwnerID: ownerID,
		Profile: ctrl.Profile(),
		Locale:  h.locales.Get(c.Request.Context(), ownerID),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (h *WizardHandler) GetExport(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	url, err := h.getExport.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, exportResponse{URL: url})
}
