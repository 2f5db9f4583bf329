package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	localeUC "github.com/khoahotran/cvos/internal/application/usecase/locale"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
)

type LocaleHandler struct {
	locales *localeUC.LocaleUseCase
}

func NewLocaleHandler(uc *localeUC.LocaleUseCase) *LocaleHandler {
	return &LocaleHandler{locales: uc}
}

func toLocaleResponse(l i18n.Locale) localeResponse {
	resp := localeResponse{Locale: string(l)}
	for _, lang := range i18n.Languages() {
		resp.Languages = append(resp.Languages, languageItem{Code: string(lang.Code), Name: lang.Name, Flag: lang.Flag})
	}
	return resp
}

func (h *LocaleHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	c.JSON(http.StatusOK, toLocaleResponse(h.locales.Get(c.Request.Context(), ownerID)))
}

func (h *LocaleHandler) Put(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	var req localeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid locale body", err))
		return
	}
	l, err := h.locales.Set(c.Request.Context(), ownerID, req.Locale)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toLocaleResponse(l))
}
