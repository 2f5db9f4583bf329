package http

import (
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/analysis"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type fieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type entryResponse struct {
	ID string `json:"id"`
}

type navigationRequest struct {
	Action string `json:"action" binding:"required,oneof=next previous jump"`
	Step   string `json:"step"`
}

type navigationResponse struct {
	Moved bool `json:"moved"`
	wizard.State
}

type exportResponse struct {
	URL string `json:"url"`
}

type localeRequest struct {
	Locale string `json:"locale" binding:"required"`
}

type localeResponse struct {
	Locale    string         `json:"locale"`
	Languages []languageItem `json:"languages"`
}

type languageItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type analysisResponse struct {
	Result *analysis.Result `json:"result"`
}
