package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/adapters/render"
	"github.com/khoahotran/cvos/internal/application/usecase/auth"
	localeUC "github.com/khoahotran/cvos/internal/application/usecase/locale"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
	"github.com/khoahotran/cvos/pkg/logger"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	renderer     *render.Renderer
	registry     *wizard.Registry
	locales      *localeUC.LocaleUseCase
	checker      *CheckerHandler
	loginUseCase *auth.LoginUseCase
	sessionTTL   time.Duration
	logger       logger.Logger
}

func NewPageHandler(
	r *render.Renderer,
	reg *wizard.Registry,
	locales *localeUC.LocaleUseCase,
	checker *CheckerHandler,
	loginUC *auth.LoginUseCase,
	sessionTTL time.Duration,
	log logger.Logger,
) *PageHandler {
	return &PageHandler{
		renderer:     r,
		registry:     reg,
		locales:      locales,
		checker:      checker,
		loginUseCase: loginUC,
		sessionTTL:   sessionTTL,
		logger:       log,
	}
}

// localeFor picks ?lang= when valid, storing it for signed-in owners, and
// otherwise the stored preference.
func (h *PageHandler) localeFor(c *gin.Context) i18n.Locale {
	ownerID, signedIn := GetOwnerIDFromGinContext(c)
	if raw := c.Query("lang"); raw != "" {
		if signedIn {
			if l, err := h.locales.Set(c.Request.Context(), ownerID, raw); err == nil {
				return l
			}
		} else if l, err := i18n.ParseLocale(raw); err == nil {
			return l
		}
	}
	if signedIn {
		return h.locales.Get(c.Request.Context(), ownerID)
	}
	return i18n.DefaultLocale
}

func (h *PageHandler) render(c *gin.Context, status int, name, title string, data any) {
	_, signedIn := GetOwnerIDFromGinContext(c)
	page := render.Page{
		Title:         title,
		Path:          c.Request.URL.Path,
		I18n:          i18n.NewContext(h.localeFor(c)),
		Languages:     i18n.Languages(),
		Authenticated: signedIn,
		Data:          data,
	}
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(c.Writer, name, page); err != nil {
		h.logger.Error("Failed to render page", err, zap.String("page", name))
		c.Error(apperror.NewInternal("failed to render page", err))
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageHome, "", nil)
}

func (h *PageHandler) Pricing(c *gin.Context) {
	h.render(c, http.StatusOK, render.PagePricing, "Pricing", nil)
}

func (h *PageHandler) Login(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageLogin, "Login", render.LoginView{})
}

// LoginSubmit handles the HTML form: it stores the token in a cookie and
// continues to the dashboard.
func (h *PageHandler) LoginSubmit(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, render.PageLogin, "Login", render.LoginView{Error: "email and password are required"})
		return
	}
	out, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.render(c, apperror.ToHTTPStatus(err), render.PageLogin, "Login", render.LoginView{Error: "could not sign in"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, out.AccessToken, int(h.sessionTTL.Seconds()), "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *PageHandler) Checker(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageChecker, "ATS", render.CheckerView{Mode: c.DefaultQuery("mode", string(analysis.ModeFast))})
}

// CheckerSubmit renders the result card or the single error banner.
func (h *PageHandler) CheckerSubmit(c *gin.Context) {
	out, mode := h.checker.run(c)
	if out == nil {
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		msg := err.Error()
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Details
		}
		c.Errors = c.Errors[:0]
		h.render(c, apperror.ToHTTPStatus(err), render.PageChecker, "ATS", render.CheckerView{Mode: string(mode), Error: msg})
		return
	}
	h.render(c, http.StatusOK, render.PageChecker, "ATS", render.CheckerView{
		Mode:   string(mode),
		Result: out.Result,
		Error:  out.Error,
	})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	ownerID, _ := GetOwnerIDFromGinContext(c)
	tc := i18n.NewContext(h.localeFor(c))
	ctrl, err := h.registry.Controller(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	h.render(c, http.StatusOK, render.PageDashboard, "Dashboard", render.NewDashboardView(ctrl.State(), tc))
}

func (h *PageHandler) DashboardPreview(c *gin.Context) {
	ownerID, _ := GetOwnerIDFromGinContext(c)
	tc := i18n.NewContext(h.localeFor(c))
	ctrl, err := h.registry.Controller(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	h.render(c, http.StatusOK, render.PagePreview, "Preview", render.CVView{Doc: ctrl.Preview(), I18n: tc})
}
