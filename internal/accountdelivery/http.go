package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pay-engine/internal/domain"
	"github.com/go-petr/pay-engine/pkg/errorspkg"
	"github.com/go-petr/pay-engine/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Snapshot(ctx context.Context) []domain.Balance
	Get(ctx context.Context, client domain.ClientID) (domain.Balance, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Balance domain.Balance `json:"balance"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type dataBalances struct {
	Balances []domain.Balance `json:"balances"`
}
type responseBalances struct {
	Data dataBalances `json:"data,omitempty"`
}

// List handles http request to list all account balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rows := h.service.Snapshot(ctx)

	res := responseBalances{
		Data: dataBalances{rows},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	ID *uint64 `uri:"id" binding:"required,max=65535"`
}

// Get handles http request to get one account's balances.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.JSONError{Error: errMsg}})

		return
	}

	balance, err := h.service.Get(ctx, domain.ClientID(*req.ID))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{balance},
	}

	gctx.JSON(http.StatusOK, res)
}
