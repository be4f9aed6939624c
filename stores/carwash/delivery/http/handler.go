package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/delivery"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/middleware"
)

type carwashHandler struct {
	carwash carwash.UseCase
}

func New(e *echo.Echo, uc carwash.UseCase) {
	handler := &carwashHandler{uc}
	e.POST("/processcarwash", handler.processCarwash)
	e.GET("/washedcars", handler.getWashedCars, middleware.CacheHttp(time.Minute))
	e.GET("/whips", handler.getWhips, middleware.IsValidWallet("wallet"))
}

// processCarwash
//
//	@Summary		Wash a car
//	@Description	Validates the payment transaction and republishes the token with clean traits
//	@Tags			carwash
//	@Accept			json
//	@Produce		json
//	@Param			params	body		carwash.WashRequest	true	"params"
//	@Success		200		{object}	object{ticket=int,imageUri=string,jsonUri=string,metadata=object}
//	@Failure		304
//	@Failure		422
//	@Failure		500
//	@Router			/processcarwash [post]
func (h *carwashHandler) processCarwash(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &carwash.WashRequest{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		ctx.WithField("err", err).Error("validate failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	res, err := h.carwash.Wash(ctx, p)
	if err != nil {
		ctx.WithField("err", err).Error("carwash.Wash failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if res.Status == carwash.StatusRejected {
		// the storefront treats a refused wash as "nothing changed"
		return c.NoContent(http.StatusNotModified)
	}

	body := struct {
		Ticket   int         `json:"ticket"`
		ImageUri string      `json:"imageUri"`
		JsonUri  string      `json:"jsonUri"`
		Metadata interface{} `json:"metadata"`
	}{
		Ticket:   res.Ticket,
		ImageUri: res.ImageUri,
		JsonUri:  res.JsonUri,
		Metadata: res.Metadata,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, body)
}

// getWashedCars
//
//	@Summary		Total washed cars
//	@Tags			carwash
//	@Produce		json
//	@Success		200	{object}	object{amount=int}
//	@Failure		500
//	@Router			/washedcars [get]
func (h *carwashHandler) getWashedCars(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	amount, err := h.carwash.WashedCount(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("carwash.WashedCount failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Amount int `json:"amount"`
	}{
		Amount: amount,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getWhips
//
//	@Summary		Washable tokens of a wallet
//	@Description	Lists the wallet's tokens that are eligible for a wash
//	@Tags			carwash
//	@Produce		json
//	@Param			wallet	query		string	true	"wallet address"
//	@Success		200		{object}	object{data=[]object}
//	@Failure		400
//	@Failure		500
//	@Router			/whips [get]
func (h *carwashHandler) getWhips(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	wallet := c.QueryParam("wallet")
	whips, err := h.carwash.WalletInventory(ctx, wallet)
	if err != nil {
		ctx.WithField("err", err).Error("carwash.WalletInventory failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, whips)
}
