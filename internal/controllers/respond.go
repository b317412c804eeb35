package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/i18n"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/middleware"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// relayed response headers
var relayHeaders = []string{"Content-Type", "Cache-Control", "X-Request-ID"}

// handleForm runs the action pipeline for one form type: decode, normalize
// and validate, then call. Field errors end the request before any backend
// call is made.
func handleForm[F any, T any](
	w http.ResponseWriter,
	r *http.Request,
	handler string,
	call func(ctx context.Context, f F) api.Result[T],
) {
	lng := middleware.LanguageFromContext(r.Context())

	var f F
	fieldErrs, err := forms.Parse(r, lng, &f)
	if err != nil {
		utils.HandleAppError(w, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid form payload",
			Err:        err,
		})
		return
	}
	if len(fieldErrs) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			i18n.T(lng, i18n.KeyInvalidField), fieldErrs,
		)
		return
	}

	respondResult(w, r, handler, call(r.Context(), f))
}

// respondResult translates a fetch result into the HTTP answer:
// data as 200, Abort as 504, Server as 502 and a raw backend response as is.
func respondResult[T any](w http.ResponseWriter, r *http.Request, handler string, res api.Result[T]) {
	lng := middleware.LanguageFromContext(r.Context())
	logger := utils.Logger.WithField("handler", handler)

	switch res.Kind {
	case api.KindOK:
		utils.RespondWithJSON(w, http.StatusOK, res.Data)

	case api.KindResponse:
		relay(w, res.Response)
		logger.WithField("status", res.Response.StatusCode).Info("Relayed backend response")

	default:
		if res.Error != nil && res.Error.Type == api.ErrorTypeAbort {
			utils.RespondErrorWithCode(
				w, http.StatusGatewayTimeout, utils.ErrCodeRequestAborted,
				i18n.T(lng, i18n.KeyRequestAborted), nil, res.Error,
			)
			return
		}
		var devErr error = errors.New("unclassified failure")
		if res.Error != nil {
			devErr = res.Error
		}
		utils.RespondErrorWithCode(
			w, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure,
			i18n.T(lng, i18n.KeyUnexpectedError), nil, devErr,
		)
	}
}

func relay(w http.ResponseWriter, resp *http.Response) {
	defer resp.Body.Close()
	for _, h := range relayHeaders {
		if v := resp.Header.Get(h); v != "" {
			w.Header().Set(h, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		utils.Logger.WithError(err).Warn("Failed to relay backend response body")
	}
}
