package middleware

import (
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/domain"
)

// StepGuard проверяет условие входа на этап до обработки запроса.
// Если вход запрещён, посетитель перенаправляется (303) на путь разрешённого этапа.
func StepGuard(step domain.Step, stepFlow StepFlow, m StepMetrics, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := GetSessionID(r.Context())
			if !ok {
				log.Error("StepGuard: session id missing in context for %s", r.URL.Path)
				handlers.RespondInternalError(w)
				return
			}

			decision, err := stepFlow.Enter(r.Context(), sessionID, step)
			if err != nil {
				log.Error("StepGuard: failed to enter step %s for session %s: %v", step, sessionID, err)
				handlers.RespondInternalError(w)
				return
			}

			if !decision.Allowed {
				if m != nil {
					m.IncStepRedirect(string(step))
				}
				log.Info("StepGuard: %s %s - redirect to %s", r.Method, r.URL.Path, decision.Redirect.Path())
				handlers.RedirectTo(w, r, decision.Redirect.Path())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
