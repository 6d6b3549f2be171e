package auth

import (
	"context"
	"net/http"
	"net/url"

	"entregas/internal/entities"
	"entregas/pkg/logger"
)

type ctxKey struct{}

// AccountFromContext devolve a conta autenticada colocada pelo Middleware.
func AccountFromContext(ctx context.Context) (*entities.Account, bool) {
	account, ok := ctx.Value(ctxKey{}).(*entities.Account)
	return account, ok
}

// ContextWithAccount injeta a conta no contexto da requisição.
func ContextWithAccount(ctx context.Context, account *entities.Account) context.Context {
	return context.WithValue(ctx, ctxKey{}, account)
}

// Middleware exige sessão válida. Sem login o usuário é mandado para
// /login com a URL original em next; com login a conta vai para o
// contexto e o last_seen é atualizado a cada requisição.
func Middleware(svc service, sessions sessionManager, log middlewareLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, ok := sessions.CurrentAccountID(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			account, err := svc.GetAccount(r.Context(), accountID)
			if err != nil {
				// Conta removida ou sessão antiga: trata como deslogado.
				redirectToLogin(w, r)
				return
			}

			if err := svc.TouchLastSeen(r.Context(), account.ID); err != nil {
				log.Warn("auth: touch last seen",
					logger.NewField("account_id", account.ID),
					logger.NewField("error", err),
				)
			}

			ctx := ContextWithAccount(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusFound)
}
