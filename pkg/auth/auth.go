package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
)

type SubjectKey struct{}

const WriteScope = "styles:write"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type Manager struct {
	conf            *configs.Config
	logger          *zap.Logger
	writeProcedures []string
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger, writeProcedures ...string) *Manager {
	return &Manager{conf: conf, logger: logger, writeProcedures: writeProcedures}
}

// Subject returns the token subject stored by the interceptor.
func Subject(ctx context.Context) (string, bool) {
	subject, found := ctx.Value(SubjectKey{}).(string)

	return subject, found
}

func (a *Manager) GrpcAuthInterceptor() connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			keyFunc := func(token *jwt.Token) (interface{}, error) {
				_, ok := token.Method.(*jwt.SigningMethodHMAC)
				if !ok {
					return nil, unauthenticated("unexpected signing method: %v", token.Header["alg"])
				}

				return []byte(a.conf.Auth.SecretKey), nil
			}

			accessToken, err := a.extractTokenFromHeader(req.Header())
			if err != nil {
				return nil, err
			}

			token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
			if err != nil {
				a.logger.Error("error parsing token", zap.Error(err))

				return nil, unauthenticated("error parsing token: %v", err)
			}

			claims, found := token.Claims.(jwt.MapClaims)
			if !found || !token.Valid {
				a.logger.Error("invalid token", zap.Any("claims", claims))

				return nil, unauthenticated("invalid token")
			}

			if err = a.verifyClaims(claims); err != nil {
				return nil, err
			}

			subject, found := claims["sub"].(string)
			if !found || subject == "" {
				a.logger.Error("unable to get subject from token", zap.Any("claims", claims))

				return nil, unauthenticated("unable to get subject from token")
			}

			if slices.Contains(a.writeProcedures, req.Spec().Procedure) && !hasScope(claims, WriteScope) {
				a.logger.Warn("missing write scope", zap.String("subject", subject), zap.String("procedure", req.Spec().Procedure))

				return nil, connect_go.NewError(connect_go.CodePermissionDenied, ErrForbidden)
			}

			ctx = context.WithValue(ctx, SubjectKey{}, subject)

			return next(ctx, req)
		}
	}
}

func (a *Manager) verifyClaims(claims jwt.MapClaims) error {
	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("aud", claims["aud"]))

		return unauthenticated("invalid audience")
	}

	if a.conf.Auth.Domain != "" && !claims.VerifyIssuer("https://"+a.conf.Auth.Domain+"/", true) {
		a.logger.Error("token issuer mismatch", zap.Any("iss", claims["iss"]))

		return unauthenticated("invalid issuer")
	}

	return nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, unauthenticated("authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, unauthenticated("authorization format must be Bearer {token}")
	}

	return &token, nil
}

func hasScope(claims jwt.MapClaims, scope string) bool {
	scopes, _ := claims["scope"].(string)

	return slices.Contains(strings.Fields(scopes), scope)
}

func unauthenticated(format string, args ...any) error {
	return connect_go.NewError(connect_go.CodeUnauthenticated, fmt.Errorf("%w: "+format, append([]any{ErrUnauthenticated}, args...)...))
}
