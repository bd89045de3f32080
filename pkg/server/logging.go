package server

import (
	"context"
	"errors"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// NewLoggingInterceptor logs every call under a generated request id, also returned in the
// response headers.
func NewLoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := uuid.NewString()
			started := time.Now()

			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(started)),
			}

			if err != nil {
				logger.Warn("request failed", append(fields, zap.Stringer("code", connect.CodeOf(err)), zap.Error(err))...)

				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, requestID)
				}

				return nil, err
			}

			logger.Info("request served", fields...)
			res.Header().Set(RequestIDHeader, requestID)

			return res, nil
		}
	}
}
