package interceptors

import (
	"context"

	"google.golang.org/grpc"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/i18n"
)

// ErrorInterceptor converts domain errors into gRPC statuses whose details
// carry the error code and a message localized for the caller's locale.
// It must run outside CallerInterceptor so token failures are translated too.
func ErrorInterceptor(defaultLocale string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		locale := grpcmeta.LocaleFromContext(ctx)
		if locale == "" {
			locale = defaultLocale
		}
		tag := i18n.ResolveTag(locale)
		printer := i18n.Printer(tag)
		return nil, apperrors.GRPCStatus(err, tag.String(), func(domainErr *apperrors.Error) string {
			return i18n.ErrorMessage(printer, domainErr)
		})
	}
}
