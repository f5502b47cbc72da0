package interceptors

import (
	"context"

	"google.golang.org/grpc"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
)

// StaffTokenVerifier turns a bearer token into a staff caller.
type StaffTokenVerifier interface {
	Verify(token string) (authz.Caller, error)
}

// CallerInterceptor attaches the caller identity to the handler context.
// A bearer token, when present, must verify as staff; otherwise the caller
// id header identifies a player. Calls carrying neither reach the handler
// without a caller.
func CallerInterceptor(verifier StaffTokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, err := resolveCaller(ctx, verifier)
		if err != nil {
			return nil, err
		}
		return handler(updatedCtx, req)
	}
}

func resolveCaller(ctx context.Context, verifier StaffTokenVerifier) (context.Context, error) {
	if token := grpcmeta.BearerTokenFromContext(ctx); token != "" {
		if verifier == nil {
			return nil, apperrors.New(apperrors.CodeStaffTokenInvalid, "staff tokens are not accepted")
		}
		caller, err := verifier.Verify(token)
		if err != nil {
			return nil, err
		}
		return authz.WithCaller(ctx, caller), nil
	}
	if callerID := grpcmeta.CallerIDFromContext(ctx); callerID != "" {
		return authz.WithCaller(ctx, authz.Caller{ID: callerID}), nil
	}
	return ctx, nil
}
